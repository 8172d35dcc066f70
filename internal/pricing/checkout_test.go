package pricing

import (
	"testing"

	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedPayloadMarksMultiOptionsAndAddOns(t *testing.T) {
	p := dynamicTrip()
	sel := NewSelection()
	require.NoError(t, sel.Select(p, "Stay", "B"))
	sel.ToggleAddOn("rafting")

	out := CheckedPayload(p, sel)
	require.NotNil(t, out.Dynamic)
	assert.Nil(t, out.Simple)

	transport := out.Dynamic.Categories[0]
	assert.Nil(t, transport.Options[0].Checked, "SINGLE categories are sent untouched")

	stay := out.Dynamic.Categories[1]
	require.NotNil(t, stay.Options[0].Checked)
	assert.False(t, *stay.Options[0].Checked)
	assert.True(t, *stay.Options[1].Checked)

	require.Len(t, out.AddOns, 2)
	assert.False(t, *out.AddOns[0].Checked)
	assert.True(t, *out.AddOns[1].Checked)

	// the trip's own pricing is left alone
	assert.Nil(t, p.Dynamic.Categories[1].Options[1].Checked)
	assert.Nil(t, p.AddOns[1].Checked)
}

func TestCheckedPayloadSimpleDropsDynamicAndAddOns(t *testing.T) {
	p := simpleTrip(1000, 10)
	p.AddOns = []models.AddOn{{Name: "insurance", Price: 50}}
	p.CancellationPolicy = "<p>No refunds</p>"

	out := CheckedPayload(p, NewSelection())
	assert.Equal(t, models.PricingSimple, out.TripPricingType)
	require.NotNil(t, out.Simple)
	assert.Equal(t, 1000.0, out.Simple.BasePrice)
	assert.Nil(t, out.Dynamic)
	assert.Nil(t, out.AddOns)
	assert.Equal(t, "<p>No refunds</p>", out.CancellationPolicy)
}

func TestCheckedPayloadNoAddOnsIsNil(t *testing.T) {
	p := dynamicTrip()
	p.AddOns = nil
	assert.Nil(t, CheckedPayload(p, NewSelection()).AddOns)
	assert.Nil(t, CheckedPayload(nil, NewSelection()))
}

func TestSummary(t *testing.T) {
	p := dynamicTrip()
	sel := NewSelection()
	require.NoError(t, sel.Select(p, "Stay", "A"))
	sel.ToggleAddOn("insurance")
	q := FinalPrice(p, sel)

	assert.Equal(t, "Final price: ₹520\nSelected: Stay: A\nAdd-ons: insurance", Summary(p, sel, q))

	simple := simpleTrip(1000, 10)
	assert.Equal(t, "Final price: ₹900", Summary(simple, NewSelection(), FinalPrice(simple, NewSelection())))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(dynamicTrip()))
	require.NoError(t, Validate(simpleTrip(1000, 10)))

	cases := map[string]*models.TripPricing{
		"nil":              nil,
		"no type":          {},
		"discount over":    simpleTrip(1000, 120),
		"negative price":   simpleTrip(-1, 0),
		"empty categories": {TripPricingType: models.PricingDynamic, Dynamic: &models.DynamicPricing{}},
		"single with two": {TripPricingType: models.PricingDynamic, Dynamic: &models.DynamicPricing{Categories: []models.PricingCategory{
			{CategoryName: "Stay", PricingCategoryType: models.CategorySingle, Options: []models.PricingOption{{Name: "a"}, {Name: "b"}}},
		}}},
		"duplicate option": {TripPricingType: models.PricingDynamic, Dynamic: &models.DynamicPricing{Categories: []models.PricingCategory{
			{CategoryName: "Stay", PricingCategoryType: models.CategoryMulti, Options: []models.PricingOption{{Name: "a"}, {Name: "a"}}},
		}}},
		"bad category type": {TripPricingType: models.PricingDynamic, Dynamic: &models.DynamicPricing{Categories: []models.PricingCategory{
			{CategoryName: "Stay", PricingCategoryType: "BOTH", Options: []models.PricingOption{{Name: "a"}}},
		}}},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			err := Validate(p)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}

	withBadAddOn := dynamicTrip()
	withBadAddOn.AddOns = append(withBadAddOn.AddOns, models.AddOn{Name: "insurance", Price: 10})
	assert.True(t, domain.IsValidation(Validate(withBadAddOn)))
}
