package models

import "encoding/json"

type PricingType string

const (
	PricingSimple  PricingType = "SIMPLE"
	PricingDynamic PricingType = "DYNAMIC"
)

type CategoryType string

const (
	CategorySingle CategoryType = "SINGLE"
	CategoryMulti  CategoryType = "MULTI"
)

// PricingOption is one priced choice inside a category. Discount is a percent.
type PricingOption struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"`
	Checked  *bool   `json:"checked,omitempty"`
}

type PricingCategory struct {
	CategoryName        string          `json:"categoryName"`
	PricingCategoryType CategoryType    `json:"pricingCategoryType"`
	Options             []PricingOption `json:"pricingCategoryOptionDTOs"`
}

// Option finds an option by name.
func (c PricingCategory) Option(name string) (PricingOption, bool) {
	for _, o := range c.Options {
		if o.Name == name {
			return o, true
		}
	}
	return PricingOption{}, false
}

type SimplePricing struct {
	BasePrice       float64 `json:"basePrice"`
	DiscountPercent float64 `json:"discountPercent"`
}

type DynamicPricing struct {
	Categories []PricingCategory `json:"pricingCategoryDtos"`
}

// Category finds a category by name.
func (d *DynamicPricing) Category(name string) (PricingCategory, bool) {
	if d == nil {
		return PricingCategory{}, false
	}
	for _, c := range d.Categories {
		if c.CategoryName == name {
			return c, true
		}
	}
	return PricingCategory{}, false
}

// AddOn is an optional extra. Older payloads use "charge", newer ones "price".
type AddOn struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price,omitempty"`
	Charge  float64 `json:"charge,omitempty"`
	Checked *bool   `json:"checked,omitempty"`
}

// Amount returns charge when set, otherwise price.
func (a AddOn) Amount() float64 {
	if a.Charge != 0 {
		return a.Charge
	}
	return a.Price
}

// TripPricing mirrors the tripPricingDTO of the trip detail payload.
type TripPricing struct {
	TripPricingType        PricingType     `json:"tripPricingType"`
	Simple                 *SimplePricing  `json:"simplePricingRequest"`
	Dynamic                *DynamicPricing `json:"dynamicPricingRequest"`
	AddOns                 []AddOn         `json:"addOns"`
	IncludesGST            bool            `json:"includesGst"`
	DepositRequiredPercent *float64        `json:"depositRequiredPercent,omitempty"`
	DepositRequiredAmount  *float64        `json:"depositRequiredAmount,omitempty"`
	CreditOptions          json.RawMessage `json:"creditOptions,omitempty"`
	CancellationPolicy     string          `json:"cancellationPolicy,omitempty"`
	TripTitle              string          `json:"tripTitle,omitempty"`
}

// ResolvedType returns the declared pricing type, or infers it from which
// pricing block is present. Empty means the payload carries no pricing.
func (p *TripPricing) ResolvedType() PricingType {
	if p == nil {
		return ""
	}
	switch p.TripPricingType {
	case PricingSimple, PricingDynamic:
		return p.TripPricingType
	}
	if p.Simple != nil {
		return PricingSimple
	}
	if p.Dynamic != nil {
		return PricingDynamic
	}
	return ""
}

// AddOn finds an add-on by name.
func (p *TripPricing) AddOn(name string) (AddOn, bool) {
	if p == nil {
		return AddOn{}, false
	}
	for _, a := range p.AddOns {
		if a.Name == name {
			return a, true
		}
	}
	return AddOn{}, false
}
