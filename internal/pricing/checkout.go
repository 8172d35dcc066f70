package pricing

import (
	"fmt"
	"strings"

	"tripmarket/internal/domain/models"
)

// CheckedPayload copies p and marks what sel chose, the shape organizers
// receive with a lead. SIMPLE trips carry only the simple block. SINGLE
// categories are copied untouched; MULTI options and add-ons get a checked
// flag. A trip without add-ons sends nil add-ons.
func CheckedPayload(p *models.TripPricing, sel Selection) *models.TripPricing {
	if p == nil {
		return nil
	}
	out := &models.TripPricing{
		TripPricingType:        p.ResolvedType(),
		IncludesGST:            p.IncludesGST,
		DepositRequiredPercent: p.DepositRequiredPercent,
		DepositRequiredAmount:  p.DepositRequiredAmount,
		CreditOptions:          p.CreditOptions,
		CancellationPolicy:     p.CancellationPolicy,
		TripTitle:              p.TripTitle,
	}

	switch out.TripPricingType {
	case models.PricingSimple:
		if p.Simple != nil {
			s := *p.Simple
			out.Simple = &s
		}
	case models.PricingDynamic:
		if p.Dynamic != nil {
			dyn := &models.DynamicPricing{Categories: make([]models.PricingCategory, 0, len(p.Dynamic.Categories))}
			for _, cat := range p.Dynamic.Categories {
				c := cat
				c.Options = make([]models.PricingOption, len(cat.Options))
				copy(c.Options, cat.Options)
				if cat.PricingCategoryType != models.CategorySingle {
					chosen, has := sel.Options[cat.CategoryName]
					for i := range c.Options {
						c.Options[i].Checked = boolPtr(has && c.Options[i].Name == chosen)
					}
				}
				dyn.Categories = append(dyn.Categories, c)
			}
			out.Dynamic = dyn
		}
		if len(p.AddOns) > 0 {
			out.AddOns = make([]models.AddOn, len(p.AddOns))
			for i, a := range p.AddOns {
				a.Checked = boolPtr(sel.HasAddOn(a.Name))
				out.AddOns[i] = a
			}
		}
	}
	return out
}

// Summary renders the free-text message attached to a lead.
func Summary(p *models.TripPricing, sel Selection, q Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Final price: ₹%d", q.Total)

	if p.ResolvedType() == models.PricingDynamic && p.Dynamic != nil {
		picked := []string{}
		for _, cat := range p.Dynamic.Categories {
			if cat.PricingCategoryType == models.CategorySingle {
				continue
			}
			name, ok := sel.Options[cat.CategoryName]
			if !ok {
				continue
			}
			if _, ok := cat.Option(name); ok {
				picked = append(picked, cat.CategoryName+": "+name)
			}
		}
		if len(picked) > 0 {
			b.WriteString("\nSelected: " + strings.Join(picked, ", "))
		}
	}

	addOns := []string{}
	for _, line := range q.Lines {
		if line.Kind == LineAddOn {
			addOns = append(addOns, line.Label)
		}
	}
	if len(addOns) > 0 {
		b.WriteString("\nAdd-ons: " + strings.Join(addOns, ", "))
	}
	return b.String()
}

func boolPtr(v bool) *bool { return &v }
