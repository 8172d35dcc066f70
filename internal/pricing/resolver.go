package pricing

import (
	"tripmarket/internal/domain/models"

	"github.com/shopspring/decimal"
)

type LineKind string

const (
	LineBase     LineKind = "base"
	LineCategory LineKind = "category"
	LineAddOn    LineKind = "addon"
)

const basePackageLabel = "Base package"

type LineItem struct {
	Label  string   `json:"label"`
	Detail string   `json:"detail,omitempty"`
	Amount float64  `json:"amount"`
	Kind   LineKind `json:"kind"`
}

// Quote is the payable breakdown for one selection. Line amounts are exact;
// Total is rounded once, after summing.
type Quote struct {
	PricingType       models.PricingType `json:"pricingType"`
	Lines             []LineItem         `json:"lines"`
	Total             int64              `json:"total"`
	MissingCategories []string           `json:"missingCategories"`
}

// Complete reports whether every MULTI category has a usable choice.
func (q Quote) Complete() bool {
	return len(q.MissingCategories) == 0
}

var hundred = decimal.NewFromInt(100)

// Discounted returns price - price*discount/100 without rounding.
func Discounted(price, discountPercent float64) decimal.Decimal {
	p := decimal.NewFromFloat(price)
	return p.Sub(p.Mul(decimal.NewFromFloat(discountPercent)).Div(hundred))
}

// RoundAmount rounds half away from zero to a whole rupee.
func RoundAmount(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// StartingPrice is the "starting from" headline figure. SIMPLE trips show the
// undiscounted base price; DYNAMIC trips show the sum of the cheapest option
// of every category. Missing pricing yields 0.
func StartingPrice(p *models.TripPricing) float64 {
	switch p.ResolvedType() {
	case models.PricingSimple:
		if p.Simple == nil {
			return 0
		}
		return p.Simple.BasePrice
	case models.PricingDynamic:
		if p.Dynamic == nil {
			return 0
		}
		sum := decimal.Zero
		for _, cat := range p.Dynamic.Categories {
			if len(cat.Options) == 0 {
				continue
			}
			min := cat.Options[0].Price
			for _, o := range cat.Options[1:] {
				if o.Price < min {
					min = o.Price
				}
			}
			sum = sum.Add(decimal.NewFromFloat(min))
		}
		return sum.InexactFloat64()
	}
	return 0
}

// FinalPrice resolves the payable amount for sel. Unselected MULTI categories
// contribute nothing and are listed in MissingCategories; selections naming
// an option or add-on that no longer exists are skipped.
func FinalPrice(p *models.TripPricing, sel Selection) Quote {
	q := Quote{
		PricingType:       p.ResolvedType(),
		Lines:             []LineItem{},
		MissingCategories: []string{},
	}
	sum := decimal.Zero
	add := func(label, detail string, amount decimal.Decimal, kind LineKind) {
		sum = sum.Add(amount)
		q.Lines = append(q.Lines, LineItem{
			Label:  label,
			Detail: detail,
			Amount: amount.InexactFloat64(),
			Kind:   kind,
		})
	}

	switch q.PricingType {
	case models.PricingSimple:
		if p.Simple != nil {
			add(basePackageLabel, "", Discounted(p.Simple.BasePrice, p.Simple.DiscountPercent), LineBase)
		}
	case models.PricingDynamic:
		if p.Dynamic != nil {
			for _, cat := range p.Dynamic.Categories {
				if cat.PricingCategoryType == models.CategorySingle {
					if len(cat.Options) == 0 {
						continue
					}
					opt := cat.Options[0]
					add(cat.CategoryName, opt.Name, Discounted(opt.Price, opt.Discount), LineCategory)
					continue
				}
				name, ok := sel.Options[cat.CategoryName]
				if !ok {
					q.MissingCategories = append(q.MissingCategories, cat.CategoryName)
					continue
				}
				opt, ok := cat.Option(name)
				if !ok {
					q.MissingCategories = append(q.MissingCategories, cat.CategoryName)
					continue
				}
				add(cat.CategoryName, opt.Name, Discounted(opt.Price, opt.Discount), LineCategory)
			}
		}
		seen := map[string]bool{}
		for _, name := range sel.AddOns {
			a, ok := p.AddOn(name)
			if !ok || seen[name] {
				continue
			}
			seen[name] = true
			add(a.Name, "", decimal.NewFromFloat(a.Amount()), LineAddOn)
		}
	}

	q.Total = RoundAmount(sum)
	return q
}
