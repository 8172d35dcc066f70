package pricing

import (
	"fmt"
	"strings"

	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"
)

// Validate checks a pricing payload before an organizer stores it. The
// resolvers tolerate anything; this is the gate that keeps bad data out.
func Validate(p *models.TripPricing) error {
	if p == nil {
		return domain.ValidationError{Field: "tripPricingDTO", Msg: "pricing is required"}
	}
	switch p.ResolvedType() {
	case models.PricingSimple:
		if p.Simple == nil {
			return domain.ValidationError{Field: "simplePricingRequest", Msg: "required for SIMPLE pricing"}
		}
		if p.Dynamic != nil {
			return domain.ValidationError{Field: "dynamicPricingRequest", Msg: "not allowed for SIMPLE pricing"}
		}
		if err := checkAmount("basePrice", p.Simple.BasePrice); err != nil {
			return err
		}
		if err := checkPercent("discountPercent", p.Simple.DiscountPercent); err != nil {
			return err
		}
	case models.PricingDynamic:
		if p.Dynamic == nil || len(p.Dynamic.Categories) == 0 {
			return domain.ValidationError{Field: "pricingCategoryDtos", Msg: "at least one category is required"}
		}
		if p.Simple != nil {
			return domain.ValidationError{Field: "simplePricingRequest", Msg: "not allowed for DYNAMIC pricing"}
		}
		seen := map[string]bool{}
		for i, cat := range p.Dynamic.Categories {
			field := fmt.Sprintf("pricingCategoryDtos[%d]", i)
			name := strings.TrimSpace(cat.CategoryName)
			if name == "" {
				return domain.ValidationError{Field: field + ".categoryName", Msg: "required"}
			}
			if seen[name] {
				return domain.ValidationError{Field: field + ".categoryName", Msg: "duplicate category " + name}
			}
			seen[name] = true
			switch cat.PricingCategoryType {
			case models.CategorySingle:
				if len(cat.Options) != 1 {
					return domain.ValidationError{Field: field, Msg: "SINGLE category must have exactly one option"}
				}
			case models.CategoryMulti:
				if len(cat.Options) == 0 {
					return domain.ValidationError{Field: field, Msg: "MULTI category needs at least one option"}
				}
			default:
				return domain.ValidationError{Field: field + ".pricingCategoryType", Msg: "must be SINGLE or MULTI"}
			}
			opts := map[string]bool{}
			for j, opt := range cat.Options {
				of := fmt.Sprintf("%s.pricingCategoryOptionDTOs[%d]", field, j)
				if strings.TrimSpace(opt.Name) == "" {
					return domain.ValidationError{Field: of + ".name", Msg: "required"}
				}
				if opts[opt.Name] {
					return domain.ValidationError{Field: of + ".name", Msg: "duplicate option " + opt.Name}
				}
				opts[opt.Name] = true
				if err := checkAmount(of+".price", opt.Price); err != nil {
					return err
				}
				if err := checkPercent(of+".discount", opt.Discount); err != nil {
					return err
				}
			}
		}
	default:
		return domain.ValidationError{Field: "tripPricingType", Msg: "must be SIMPLE or DYNAMIC"}
	}

	names := map[string]bool{}
	for i, a := range p.AddOns {
		field := fmt.Sprintf("addOns[%d]", i)
		if strings.TrimSpace(a.Name) == "" {
			return domain.ValidationError{Field: field + ".name", Msg: "required"}
		}
		if names[a.Name] {
			return domain.ValidationError{Field: field + ".name", Msg: "duplicate add-on " + a.Name}
		}
		names[a.Name] = true
		if err := checkAmount(field, a.Amount()); err != nil {
			return err
		}
	}
	return nil
}

func checkAmount(field string, v float64) error {
	if v < 0 {
		return domain.ValidationError{Field: field, Msg: "must not be negative"}
	}
	return nil
}

func checkPercent(field string, v float64) error {
	if v < 0 || v > 100 {
		return domain.ValidationError{Field: field, Msg: "must be between 0 and 100"}
	}
	return nil
}
