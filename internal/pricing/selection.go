package pricing

import (
	"maps"
	"slices"
	"strings"

	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"
)

// Selection is the traveller's choice for one pricing session: one option
// per MULTI category plus a set of add-on names. SINGLE categories are
// always included and never appear in Options. Mutators copy before writing,
// so a copied Selection never changes the one it came from.
type Selection struct {
	Options map[string]string `json:"options"`
	AddOns  []string          `json:"addOns"`
}

func NewSelection() Selection {
	return Selection{Options: map[string]string{}, AddOns: []string{}}
}

// Select chooses option for a MULTI category, replacing any earlier choice.
func (s *Selection) Select(p *models.TripPricing, category, option string) error {
	if p == nil || p.ResolvedType() != models.PricingDynamic {
		return domain.ValidationError{Field: "category", Msg: "trip has no selectable categories"}
	}
	cat, ok := p.Dynamic.Category(category)
	if !ok {
		return domain.ValidationError{Field: "category", Msg: "unknown category " + category}
	}
	if cat.PricingCategoryType != models.CategoryMulti {
		return domain.ValidationError{Field: "category", Msg: category + " is included automatically"}
	}
	if _, ok := cat.Option(option); !ok {
		return domain.ValidationError{Field: "option", Msg: "unknown option " + option + " for " + category}
	}
	opts := maps.Clone(s.Options)
	if opts == nil {
		opts = map[string]string{}
	}
	opts[category] = option
	s.Options = opts
	return nil
}

func (s *Selection) Deselect(category string) {
	if _, ok := s.Options[category]; !ok {
		return
	}
	s.Options = maps.Clone(s.Options)
	delete(s.Options, category)
}

// ToggleAddOn adds name when absent and removes it when present.
func (s *Selection) ToggleAddOn(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if i := slices.Index(s.AddOns, name); i >= 0 {
		s.AddOns = slices.Delete(slices.Clone(s.AddOns), i, i+1)
		return
	}
	s.AddOns = append(slices.Clip(s.AddOns), name)
}

func (s Selection) HasAddOn(name string) bool {
	for _, n := range s.AddOns {
		if n == name {
			return true
		}
	}
	return false
}

// Normalize drops entries that can never be valid for p: SINGLE or unknown
// categories, empty names and duplicate add-ons. Option names are kept as
// is; a stale option is ignored later by FinalPrice.
func (s Selection) Normalize(p *models.TripPricing) Selection {
	out := NewSelection()
	if p != nil && p.ResolvedType() == models.PricingDynamic {
		for cat, opt := range s.Options {
			c, ok := p.Dynamic.Category(cat)
			if !ok || c.PricingCategoryType != models.CategoryMulti {
				continue
			}
			if opt = strings.TrimSpace(opt); opt != "" {
				out.Options[cat] = opt
			}
		}
	}
	seen := map[string]bool{}
	for _, name := range s.AddOns {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out.AddOns = append(out.AddOns, name)
	}
	return out
}
