package services

import (
	"context"

	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"
)

func spitiTrip() models.TripDetail {
	return models.TripDetail{
		Trip: models.Trip{
			PublicID:       "spiti",
			OrganizationID: "org-1",
			Name:           "Spiti Valley",
			StartDate:      "2025-06-01",
			EndDate:        "2025-06-08",
			MinGroupSize:   6,
			MaxGroupSize:   12,
			CityTags:       []string{"Manali"},
		},
		Itinerary: &models.TripItinerary{StartPoint: "Manali", EndPoint: "Kaza", TotalDays: 8},
		Pricing: &models.TripPricing{
			TripPricingType: models.PricingDynamic,
			Dynamic: &models.DynamicPricing{Categories: []models.PricingCategory{
				{CategoryName: "Transport", PricingCategoryType: models.CategorySingle, Options: []models.PricingOption{{Name: "Tempo traveller", Price: 200}}},
				{CategoryName: "Stay", PricingCategoryType: models.CategoryMulti, Options: []models.PricingOption{
					{Name: "A", Price: 300, Discount: 10},
					{Name: "B", Price: 450},
				}},
			}},
			AddOns: []models.AddOn{{Name: "insurance", Price: 50}},
		},
	}
}

func goaTrip() models.TripDetail {
	return models.TripDetail{
		Trip: models.Trip{PublicID: "goa", OrganizationID: "org-2", Name: "Goa Getaway"},
		Pricing: &models.TripPricing{
			TripPricingType: models.PricingSimple,
			Simple:          &models.SimplePricing{BasePrice: 8000, DiscountPercent: 5},
			TripTitle:       "Goa New Year",
		},
	}
}

func loaderFor(trips ...models.TripDetail) func(context.Context, string) (models.TripDetail, error) {
	byID := map[string]models.TripDetail{}
	for _, t := range trips {
		byID[t.Trip.PublicID] = t
	}
	return func(_ context.Context, id string) (models.TripDetail, error) {
		d, ok := byID[id]
		if !ok {
			return models.TripDetail{}, domain.NotFoundError{Resource: "trip " + id}
		}
		return d, nil
	}
}

var traveller = domain.RequestContext{
	UserID: "user-1",
	Role:   domain.RoleTraveller,
	Name:   "Asha Rao",
	Email:  "asha@example.com",
	Phone:  "+91 98765 43210",
}
