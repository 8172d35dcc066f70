package services

import (
	"context"
	"strings"

	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"
	"tripmarket/internal/pricing"
	"tripmarket/internal/repositories"
	"tripmarket/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TripService serves trip detail payloads, through the Redis cache when one
// is configured.
type TripService struct {
	TripRepo  repositories.TripRepository
	Cache     repositories.TripCache
	RequestID string
	Loader    func(ctx context.Context, publicID string) (models.TripDetail, error)
}

type StartingPriceResult struct {
	TripID        string             `json:"tripId"`
	PricingType   models.PricingType `json:"pricingType"`
	StartingPrice float64            `json:"startingPrice"`
	Display       string             `json:"display"`
}

func (s TripService) Detail(ctx context.Context, publicID string) (models.TripDetail, error) {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return models.TripDetail{}, domain.ValidationError{Field: "tripId", Msg: "required"}
	}
	if s.Loader != nil {
		return s.Loader(ctx, publicID)
	}
	if d, ok := s.Cache.Get(ctx, publicID); ok {
		return d, nil
	}
	d, err := s.TripRepo.GetDetail(ctx, publicID)
	if err != nil {
		return models.TripDetail{}, err
	}
	s.Cache.Set(ctx, d)
	return d, nil
}

func (s TripService) StartingPrice(ctx context.Context, publicID string) (StartingPriceResult, error) {
	d, err := s.Detail(ctx, publicID)
	if err != nil {
		return StartingPriceResult{}, err
	}
	sp := pricing.StartingPrice(d.Pricing)
	return StartingPriceResult{
		TripID:        d.Trip.PublicID,
		PricingType:   d.Pricing.ResolvedType(),
		StartingPrice: sp,
		Display:       utils.FormatRupee(pricing.RoundAmount(decimal.NewFromFloat(sp))),
	}, nil
}

// UpdatePricing replaces a trip's pricing. Organizers may only touch trips
// of their own organization; superadmins may touch any.
func (s TripService) UpdatePricing(ctx context.Context, rc domain.RequestContext, publicID string, p *models.TripPricing) error {
	if rc.UserID == "" {
		return domain.UnauthorizedError{}
	}
	if rc.Role != domain.RoleOrganizer && rc.Role != domain.RoleAdmin {
		return domain.ForbiddenError{Msg: "only organizers can edit pricing"}
	}
	if err := pricing.Validate(p); err != nil {
		return err
	}
	if p.TripPricingType == "" {
		p.TripPricingType = p.ResolvedType()
	}

	owner, err := s.TripRepo.OrganizationOf(ctx, publicID)
	if err != nil {
		return err
	}
	if rc.Role != domain.RoleAdmin && owner != rc.OrganizationID {
		return domain.ForbiddenError{Msg: "trip belongs to another organization"}
	}
	if err := s.TripRepo.UpdatePricing(ctx, publicID, p); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, publicID)

	utils.LogEvent(s.RequestID, "trips", "update_pricing", "trip pricing replaced",
		zap.String("trip", publicID),
		zap.String("pricing_type", string(p.TripPricingType)),
		zap.String("organization", owner),
	)
	return nil
}
