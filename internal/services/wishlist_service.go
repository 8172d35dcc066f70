package services

import (
	"context"

	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"
	"tripmarket/internal/pricing"
	"tripmarket/internal/repositories"
	"tripmarket/internal/utils"

	"go.uber.org/zap"
)

type WishlistService struct {
	Repo      repositories.WishlistRepository
	Trips     TripService
	RequestID string
}

type WishlistPage struct {
	Items      []models.WishlistTrip `json:"items"`
	Pagination domain.Pagination     `json:"pagination"`
}

func (s WishlistService) Add(ctx context.Context, rc domain.RequestContext, tripID string) error {
	if rc.UserID == "" {
		return domain.UnauthorizedError{}
	}
	d, err := s.Trips.Detail(ctx, tripID)
	if err != nil {
		return err
	}
	if err := s.Repo.Add(ctx, d.Trip.OrganizationID, rc.UserID, d.Trip.PublicID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "wishlist", "add", "trip wishlisted", zap.String("trip", d.Trip.PublicID))
	return nil
}

func (s WishlistService) Remove(ctx context.Context, rc domain.RequestContext, tripID string) error {
	if rc.UserID == "" {
		return domain.UnauthorizedError{}
	}
	return s.Repo.Remove(ctx, rc.UserID, tripID)
}

func (s WishlistService) Exists(ctx context.Context, rc domain.RequestContext, tripID string) (bool, error) {
	if rc.UserID == "" {
		return false, domain.UnauthorizedError{}
	}
	return s.Repo.Exists(ctx, rc.UserID, tripID)
}

// List returns one page of the wishlist with each trip's starting price.
func (s WishlistService) List(ctx context.Context, rc domain.RequestContext, page domain.Pagination) (WishlistPage, error) {
	if rc.UserID == "" {
		return WishlistPage{}, domain.UnauthorizedError{}
	}
	page = page.Normalize()
	recs, total, err := s.Repo.List(ctx, rc.UserID, page)
	if err != nil {
		return WishlistPage{}, err
	}
	items := make([]models.WishlistTrip, 0, len(recs))
	for _, r := range recs {
		t := r.Trip
		t.StartingFrom = pricing.StartingPrice(r.Pricing)
		items = append(items, t)
	}
	page.Total = total
	return WishlistPage{Items: items, Pagination: page}, nil
}
