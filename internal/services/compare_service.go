package services

import (
	"context"
	"fmt"

	"tripmarket/internal/compare"
	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"
	"tripmarket/internal/repositories"
	"tripmarket/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type CompareService struct {
	Trips     TripService
	Store     repositories.CompareStore
	RequestID string
}

// Compare fetches the trips in parallel and projects them in the order
// given. Trips that no longer exist are left out of the table.
func (s CompareService) Compare(ctx context.Context, ids []string) (compare.Table, error) {
	ids = dedupe(ids)
	if len(ids) > compare.MaxTrips {
		return compare.Table{}, domain.ValidationError{Field: "ids", Msg: fmt.Sprintf("at most %d trips can be compared", compare.MaxTrips)}
	}

	trips := make([]*models.TripDetail, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			d, err := s.Trips.Detail(gctx, id)
			if domain.IsNotFound(err) {
				utils.Log().Debug("compare skipped missing trip", zap.String("trip", id))
				return nil
			}
			if err != nil {
				return err
			}
			trips[i] = &d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return compare.Table{}, err
	}
	return compare.Project(trips), nil
}

func (s CompareService) Export(ctx context.Context, ids []string) ([]byte, string, error) {
	table, err := s.Compare(ctx, ids)
	if err != nil {
		return nil, "", err
	}
	data, name, err := compare.WriteXLSX(table)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to build workbook", Err: err}
	}
	utils.LogEvent(s.RequestID, "compare", "export", "comparison exported", zap.Int("trips", len(table.Columns)))
	return data, name, nil
}

// ListView projects the caller's saved compare list.
func (s CompareService) ListView(ctx context.Context, userID string) (compare.Table, []string, error) {
	ids, err := s.Store.List(ctx, userID)
	if err != nil {
		return compare.Table{}, nil, err
	}
	table, err := s.Compare(ctx, ids)
	if err != nil {
		return compare.Table{}, nil, err
	}
	return table, ids, nil
}

func (s CompareService) Add(ctx context.Context, userID, tripID string) ([]string, error) {
	if _, err := s.Trips.Detail(ctx, tripID); err != nil {
		return nil, err
	}
	ids, err := s.Store.Add(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	utils.LogEvent(s.RequestID, "compare", "add", "trip added to compare list", zap.String("trip", tripID), zap.Int("size", len(ids)))
	return ids, nil
}

func (s CompareService) Remove(ctx context.Context, userID, tripID string) ([]string, error) {
	return s.Store.Remove(ctx, userID, tripID)
}

func (s CompareService) Clear(ctx context.Context, userID string) error {
	return s.Store.Clear(ctx, userID)
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := map[string]bool{}
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
