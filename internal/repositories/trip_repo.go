package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	intconfig "tripmarket/internal/config"
	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"
	"tripmarket/internal/utils"

	"go.uber.org/zap"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripDetailSelect = `
	SELECT id, public_id, organization_id, name,
	       COALESCE(DATE_FORMAT(start_date, '%Y-%m-%d'), ''),
	       COALESCE(DATE_FORMAT(end_date, '%Y-%m-%d'), ''),
	       min_group_size, max_group_size,
	       mood_tags, city_tags, rating, trip_status,
	       COALESCE(start_point, ''), COALESCE(end_point, ''), total_days,
	       COALESCE(organizer_name, ''), COALESCE(organizer_picture_url, ''),
	       pricing, images
	FROM trips`

// GetDetail loads the trip detail payload by public id.
func (r TripRepository) GetDetail(ctx context.Context, publicID string) (models.TripDetail, error) {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return models.TripDetail{}, domain.ValidationError{Field: "tripId", Msg: "required"}
	}
	db := r.db()
	if db == nil {
		return models.TripDetail{}, domain.InternalError{Msg: "database not connected"}
	}

	var (
		d                       models.TripDetail
		moods, cities           []byte
		rating                  sql.NullFloat64
		startPoint, endPoint    string
		totalDays               int
		organizerName, picture  string
		pricingJSON, imagesJSON []byte
	)
	err := db.QueryRowContext(ctx, tripDetailSelect+` WHERE public_id = ? LIMIT 1`, publicID).Scan(
		&d.Trip.ID, &d.Trip.PublicID, &d.Trip.OrganizationID, &d.Trip.Name,
		&d.Trip.StartDate, &d.Trip.EndDate,
		&d.Trip.MinGroupSize, &d.Trip.MaxGroupSize,
		&moods, &cities, &rating, &d.Trip.TripStatus,
		&startPoint, &endPoint, &totalDays,
		&organizerName, &picture,
		&pricingJSON, &imagesJSON,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TripDetail{}, domain.NotFoundError{Resource: "trip " + publicID, Err: err}
	}
	if err != nil {
		return models.TripDetail{}, domain.InternalError{Msg: "failed to load trip", Err: err}
	}

	d.Trip.MoodTags = decodeStrings(moods)
	d.Trip.CityTags = decodeStrings(cities)
	if rating.Valid {
		v := rating.Float64
		d.Trip.Rating = &v
	}
	if startPoint != "" || endPoint != "" || totalDays != 0 {
		d.Itinerary = &models.TripItinerary{StartPoint: startPoint, EndPoint: endPoint, TotalDays: totalDays}
	}
	if organizerName != "" || picture != "" {
		d.Organizer = &models.OrganizerProfile{OrganizerName: organizerName}
		if picture != "" {
			d.Organizer.DisplayPicture = &models.Document{URL: picture}
		}
	}
	d.Pricing = DecodePricing(pricingJSON)
	d.Images = []models.TripImage{}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &d.Images); err != nil {
			utils.Log().Warn("trip images are not valid JSON", zap.String("trip", publicID), zap.Error(err))
			d.Images = []models.TripImage{}
		}
	}
	return d, nil
}

// OrganizationOf returns the organization owning the trip.
func (r TripRepository) OrganizationOf(ctx context.Context, publicID string) (string, error) {
	db := r.db()
	if db == nil {
		return "", domain.InternalError{Msg: "database not connected"}
	}
	var org string
	err := db.QueryRowContext(ctx, `SELECT organization_id FROM trips WHERE public_id = ? LIMIT 1`, publicID).Scan(&org)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.NotFoundError{Resource: "trip " + publicID, Err: err}
	}
	if err != nil {
		return "", domain.InternalError{Msg: "failed to load trip", Err: err}
	}
	return org, nil
}

// UpdatePricing replaces the stored pricing of a trip.
func (r TripRepository) UpdatePricing(ctx context.Context, publicID string, p *models.TripPricing) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return domain.InternalError{Msg: "failed to encode pricing", Err: err}
	}
	// MySQL reports 0 affected rows when the stored value is unchanged, so the
	// row count says nothing about existence; callers check that first.
	if _, err := db.ExecContext(ctx, `UPDATE trips SET pricing = ? WHERE public_id = ?`, string(raw), publicID); err != nil {
		return domain.InternalError{Msg: "failed to update pricing", Err: err}
	}
	return nil
}

// DecodePricing parses a stored pricing column. NULL or malformed JSON
// yields nil, which the resolvers price at 0.
func DecodePricing(raw []byte) *models.TripPricing {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var p models.TripPricing
	if err := json.Unmarshal(raw, &p); err != nil {
		utils.Log().Warn("stored trip pricing is not valid JSON", zap.Error(err))
		return nil
	}
	return &p
}

func decodeStrings(raw []byte) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}
