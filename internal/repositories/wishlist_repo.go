package repositories

import (
	"context"
	"database/sql"
	"strings"

	intconfig "tripmarket/internal/config"
	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"
)

type WishlistRepository struct {
	DB *sql.DB
}

func (r WishlistRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// WishlistRecord pairs a wishlist row with the stored pricing so the caller
// can compute the starting price.
type WishlistRecord struct {
	Trip    models.WishlistTrip
	Pricing *models.TripPricing
}

// Add stores the trip in the user's wishlist. Adding twice is a no-op.
func (r WishlistRepository) Add(ctx context.Context, orgID, userID, tripID string) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO wishlists (organization_id, user_id, trip_public_id)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE trip_public_id = trip_public_id
	`, orgID, userID, tripID)
	if err != nil {
		return domain.InternalError{Msg: "failed to add to wishlist", Err: err}
	}
	return nil
}

// Remove deletes the trip from the user's wishlist.
func (r WishlistRepository) Remove(ctx context.Context, userID, tripID string) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	res, err := db.ExecContext(ctx, `DELETE FROM wishlists WHERE user_id = ? AND trip_public_id = ?`, userID, tripID)
	if err != nil {
		return domain.InternalError{Msg: "failed to remove from wishlist", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "wishlist entry"}
	}
	return nil
}

func (r WishlistRepository) Exists(ctx context.Context, userID, tripID string) (bool, error) {
	db := r.db()
	if db == nil {
		return false, domain.InternalError{Msg: "database not connected"}
	}
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM wishlists WHERE user_id = ? AND trip_public_id = ?`, userID, tripID).Scan(&n)
	if err != nil {
		return false, domain.InternalError{Msg: "failed to check wishlist", Err: err}
	}
	return n > 0, nil
}

// List returns one page of the user's wishlist, newest first, and the total count.
func (r WishlistRepository) List(ctx context.Context, userID string, page domain.Pagination) ([]WishlistRecord, int, error) {
	db := r.db()
	if db == nil {
		return nil, 0, domain.InternalError{Msg: "database not connected"}
	}
	page = page.Normalize()

	var total int
	if err := db.QueryRowContext(ctx, `
		SELECT COUNT(1)
		FROM wishlists w
		JOIN trips t ON t.public_id = w.trip_public_id
		WHERE w.user_id = ?
	`, userID).Scan(&total); err != nil {
		return nil, 0, domain.InternalError{Msg: "failed to count wishlist", Err: err}
	}
	if total == 0 {
		return []WishlistRecord{}, 0, nil
	}

	rows, err := db.QueryContext(ctx, `
		SELECT t.public_id, t.name,
		       COALESCE(DATE_FORMAT(t.start_date, '%Y-%m-%d'), ''),
		       COALESCE(DATE_FORMAT(t.end_date, '%Y-%m-%d'), ''),
		       t.mood_tags, t.city_tags,
		       COALESCE(t.start_point, ''), COALESCE(t.end_point, ''),
		       COALESCE(t.organizer_name, ''), t.pricing
		FROM wishlists w
		JOIN trips t ON t.public_id = w.trip_public_id
		WHERE w.user_id = ?
		ORDER BY w.created_at DESC, w.id DESC
		LIMIT ? OFFSET ?
	`, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, domain.InternalError{Msg: "failed to list wishlist", Err: err}
	}
	defer rows.Close()

	out := []WishlistRecord{}
	for rows.Next() {
		var (
			rec                  WishlistRecord
			moods, cities, price []byte
		)
		if err := rows.Scan(
			&rec.Trip.PublicID, &rec.Trip.Name, &rec.Trip.StartDate, &rec.Trip.EndDate,
			&moods, &cities, &rec.Trip.StartPoint, &rec.Trip.EndPoint,
			&rec.Trip.OrganizerName, &price,
		); err != nil {
			return nil, 0, domain.InternalError{Msg: "failed to read wishlist", Err: err}
		}
		rec.Trip.Name = strings.TrimSpace(rec.Trip.Name)
		rec.Trip.MoodTags = decodeStrings(moods)
		rec.Trip.CityTags = decodeStrings(cities)
		rec.Trip.Wishlisted = true
		rec.Pricing = DecodePricing(price)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domain.InternalError{Msg: "failed to read wishlist", Err: err}
	}
	return out, total, nil
}
