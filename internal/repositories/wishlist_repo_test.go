package repositories

import (
	"context"
	"testing"

	"tripmarket/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestWishlistAddIsUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO wishlists .* ON DUPLICATE KEY UPDATE").
		WithArgs("org-1", "user-1", "trip-1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := (WishlistRepository{DB: db}).Add(context.Background(), "org-1", "user-1", "trip-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWishlistRemoveMissingIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM wishlists").WithArgs("user-1", "trip-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = WishlistRepository{DB: db}.Remove(context.Background(), "user-1", "trip-1")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestWishlistExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(1\\) FROM wishlists").WithArgs("user-1", "trip-1").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	ok, err := WishlistRepository{DB: db}.Exists(context.Background(), "user-1", "trip-1")
	if err != nil || !ok {
		t.Fatalf("got %v, %v", ok, err)
	}
}

func TestWishlistListPaged(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(1\\)").WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(21))
	mock.ExpectQuery("FROM wishlists w").WithArgs("user-1", 20, 20).
		WillReturnRows(sqlmock.NewRows([]string{
			"public_id", "name", "start_date", "end_date", "mood_tags", "city_tags",
			"start_point", "end_point", "organizer_name", "pricing",
		}).AddRow(
			"trip-21", " Goa Getaway ", "2025-12-20", "2025-12-24", `["Beach"]`, `["Goa"]`,
			"Panaji", "Panaji", "Sunny Trips",
			`{"tripPricingType":"SIMPLE","simplePricingRequest":{"basePrice":8000}}`,
		))

	recs, total, err := WishlistRepository{DB: db}.List(context.Background(), "user-1", domain.Pagination{Page: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 21 || len(recs) != 1 {
		t.Fatalf("got total=%d len=%d", total, len(recs))
	}
	r := recs[0]
	if r.Trip.Name != "Goa Getaway" || !r.Trip.Wishlisted || r.Pricing == nil {
		t.Fatalf("unexpected record %+v", r)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWishlistListEmptySkipsPageQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(1\\)").WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))

	recs, total, err := WishlistRepository{DB: db}.List(context.Background(), "user-1", domain.Pagination{})
	if err != nil || total != 0 || recs == nil || len(recs) != 0 {
		t.Fatalf("got %v %d %v", recs, total, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
