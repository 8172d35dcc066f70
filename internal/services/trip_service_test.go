package services

import (
	"context"
	"testing"

	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"
	"tripmarket/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func organizer(org string) domain.RequestContext {
	return domain.RequestContext{UserID: "org-user", OrganizationID: org, Role: domain.RoleOrganizer}
}

func simplePricing(base float64) *models.TripPricing {
	return &models.TripPricing{Simple: &models.SimplePricing{BasePrice: base}}
}

func TestStartingPriceResult(t *testing.T) {
	svc := TripService{Loader: loaderFor(spitiTrip(), goaTrip())}

	res, err := svc.StartingPrice(context.Background(), "spiti")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StartingPrice != 500 || res.Display != "₹500" || res.PricingType != models.PricingDynamic {
		t.Fatalf("unexpected result %+v", res)
	}

	if _, err := svc.StartingPrice(context.Background(), " "); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for blank id, got %v", err)
	}
}

func TestUpdatePricingByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT organization_id FROM trips").WithArgs("spiti").
		WillReturnRows(sqlmock.NewRows([]string{"organization_id"}).AddRow("org-1"))
	mock.ExpectExec("UPDATE trips SET pricing").
		WithArgs(sqlmock.AnyArg(), "spiti").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := TripService{TripRepo: repositories.TripRepository{DB: db}}
	p := simplePricing(900)
	if err := svc.UpdatePricing(context.Background(), organizer("org-1"), "spiti", p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TripPricingType != models.PricingSimple {
		t.Fatalf("pricing type should be filled in, got %q", p.TripPricingType)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdatePricingOtherOrganizationForbidden(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT organization_id FROM trips").WithArgs("spiti").
		WillReturnRows(sqlmock.NewRows([]string{"organization_id"}).AddRow("org-1"))

	svc := TripService{TripRepo: repositories.TripRepository{DB: db}}
	err = svc.UpdatePricing(context.Background(), organizer("org-2"), "spiti", simplePricing(900))
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdatePricingRejectsBeforeTouchingDB(t *testing.T) {
	svc := TripService{}
	ctx := context.Background()

	if err := svc.UpdatePricing(ctx, domain.RequestContext{}, "spiti", simplePricing(1)); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if err := svc.UpdatePricing(ctx, traveller, "spiti", simplePricing(1)); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden for traveller, got %v", err)
	}
	if err := svc.UpdatePricing(ctx, organizer("org-1"), "spiti", simplePricing(-5)); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdatePricingUnchangedValueSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT organization_id FROM trips").WithArgs("spiti").
		WillReturnRows(sqlmock.NewRows([]string{"organization_id"}).AddRow("org-1"))
	mock.ExpectExec("UPDATE trips SET pricing").
		WithArgs(sqlmock.AnyArg(), "spiti").
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := TripService{TripRepo: repositories.TripRepository{DB: db}}
	if err := svc.UpdatePricing(context.Background(), organizer("org-1"), "spiti", simplePricing(900)); err != nil {
		t.Fatalf("re-saving the same pricing: unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdatePricingMissingTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT organization_id FROM trips").WithArgs("gone").
		WillReturnRows(sqlmock.NewRows([]string{"organization_id"}))

	svc := TripService{TripRepo: repositories.TripRepository{DB: db}}
	if err := svc.UpdatePricing(context.Background(), organizer("org-1"), "gone", simplePricing(900)); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
