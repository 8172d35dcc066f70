package repositories

import (
	"context"
	"testing"
	"time"

	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var leadColumns = []string{
	"id", "trip_public_id", "trip_title", "organization_id", "user_id", "customer_name",
	"email", "phone", "preferred_communication", "message",
	"status", "nudge_count", "final_price", "pricing_details", "created_at",
}

func leadRow(rows *sqlmock.Rows, id int64, status string, nudges int) *sqlmock.Rows {
	return rows.AddRow(id, "trip-1", "Spiti Valley", "org-1", "user-1", "Asha",
		"asha@example.com", "", "PHONE", "Final price: ₹900",
		status, nudges, 900, nil, time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC))
}

func TestLeadCreateStoresPricingJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	lead := models.TripLead{
		TripPublicID:           "trip-1",
		TripTitle:              "Spiti Valley",
		OrganizationID:         "org-1",
		UserID:                 "user-1",
		CustomerName:           "Asha",
		Phone:                  "+91 98765 43210",
		PreferredCommunication: models.CommunicationPhone,
		Message:                "Final price: ₹900",
		Status:                 models.LeadOpen,
		FinalPrice:             900,
		PricingDetails:         &models.TripPricing{TripPricingType: models.PricingSimple, Simple: &models.SimplePricing{BasePrice: 1000, DiscountPercent: 10}},
	}
	mock.ExpectExec("INSERT INTO trip_leads").
		WithArgs("trip-1", "Spiti Valley", "org-1", "user-1", "Asha", nil, "+91 98765 43210",
			"PHONE", "Final price: ₹900", "OPEN", int64(900), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := LeadRepository{DB: db}.Create(context.Background(), lead)
	if err != nil || id != 42 {
		t.Fatalf("got id=%d err=%v", id, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLeadListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(leadColumns)
	leadRow(rows, 2, "OPEN", 0)
	leadRow(rows, 1, "CLOSED", 3)
	mock.ExpectQuery("FROM trip_leads WHERE user_id = \\?").WithArgs("user-1").WillReturnRows(rows)

	leads, err := LeadRepository{DB: db}.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leads) != 2 || leads[0].ID != 2 || leads[1].Status != models.LeadClosed {
		t.Fatalf("unexpected leads %+v", leads)
	}
	if leads[0].PreferredCommunication != models.CommunicationPhone {
		t.Fatalf("communication = %q", leads[0].PreferredCommunication)
	}
}

func TestLeadNudgeLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE trip_leads SET nudge_count").
		WithArgs(int64(5), "user-1", "OPEN", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE trip_leads SET nudge_count").
		WithArgs(int64(5), "user-1", "OPEN", 3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM trip_leads WHERE id = \\? AND user_id = \\?").WithArgs(int64(5), "user-1").
		WillReturnRows(leadRow(sqlmock.NewRows(leadColumns), 5, "OPEN", 3))

	repo := LeadRepository{DB: db}
	if err := repo.Nudge(context.Background(), "user-1", 5, 3); err != nil {
		t.Fatalf("first nudge: %v", err)
	}
	if err := repo.Nudge(context.Background(), "user-1", 5, 3); !domain.IsConflict(err) {
		t.Fatalf("expected conflict once the limit is hit, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLeadDeleteOnlyOpen(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM trip_leads").WithArgs(int64(1), "user-1", "OPEN").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM trip_leads WHERE id").WithArgs(int64(1), "user-1").
		WillReturnRows(leadRow(sqlmock.NewRows(leadColumns), 1, "CONVERTED", 0))

	mock.ExpectExec("DELETE FROM trip_leads").WithArgs(int64(9), "user-1", "OPEN").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM trip_leads WHERE id").WithArgs(int64(9), "user-1").
		WillReturnRows(sqlmock.NewRows(leadColumns))

	repo := LeadRepository{DB: db}
	if err := repo.Delete(context.Background(), "user-1", 1); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for converted lead, got %v", err)
	}
	if err := repo.Delete(context.Background(), "user-1", 9); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
