package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	intconfig "tripmarket/internal/config"
	intdb "tripmarket/internal/db"
	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"
)

type LeadRepository struct {
	DB *sql.DB
}

func (r LeadRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const leadSelect = `
	SELECT id, trip_public_id, trip_title, organization_id, user_id, customer_name,
	       COALESCE(email, ''), COALESCE(phone, ''), preferred_communication, message,
	       status, nudge_count, final_price, pricing_details, created_at
	FROM trip_leads`

func (r LeadRepository) Create(ctx context.Context, l models.TripLead) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "database not connected"}
	}
	var details any
	if l.PricingDetails != nil {
		raw, err := json.Marshal(l.PricingDetails)
		if err != nil {
			return 0, domain.InternalError{Msg: "failed to encode pricing details", Err: err}
		}
		details = string(raw)
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO trip_leads
			(trip_public_id, trip_title, organization_id, user_id, customer_name, email, phone,
			 preferred_communication, message, status, nudge_count, final_price, pricing_details)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
	`, l.TripPublicID, l.TripTitle, l.OrganizationID, l.UserID, l.CustomerName,
		intdb.NullIfEmpty(l.Email), intdb.NullIfEmpty(l.Phone),
		string(l.PreferredCommunication), l.Message, string(l.Status), l.FinalPrice, details)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to create lead", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to read lead id", Err: err}
	}
	return id, nil
}

func (r LeadRepository) Get(ctx context.Context, userID string, id int64) (models.TripLead, error) {
	db := r.db()
	if db == nil {
		return models.TripLead{}, domain.InternalError{Msg: "database not connected"}
	}
	row := db.QueryRowContext(ctx, leadSelect+` WHERE id = ? AND user_id = ? LIMIT 1`, id, userID)
	l, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TripLead{}, domain.NotFoundError{Resource: fmt.Sprintf("lead %d", id), Err: err}
	}
	if err != nil {
		return models.TripLead{}, domain.InternalError{Msg: "failed to load lead", Err: err}
	}
	return l, nil
}

// ListByUser returns the user's leads, newest first.
func (r LeadRepository) ListByUser(ctx context.Context, userID string) ([]models.TripLead, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}
	rows, err := db.QueryContext(ctx, leadSelect+` WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list leads", Err: err}
	}
	defer rows.Close()

	out := []models.TripLead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "failed to read lead", Err: err}
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "failed to read lead", Err: err}
	}
	return out, nil
}

// Nudge bumps the nudge counter of an open lead, up to max.
func (r LeadRepository) Nudge(ctx context.Context, userID string, id int64, max int) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	res, err := db.ExecContext(ctx, `
		UPDATE trip_leads SET nudge_count = nudge_count + 1
		WHERE id = ? AND user_id = ? AND status = ? AND nudge_count < ?
	`, id, userID, string(models.LeadOpen), max)
	if err != nil {
		return domain.InternalError{Msg: "failed to nudge lead", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}

	l, err := r.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if l.Status != models.LeadOpen {
		return domain.ConflictError{Resource: "lead", Msg: "only open leads can be nudged"}
	}
	return domain.ConflictError{Resource: "lead", Msg: fmt.Sprintf("nudge limit of %d reached", max)}
}

// Delete removes an open lead owned by the user.
func (r LeadRepository) Delete(ctx context.Context, userID string, id int64) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	res, err := db.ExecContext(ctx, `DELETE FROM trip_leads WHERE id = ? AND user_id = ? AND status = ?`,
		id, userID, string(models.LeadOpen))
	if err != nil {
		return domain.InternalError{Msg: "failed to delete lead", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	if _, err := r.Get(ctx, userID, id); err != nil {
		return err
	}
	return domain.ConflictError{Resource: "lead", Msg: "only open leads can be unsent"}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(s rowScanner) (models.TripLead, error) {
	var (
		l       models.TripLead
		comm    string
		status  string
		details []byte
	)
	err := s.Scan(
		&l.ID, &l.TripPublicID, &l.TripTitle, &l.OrganizationID, &l.UserID, &l.CustomerName,
		&l.Email, &l.Phone, &comm, &l.Message,
		&status, &l.NudgeCount, &l.FinalPrice, &details, &l.CreatedAt,
	)
	if err != nil {
		return models.TripLead{}, err
	}
	l.PreferredCommunication = models.PreferredCommunication(comm)
	l.Status = models.LeadStatus(status)
	l.PricingDetails = DecodePricing(details)
	return l, nil
}
