package services

import (
	"context"
	"strings"

	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"
	"tripmarket/internal/pricing"
	"tripmarket/internal/repositories"
	"tripmarket/internal/utils"

	"go.uber.org/zap"
)

const (
	// MaxNudges is how many times a traveller may remind the organizer of one lead.
	MaxNudges        = 3
	defaultLeadTitle = "Trip Inquiry"
)

type LeadService struct {
	Repo  repositories.LeadRepository
	Trips TripService
	// RequireComplete rejects leads while a MULTI category is unselected.
	RequireComplete bool
	RequestID       string
}

// CreateLeadInput is the traveller's request. Contact fields fall back to
// the caller's token claims.
type CreateLeadInput struct {
	Selection              pricing.Selection             `json:"selection"`
	TripTitle              string                        `json:"tripTitle"`
	CustomerName           string                        `json:"customerName"`
	Email                  string                        `json:"email"`
	Phone                  string                        `json:"phone"`
	PreferredCommunication models.PreferredCommunication `json:"preferredCommunication"`
	Message                string                        `json:"message"`
}

func (s LeadService) Create(ctx context.Context, rc domain.RequestContext, tripID string, in CreateLeadInput) (models.TripLead, error) {
	if rc.UserID == "" {
		return models.TripLead{}, domain.UnauthorizedError{}
	}
	d, err := s.Trips.Detail(ctx, tripID)
	if err != nil {
		return models.TripLead{}, err
	}

	comm := in.PreferredCommunication
	switch comm {
	case "":
		comm = models.CommunicationPhone
	case models.CommunicationEmail, models.CommunicationPhone, models.CommunicationWhatsApp:
	default:
		return models.TripLead{}, domain.ValidationError{Field: "preferredCommunication", Msg: "must be EMAIL, PHONE or WHATSAPP"}
	}

	name := firstNonEmpty(in.CustomerName, rc.Name)
	email := firstNonEmpty(in.Email, rc.Email)
	phone := firstNonEmpty(in.Phone, rc.Phone)
	if name == "" {
		return models.TripLead{}, domain.ValidationError{Field: "customerName", Msg: "required"}
	}
	if email == "" && phone == "" {
		return models.TripLead{}, domain.ValidationError{Field: "phone", Msg: "email or phone is required"}
	}
	if comm == models.CommunicationEmail && email == "" {
		return models.TripLead{}, domain.ValidationError{Field: "email", Msg: "required for EMAIL communication"}
	}

	res := BuildQuote(d, in.Selection)
	if s.RequireComplete && !res.Quote.Complete() {
		return models.TripLead{}, domain.ValidationError{
			Field: "selection",
			Msg:   "choose an option for: " + strings.Join(res.Quote.MissingCategories, ", "),
		}
	}

	title := defaultLeadTitle
	if d.Pricing != nil && strings.TrimSpace(d.Pricing.TripTitle) != "" {
		title = strings.TrimSpace(d.Pricing.TripTitle)
	}
	if t := strings.TrimSpace(in.TripTitle); t != "" {
		title = t
	}

	message := res.Summary
	if note := strings.TrimSpace(in.Message); note != "" {
		message += "\n\n" + note
	}

	lead := models.TripLead{
		TripPublicID:           d.Trip.PublicID,
		TripTitle:              title,
		OrganizationID:         d.Trip.OrganizationID,
		UserID:                 rc.UserID,
		CustomerName:           name,
		Email:                  email,
		Phone:                  phone,
		PreferredCommunication: comm,
		Message:                message,
		Status:                 models.LeadOpen,
		FinalPrice:             res.Quote.Total,
		PricingDetails:         pricing.CheckedPayload(d.Pricing, res.Selection),
		CreatedAt:              utils.NowUTC(),
	}
	id, err := s.Repo.Create(ctx, lead)
	if err != nil {
		return models.TripLead{}, err
	}
	lead.ID = id

	utils.LogEvent(s.RequestID, "leads", "create", "lead created",
		zap.Int64("lead_id", id),
		zap.String("trip", lead.TripPublicID),
		zap.Int64("final_price", lead.FinalPrice),
	)
	return lead, nil
}

func (s LeadService) List(ctx context.Context, rc domain.RequestContext) ([]models.TripLead, error) {
	if rc.UserID == "" {
		return nil, domain.UnauthorizedError{}
	}
	return s.Repo.ListByUser(ctx, rc.UserID)
}

func (s LeadService) Nudge(ctx context.Context, rc domain.RequestContext, leadID int64) (models.TripLead, error) {
	if rc.UserID == "" {
		return models.TripLead{}, domain.UnauthorizedError{}
	}
	if err := s.Repo.Nudge(ctx, rc.UserID, leadID, MaxNudges); err != nil {
		return models.TripLead{}, err
	}
	utils.LogEvent(s.RequestID, "leads", "nudge", "organizer nudged", zap.Int64("lead_id", leadID))
	return s.Repo.Get(ctx, rc.UserID, leadID)
}

// Unsend withdraws an open lead.
func (s LeadService) Unsend(ctx context.Context, rc domain.RequestContext, leadID int64) error {
	if rc.UserID == "" {
		return domain.UnauthorizedError{}
	}
	if err := s.Repo.Delete(ctx, rc.UserID, leadID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "leads", "unsend", "lead withdrawn", zap.Int64("lead_id", leadID))
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
