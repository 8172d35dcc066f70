package models

import "time"

type PreferredCommunication string

const (
	CommunicationEmail    PreferredCommunication = "EMAIL"
	CommunicationPhone    PreferredCommunication = "PHONE"
	CommunicationWhatsApp PreferredCommunication = "WHATSAPP"
)

type LeadStatus string

const (
	LeadOpen       LeadStatus = "OPEN"
	LeadInProgress LeadStatus = "IN_PROGRESS"
	LeadClosed     LeadStatus = "CLOSED"
	LeadCancelled  LeadStatus = "CANCELLED"
	LeadConverted  LeadStatus = "CONVERTED"
)

// TripLead is a traveller's request to the organizer, carrying the priced selection.
type TripLead struct {
	ID                     int64                  `json:"id"`
	TripPublicID           string                 `json:"tripPublicId"`
	TripTitle              string                 `json:"tripTitle"`
	OrganizationID         string                 `json:"organizationId"`
	UserID                 string                 `json:"userId"`
	CustomerName           string                 `json:"customerName"`
	Email                  string                 `json:"email"`
	Phone                  string                 `json:"phone"`
	PreferredCommunication PreferredCommunication `json:"preferredCommunication"`
	Message                string                 `json:"message"`
	Status                 LeadStatus             `json:"tripLeadsStatus"`
	NudgeCount             int                    `json:"nudgeCount"`
	FinalPrice             int64                  `json:"finalPrice"`
	PricingDetails         *TripPricing           `json:"pricingDetails,omitempty"`
	CreatedAt              time.Time              `json:"createdDate"`
}

// WishlistTrip is one row of a user's wishlist.
type WishlistTrip struct {
	PublicID      string   `json:"publicId"`
	Name          string   `json:"name"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	MoodTags      []string `json:"moodTags"`
	CityTags      []string `json:"cityTags"`
	StartPoint    string   `json:"startPoint"`
	EndPoint      string   `json:"endPoint"`
	OrganizerName string   `json:"organizerName"`
	StartingFrom  float64  `json:"startingFrom"`
	Wishlisted    bool     `json:"wishlisted"`
}
