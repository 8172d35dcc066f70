package models

// Trip is the tripResponse block of the trip detail payload.
type Trip struct {
	ID             int64    `json:"-"`
	PublicID       string   `json:"publicId"`
	OrganizationID string   `json:"organizationId"`
	Name           string   `json:"name"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	MinGroupSize   int      `json:"minGroupSize"`
	MaxGroupSize   int      `json:"maxGroupSize"`
	MoodTags       []string `json:"moodTags"`
	CityTags       []string `json:"cityTags"`
	Rating         *float64 `json:"rating,omitempty"`
	TripStatus     string   `json:"tripStatus"`
}

type TripItinerary struct {
	StartPoint string `json:"startPoint"`
	EndPoint   string `json:"endPoint"`
	TotalDays  int    `json:"totalDays"`
}

type Document struct {
	URL string `json:"url"`
}

type OrganizerProfile struct {
	OrganizerName  string    `json:"organizerName"`
	DisplayPicture *Document `json:"displayPicture,omitempty"`
}

type TripImage struct {
	URL string `json:"url"`
}

// TripDetail is the full payload returned by the trip detail endpoint.
type TripDetail struct {
	Trip      Trip              `json:"tripResponse"`
	Itinerary *TripItinerary    `json:"tripItineraryResponse"`
	Organizer *OrganizerProfile `json:"organizerProfileResponse"`
	Pricing   *TripPricing      `json:"tripPricingDTO"`
	Images    []TripImage       `json:"images"`
}
