package compare

import (
	"fmt"
	"strconv"
	"strings"

	"tripmarket/internal/domain/models"
	"tripmarket/internal/pricing"
	"tripmarket/internal/utils"

	"github.com/shopspring/decimal"
)

// MaxTrips is the most trips shown side by side.
const MaxTrips = 3

const (
	defaultRating    = 4.5
	placeholderImage = "/placeholder.svg"
	missing          = "-"
)

type Column struct {
	TripID          string  `json:"tripId"`
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	OrganiserAvatar string  `json:"organiserAvatar"`
	StartingPrice   float64 `json:"startingPrice"`
}

type Row struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// Table is the projected comparison. Values[i] of every row belongs to Columns[i].
type Table struct {
	Empty   bool     `json:"empty"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

type attribute struct {
	key    string
	label  string
	render func(d *models.TripDetail) string
}

var attributes = []attribute{
	{"name", "Name", func(d *models.TripDetail) string { return orDash(d.Trip.Name) }},
	{"organiser", "Organiser", organiser},
	{"region", "Region", region},
	{"route", "Route", route},
	{"duration", "Duration", duration},
	{"travelDates", "Travel Dates", travelDates},
	{"moods", "Moods", moods},
	{"rating", "Rating", rating},
	{"avgGroupSize", "Avg. Group Size", groupSize},
	{"startingPrice", "Starting Price", startingPrice},
	{"bookNow", "Book Now", bookNow},
}

// Project lays out up to MaxTrips trips in input order. Nil entries are
// skipped and anything past MaxTrips is ignored.
func Project(trips []*models.TripDetail) Table {
	kept := make([]*models.TripDetail, 0, MaxTrips)
	for _, t := range trips {
		if t == nil {
			continue
		}
		kept = append(kept, t)
		if len(kept) == MaxTrips {
			break
		}
	}
	if len(kept) == 0 {
		return Table{Empty: true, Columns: []Column{}, Rows: []Row{}}
	}

	table := Table{Columns: make([]Column, 0, len(kept)), Rows: make([]Row, 0, len(attributes))}
	for _, d := range kept {
		table.Columns = append(table.Columns, Column{
			TripID:          d.Trip.PublicID,
			Name:            d.Trip.Name,
			Image:           image(d),
			OrganiserAvatar: avatar(d),
			StartingPrice:   pricing.StartingPrice(d.Pricing),
		})
	}
	for _, attr := range attributes {
		row := Row{Key: attr.key, Label: attr.label, Values: make([]string, 0, len(kept))}
		for _, d := range kept {
			row.Values = append(row.Values, attr.render(d))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// Row returns the row with the given key.
func (t Table) Row(key string) (Row, bool) {
	for _, r := range t.Rows {
		if r.Key == key {
			return r, true
		}
	}
	return Row{}, false
}

func orDash(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return missing
	}
	return s
}

func organiser(d *models.TripDetail) string {
	if d.Organizer == nil {
		return missing
	}
	return orDash(d.Organizer.OrganizerName)
}

func region(d *models.TripDetail) string {
	if len(d.Trip.CityTags) == 0 {
		return missing
	}
	return orDash(d.Trip.CityTags[0])
}

func route(d *models.TripDetail) string {
	if d.Itinerary == nil {
		return missing
	}
	start, end := strings.TrimSpace(d.Itinerary.StartPoint), strings.TrimSpace(d.Itinerary.EndPoint)
	if start == "" && end == "" {
		return missing
	}
	return orDash(start) + " → " + orDash(end)
}

func duration(d *models.TripDetail) string {
	if d.Itinerary == nil || d.Itinerary.TotalDays <= 0 {
		return missing
	}
	days := d.Itinerary.TotalDays
	return fmt.Sprintf("%dD/%dN", days, days-1)
}

func travelDates(d *models.TripDetail) string {
	start, end := utils.DisplayDate(d.Trip.StartDate), utils.DisplayDate(d.Trip.EndDate)
	if start == "" && end == "" {
		return missing
	}
	return orDash(start) + " - " + orDash(end)
}

func moods(d *models.TripDetail) string {
	tags := utils.NormalizeTags(d.Trip.MoodTags)
	if len(tags) == 0 {
		return missing
	}
	return strings.Join(tags, ", ")
}

func rating(d *models.TripDetail) string {
	r := defaultRating
	if d.Trip.Rating != nil && *d.Trip.Rating > 0 {
		r = *d.Trip.Rating
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

func groupSize(d *models.TripDetail) string {
	lo, hi := d.Trip.MinGroupSize, d.Trip.MaxGroupSize
	switch {
	case lo <= 0 && hi <= 0:
		return missing
	case lo <= 0:
		return fmt.Sprintf("%s to %d", missing, hi)
	case hi <= 0:
		return fmt.Sprintf("%d to %s", lo, missing)
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}

func startingPrice(d *models.TripDetail) string {
	p := pricing.StartingPrice(d.Pricing)
	return utils.FormatRupee(pricing.RoundAmount(decimal.NewFromFloat(p)))
}

func bookNow(d *models.TripDetail) string {
	return "/trips/" + d.Trip.PublicID
}

func image(d *models.TripDetail) string {
	if len(d.Images) > 0 && strings.TrimSpace(d.Images[0].URL) != "" {
		return d.Images[0].URL
	}
	return placeholderImage
}

func avatar(d *models.TripDetail) string {
	if d.Organizer == nil || d.Organizer.DisplayPicture == nil {
		return ""
	}
	return d.Organizer.DisplayPicture.URL
}
