package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"tripmarket/internal/domain/models"
	"tripmarket/internal/pricing"
	"tripmarket/internal/utils"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

// QuoteService prices a selection against a trip.
type QuoteService struct {
	Trips     TripService
	RequestID string
}

type QuoteResult struct {
	TripID    string            `json:"tripId"`
	TripName  string            `json:"tripName"`
	Selection pricing.Selection `json:"selection"`
	Quote     pricing.Quote     `json:"quote"`
	Display   string            `json:"display"`
	Summary   string            `json:"summary"`
}

func (s QuoteService) Quote(ctx context.Context, tripID string, sel pricing.Selection) (QuoteResult, error) {
	d, err := s.Trips.Detail(ctx, tripID)
	if err != nil {
		return QuoteResult{}, err
	}
	res := BuildQuote(d, sel)
	utils.LogEvent(s.RequestID, "quote", "final_price", "quote computed",
		zap.String("trip", res.TripID),
		zap.Int64("total", res.Quote.Total),
		zap.Strings("missing", res.Quote.MissingCategories),
	)
	return res, nil
}

func (s QuoteService) QuotePDF(ctx context.Context, tripID string, sel pricing.Selection) ([]byte, string, error) {
	res, err := s.Quote(ctx, tripID, sel)
	if err != nil {
		return nil, "", err
	}
	return BuildQuotePDF(res, time.Now())
}

// BuildQuote resolves the final price of a trip for a selection received
// over the wire.
func BuildQuote(d models.TripDetail, sel pricing.Selection) QuoteResult {
	sel = sel.Normalize(d.Pricing)
	q := pricing.FinalPrice(d.Pricing, sel)
	return QuoteResult{
		TripID:    d.Trip.PublicID,
		TripName:  d.Trip.Name,
		Selection: sel,
		Quote:     q,
		Display:   utils.FormatRupee(q.Total),
		Summary:   pricing.Summary(d.Pricing, sel, q),
	}
}

// BuildQuotePDF renders the breakdown as a one-page quotation.
func BuildQuotePDF(r QuoteResult, issued time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Trip Quotation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP QUOTATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, tr("Trip       : "+safe(r.TripName, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Trip ID    : "+safe(r.TripID, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Pricing    : "+safe(string(r.Quote.PricingType), "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+issued.Format("02 Jan 2006 15:04"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range r.Quote.Lines {
		label := line.Label
		if line.Detail != "" {
			label += ": " + line.Detail
		}
		if line.Kind == pricing.LineAddOn {
			label = "Add-on: " + label
		}
		pdf.CellFormat(120, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, pdfAmount(utils.FormatPrice(line.Amount)), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, pdfAmount(utils.FormatRupee(r.Quote.Total)), "T", 1, "R", false, 0, "")

	if len(r.Quote.MissingCategories) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, tr("Not yet chosen: "+strings.Join(r.Quote.MissingCategories, ", ")+". The total excludes these categories."), "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This quotation is indicative. The organizer confirms the final amount.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("QUOTE_%s_%s.pdf", safeFilenamePart(r.TripID), issued.Format("20060102"))
	return buf.Bytes(), filename, nil
}

// The core fonts have no rupee glyph.
func pdfAmount(formatted string) string {
	return strings.Replace(formatted, "₹", "INR ", 1)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
