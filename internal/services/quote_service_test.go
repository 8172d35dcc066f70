package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tripmarket/internal/domain"
	"tripmarket/internal/pricing"
)

func TestQuoteNormalizesWireSelection(t *testing.T) {
	svc := QuoteService{Trips: TripService{Loader: loaderFor(spitiTrip())}}
	sel := pricing.Selection{
		Options: map[string]string{"Stay": "A", "Transport": "Bicycle"},
		AddOns:  []string{"insurance", "insurance"},
	}

	res, err := svc.Quote(context.Background(), "spiti", sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Quote.Total != 520 {
		t.Fatalf("total = %d, want 520", res.Quote.Total)
	}
	if _, ok := res.Selection.Options["Transport"]; ok {
		t.Fatalf("SINGLE category should be dropped from the selection")
	}
	if res.Display != "₹520" {
		t.Fatalf("display = %q", res.Display)
	}
	if res.Summary != "Final price: ₹520\nSelected: Stay: A\nAdd-ons: insurance" {
		t.Fatalf("summary = %q", res.Summary)
	}
}

func TestQuoteUnknownTrip(t *testing.T) {
	svc := QuoteService{Trips: TripService{Loader: loaderFor()}}
	if _, err := svc.Quote(context.Background(), "nope", pricing.NewSelection()); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestQuotePDF(t *testing.T) {
	svc := QuoteService{Trips: TripService{Loader: loaderFor(spitiTrip())}}

	data, name, err := svc.QuotePDF(context.Background(), "spiti", pricing.NewSelection())
	if err != nil {
		t.Fatalf("QuotePDF returned error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if !strings.HasPrefix(name, "QUOTE_spiti_") || !strings.HasSuffix(name, ".pdf") {
		t.Fatalf("filename = %q", name)
	}
}

func TestBuildQuotePDFFilename(t *testing.T) {
	res := BuildQuote(goaTrip(), pricing.NewSelection())
	_, name, err := BuildQuotePDF(res, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "QUOTE_goa_20250304.pdf" {
		t.Fatalf("filename = %q", name)
	}
	if res.Quote.Total != 7600 {
		t.Fatalf("total = %d, want 7600", res.Quote.Total)
	}
}

func TestPDFAmount(t *testing.T) {
	if got := pdfAmount("₹1,500"); got != "INR 1,500" {
		t.Fatalf("got %q", got)
	}
}
