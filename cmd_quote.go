package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"tripmarket/internal/domain/models"
	"tripmarket/internal/pricing"
	"tripmarket/internal/services"
	"tripmarket/internal/utils"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	quoteFile    string
	quoteTitle   string
	quoteSelects []string
	quoteAddOns  []string
	quotePDF     string
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a selection against a pricing file",
	Long: `Resolves the final price of a trip without a database.

The pricing file holds a trip pricing payload in YAML or JSON, using the
same field names as the API.

Example:
  tripmarket quote --file spiti.yaml --select Stay=Deluxe --addon Insurance --pdf quote.pdf`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteFile, "file", "f", "", "pricing file (yaml or json)")
	quoteCmd.Flags().StringVar(&quoteTitle, "title", "", "trip name printed on the quote")
	quoteCmd.Flags().StringArrayVar(&quoteSelects, "select", nil, "category=option, repeatable")
	quoteCmd.Flags().StringArrayVar(&quoteAddOns, "addon", nil, "add-on name, repeatable")
	quoteCmd.Flags().StringVar(&quotePDF, "pdf", "", "write a PDF quotation to this path")
	_ = quoteCmd.MarkFlagRequired("file")
}

func runQuote(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(quoteFile)
	if err != nil {
		return fmt.Errorf("read pricing file: %w", err)
	}
	p, err := decodePricingFile(raw)
	if err != nil {
		return err
	}
	sel, err := selectionFromFlags(p, quoteSelects, quoteAddOns)
	if err != nil {
		return err
	}

	title := quoteTitle
	if title == "" {
		title = p.TripTitle
	}
	res := services.BuildQuote(models.TripDetail{Trip: models.Trip{Name: title}, Pricing: p}, sel)

	out := cmd.OutOrStdout()
	for _, l := range res.Quote.Lines {
		fmt.Fprintf(out, "%-32s %12s\n", l.Label, utils.FormatPrice(l.Amount))
	}
	fmt.Fprintf(out, "%-32s %12s\n", "Total", res.Display)
	if len(res.Quote.MissingCategories) > 0 {
		fmt.Fprintf(out, "not selected: %s\n", strings.Join(res.Quote.MissingCategories, ", "))
	}

	if quotePDF == "" {
		return nil
	}
	data, _, err := services.BuildQuotePDF(res, time.Now())
	if err != nil {
		return err
	}
	if err := os.WriteFile(quotePDF, data, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	logger.Info("quotation written")
	return nil
}

// decodePricingFile accepts YAML or JSON. YAML is decoded generically and
// re-encoded so the JSON field names of TripPricing apply to both.
func decodePricingFile(raw []byte) (*models.TripPricing, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse pricing file: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("pricing file is empty")
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("parse pricing file: %w", err)
	}
	var p models.TripPricing
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse pricing file: %w", err)
	}
	if err := pricing.Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func selectionFromFlags(p *models.TripPricing, selects, addOns []string) (pricing.Selection, error) {
	sel := pricing.NewSelection()
	for _, s := range selects {
		cat, opt, ok := strings.Cut(s, "=")
		if !ok {
			return sel, fmt.Errorf("--select %q: want category=option", s)
		}
		if err := sel.Select(p, strings.TrimSpace(cat), strings.TrimSpace(opt)); err != nil {
			return sel, err
		}
	}
	for _, a := range addOns {
		sel.ToggleAddOn(a)
	}
	return sel, nil
}
