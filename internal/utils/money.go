package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupeePrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatRupee renders a whole-rupee amount with the Indian grouping, e.g. ₹1,500.
func FormatRupee(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "₹" + rupeePrinter.Sprintf("%d", amount)
}

// FormatPrice renders a price that may carry paise. The amount is rounded
// to paise first; whole results drop the fraction, anything else keeps two
// decimals.
func FormatPrice(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.Truncate(0)
	paise := d.Sub(whole).Shift(2).IntPart()
	out := sign + "₹" + rupeePrinter.Sprintf("%d", whole.IntPart())
	if paise != 0 {
		out += fmt.Sprintf(".%02d", paise)
	}
	return out
}
