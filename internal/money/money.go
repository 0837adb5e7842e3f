// Package money provides the Price value type used across the storefront and
// the small set of pure operations the cart needs: rounding, multiplication by
// a quantity, addition, and display formatting.
//
// All arithmetic rounds to 2 decimal places at the point a new Price is
// materialized. Operations are deterministic and share no state.
package money

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Price is a monetary value tagged with an ISO 4217 currency code.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Zero returns a zero Price in the given currency.
func Zero(cur string) Price {
	return Price{Amount: 0, Currency: cur}
}

// Multiply scales p by n. n is expected to be a non-negative quantity; it is
// not validated, so fractional or negative input yields a mathematically
// consistent but semantically meaningless result.
func Multiply(p Price, n float64) Price {
	return Price{Amount: Round2(p.Amount * n), Currency: p.Currency}
}

// Add sums two prices. The currency is taken from a; no cross-currency
// validation is performed.
func Add(a, b Price) Price {
	return Price{Amount: Round2(a.Amount + b.Amount), Currency: a.Currency}
}

// Format renders p for display using the currency's conventional symbol and
// digit grouping. Unknown currency codes fall back to "<amount> <code>".
func Format(p Price) string {
	unit, err := currency.ParseISO(strings.TrimSpace(p.Currency))
	if err != nil {
		return fmt.Sprintf("%.2f %s", p.Amount, p.Currency)
	}
	pr := message.NewPrinter(language.English)
	return pr.Sprint(currency.Symbol(unit.Amount(p.Amount)))
}
