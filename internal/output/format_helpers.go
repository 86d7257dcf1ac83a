package output

import (
	money "github.com/LipeHeitz/pricing-k2/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatBRL formats a decimal amount in the Brazilian convention used by
// the commercial reports: thousands dot, decimal comma, cents rounded up.
// Kept here so every formatter shares one implementation.
func FormatBRL(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).String()
}

// FormatCurrency prefixes FormatBRL with the currency symbol.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentBR formats a percentage with 2 decimals and a comma
// separator.
func FormatPercentBR(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	out := []byte(s)
	for i := range out {
		if out[i] == '.' {
			out[i] = ','
		}
	}
	return string(out) + "%"
}
