package utils

import (
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with the currency symbol and display
// precision. Monetary values always show at least two decimal digits at the
// rendering boundary; intermediate math keeps full precision.
// Example: 1234.5 with USD returns "$1234.50".
func FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	places := currency.Precision
	if places < 2 {
		places = 2
	}
	return currency.Symbol + amount.StringFixed(int32(places))
}

// FormatWithPrecision formats an amount with the given number of decimal
// places, without a symbol.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
