// Package currencies holds the static ISO 4217 reference data used for
// invoice display formatting. The registry is immutable at runtime; custom
// currencies are out of scope.
package currencies

import (
	"fmt"
	"sort"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
)

// popular lists the codes surfaced first when presenting the registry to a
// user; the remainder follows alphabetically.
var popular = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF", "CNY", "INR", "SGD"}

var registry = map[string]domain.Currency{
	"USD": {CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2},
	"EUR": {CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2},
	"GBP": {CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", Precision: 2},
	"JPY": {CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", Precision: 0},
	"CAD": {CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar", Precision: 2},
	"AUD": {CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar", Precision: 2},
	"CHF": {CurrencyCode: "CHF", Symbol: "CHF", Name: "Swiss Franc", Precision: 2},
	"CNY": {CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan", Precision: 2},
	"INR": {CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", Precision: 2},
	"SGD": {CurrencyCode: "SGD", Symbol: "S$", Name: "Singapore Dollar", Precision: 2},
	"AED": {CurrencyCode: "AED", Symbol: "د.إ", Name: "UAE Dirham", Precision: 2},
	"ARS": {CurrencyCode: "ARS", Symbol: "$", Name: "Argentine Peso", Precision: 2},
	"BDT": {CurrencyCode: "BDT", Symbol: "৳", Name: "Bangladeshi Taka", Precision: 2},
	"BGN": {CurrencyCode: "BGN", Symbol: "лв", Name: "Bulgarian Lev", Precision: 2},
	"BHD": {CurrencyCode: "BHD", Symbol: ".د.ب", Name: "Bahraini Dinar", Precision: 3},
	"BRL": {CurrencyCode: "BRL", Symbol: "R$", Name: "Brazilian Real", Precision: 2},
	"CLP": {CurrencyCode: "CLP", Symbol: "$", Name: "Chilean Peso", Precision: 0},
	"COP": {CurrencyCode: "COP", Symbol: "$", Name: "Colombian Peso", Precision: 2},
	"CZK": {CurrencyCode: "CZK", Symbol: "Kč", Name: "Czech Koruna", Precision: 2},
	"DKK": {CurrencyCode: "DKK", Symbol: "kr", Name: "Danish Krone", Precision: 2},
	"EGP": {CurrencyCode: "EGP", Symbol: "E£", Name: "Egyptian Pound", Precision: 2},
	"HKD": {CurrencyCode: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar", Precision: 2},
	"HUF": {CurrencyCode: "HUF", Symbol: "Ft", Name: "Hungarian Forint", Precision: 2},
	"IDR": {CurrencyCode: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah", Precision: 2},
	"ILS": {CurrencyCode: "ILS", Symbol: "₪", Name: "Israeli New Shekel", Precision: 2},
	"ISK": {CurrencyCode: "ISK", Symbol: "kr", Name: "Icelandic Krona", Precision: 0},
	"KES": {CurrencyCode: "KES", Symbol: "KSh", Name: "Kenyan Shilling", Precision: 2},
	"KRW": {CurrencyCode: "KRW", Symbol: "₩", Name: "South Korean Won", Precision: 0},
	"KWD": {CurrencyCode: "KWD", Symbol: "د.ك", Name: "Kuwaiti Dinar", Precision: 3},
	"LKR": {CurrencyCode: "LKR", Symbol: "Rs", Name: "Sri Lankan Rupee", Precision: 2},
	"MAD": {CurrencyCode: "MAD", Symbol: "د.م.", Name: "Moroccan Dirham", Precision: 2},
	"MXN": {CurrencyCode: "MXN", Symbol: "Mex$", Name: "Mexican Peso", Precision: 2},
	"MYR": {CurrencyCode: "MYR", Symbol: "RM", Name: "Malaysian Ringgit", Precision: 2},
	"NGN": {CurrencyCode: "NGN", Symbol: "₦", Name: "Nigerian Naira", Precision: 2},
	"NOK": {CurrencyCode: "NOK", Symbol: "kr", Name: "Norwegian Krone", Precision: 2},
	"NZD": {CurrencyCode: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar", Precision: 2},
	"OMR": {CurrencyCode: "OMR", Symbol: "ر.ع.", Name: "Omani Rial", Precision: 3},
	"PEN": {CurrencyCode: "PEN", Symbol: "S/", Name: "Peruvian Sol", Precision: 2},
	"PHP": {CurrencyCode: "PHP", Symbol: "₱", Name: "Philippine Peso", Precision: 2},
	"PKR": {CurrencyCode: "PKR", Symbol: "Rs", Name: "Pakistani Rupee", Precision: 2},
	"PLN": {CurrencyCode: "PLN", Symbol: "zł", Name: "Polish Zloty", Precision: 2},
	"QAR": {CurrencyCode: "QAR", Symbol: "ر.ق", Name: "Qatari Riyal", Precision: 2},
	"RON": {CurrencyCode: "RON", Symbol: "lei", Name: "Romanian Leu", Precision: 2},
	"RSD": {CurrencyCode: "RSD", Symbol: "дин.", Name: "Serbian Dinar", Precision: 2},
	"RUB": {CurrencyCode: "RUB", Symbol: "₽", Name: "Russian Ruble", Precision: 2},
	"SAR": {CurrencyCode: "SAR", Symbol: "ر.س", Name: "Saudi Riyal", Precision: 2},
	"SEK": {CurrencyCode: "SEK", Symbol: "kr", Name: "Swedish Krona", Precision: 2},
	"THB": {CurrencyCode: "THB", Symbol: "฿", Name: "Thai Baht", Precision: 2},
	"TRY": {CurrencyCode: "TRY", Symbol: "₺", Name: "Turkish Lira", Precision: 2},
	"TWD": {CurrencyCode: "TWD", Symbol: "NT$", Name: "New Taiwan Dollar", Precision: 2},
	"UAH": {CurrencyCode: "UAH", Symbol: "₴", Name: "Ukrainian Hryvnia", Precision: 2},
	"UYU": {CurrencyCode: "UYU", Symbol: "$U", Name: "Uruguayan Peso", Precision: 2},
	"VND": {CurrencyCode: "VND", Symbol: "₫", Name: "Vietnamese Dong", Precision: 0},
	"ZAR": {CurrencyCode: "ZAR", Symbol: "R", Name: "South African Rand", Precision: 2},
}

// Resolve looks up a currency by its 3-letter code.
func Resolve(code string) (domain.Currency, error) {
	c, ok := registry[code]
	if !ok {
		return domain.Currency{}, fmt.Errorf("unknown currency %q: %w", code, apperrors.ErrNotFound)
	}
	return c, nil
}

// ResolveOrDefault resolves a code, falling back to a display-only currency
// that reuses the code as its symbol. Callers that merely format amounts use
// this instead of failing the render on an unknown code.
func ResolveOrDefault(code string) domain.Currency {
	if c, ok := registry[code]; ok {
		return c
	}
	fallback := code
	if fallback == "" {
		fallback = "$"
	}
	return domain.Currency{CurrencyCode: code, Symbol: fallback, Name: code, Precision: 2}
}

// SymbolOr returns the symbol for code, or the given fallback when the code
// is not registered.
func SymbolOr(code, fallback string) string {
	if c, ok := registry[code]; ok {
		return c.Symbol
	}
	return fallback
}

// List returns every registered currency, popular codes first, the rest
// alphabetically by code.
func List() []domain.Currency {
	out := make([]domain.Currency, 0, len(registry))
	seen := make(map[string]bool, len(popular))
	for _, code := range popular {
		if c, ok := registry[code]; ok {
			out = append(out, c)
			seen[code] = true
		}
	}

	rest := make([]domain.Currency, 0, len(registry)-len(seen))
	for code, c := range registry {
		if !seen[code] {
			rest = append(rest, c)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].CurrencyCode < rest[j].CurrencyCode })

	return append(out, rest...)
}
