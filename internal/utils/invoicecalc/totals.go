// Package invoicecalc is the pure derivation of invoice totals. It is on the
// critical path of every edit keystroke: O(n) in line items, no side effects,
// and full decimal precision is kept until the formatting boundary.
package invoicecalc

import (
	"fmt"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineAmount derives the amount of a single line: quantity * rate.
func LineAmount(quantity int64, rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(quantity))
}

// RecomputeLineItems returns a copy of items with every Amount re-derived
// from Quantity and Rate. Amount is never trusted as independent input.
func RecomputeLineItems(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, item := range items {
		item.Amount = LineAmount(item.Quantity, item.Rate)
		out[i] = item
	}
	return out
}

// ComputeTotals derives the totals projection:
//
//	subtotal       = Σ amount
//	discountAmount = subtotal * discountRate/100
//	taxAmount      = (subtotal - discountAmount) * taxRate/100
//	total          = subtotal - discountAmount + taxAmount
//
// Only the sum matters, so the result is independent of line-item order, and
// repeated calls with unchanged input yield identical values. Validation of
// rates and quantities is a precondition, not this function's job.
func ComputeTotals(items []domain.LineItem, discountRate, taxRate decimal.Decimal) domain.InvoiceTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
	}

	discountAmount := subtotal.Mul(discountRate).Div(hundred)
	taxAmount := subtotal.Sub(discountAmount).Mul(taxRate).Div(hundred)
	total := subtotal.Sub(discountAmount).Add(taxAmount)

	return domain.InvoiceTotals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		Total:          total,
	}
}

// Recompute re-derives line amounts and the totals projection of inv in one
// pass. It returns a new invoice value; the input is left untouched so a
// caller's draft survives any downstream failure.
func Recompute(inv domain.Invoice) domain.Invoice {
	inv.LineItems = RecomputeLineItems(inv.LineItems)
	inv.Totals = ComputeTotals(inv.LineItems, inv.DiscountRate, inv.TaxRate)
	return inv
}

// ValidateLineItem rejects quantities and rates the engine must never see.
func ValidateLineItem(item domain.LineItem) error {
	if item.Quantity <= 0 {
		return fmt.Errorf("line item quantity must be positive, got %d", item.Quantity)
	}
	if item.Rate.IsNegative() {
		return fmt.Errorf("line item rate must not be negative, got %s", item.Rate)
	}
	return nil
}

// ValidatePercentRate checks a discount or tax rate is within 0-100.
func ValidatePercentRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return fmt.Errorf("rate must be between 0 and 100, got %s", rate)
	}
	return nil
}
