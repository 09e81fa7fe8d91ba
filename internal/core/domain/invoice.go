package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one billable row within an invoice. Amount is derived from
// Quantity and Rate and is never independently editable; insertion order is
// significant for display.
type LineItem struct {
	LineItemID  string          `json:"lineItemID"` // unique within the invoice
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"` // positive
	Rate        decimal.Decimal `json:"rate"`     // non-negative
	Amount      decimal.Decimal `json:"amount"`   // Quantity * Rate, recomputed on every edit
}

// InvoiceTotals is the cached projection derived from line items and rates.
// It is always recomputed through the totals engine, never hand-edited;
// persisted values are a point-in-time snapshot.
type InvoiceTotals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Total          decimal.Decimal `json:"total"`
}

// Invoice is the aggregate an editing session works on. DueDate is not
// constrained against IssueDate; it only defaults to IssueDate + 30 days.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"` // free text, typically prefixed
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	CurrencyCode  string          `json:"currencyCode"` // must resolve in the currency registry
	LineItems     []LineItem      `json:"lineItems"`    // ordered
	TaxRate       decimal.Decimal `json:"taxRate"`      // percent, 0-100
	DiscountRate  decimal.Decimal `json:"discountRate"` // percent, 0-100
	Notes         string          `json:"notes"`
	Business      BusinessInfo    `json:"business"`
	Client        ClientInfo      `json:"client"`
	Banking       BankingInfo     `json:"banking"`
	Totals        InvoiceTotals   `json:"totals"`
	AuditFields
}

// RecurrenceInterval enumerates how often a recurring invoice repeats.
type RecurrenceInterval string

const (
	RecurWeekly    RecurrenceInterval = "WEEKLY"
	RecurMonthly   RecurrenceInterval = "MONTHLY"
	RecurQuarterly RecurrenceInterval = "QUARTERLY"
	RecurYearly    RecurrenceInterval = "YEARLY"
)

// SavedInvoice is the persisted superset of Invoice: ownership, the chosen
// template, recurrence settings and delivery bookkeeping. Created only on
// explicit save, never from draft keystrokes.
type SavedInvoice struct {
	Invoice
	OwnerUserID        string             `json:"ownerUserID"`
	TemplateID         TemplateID         `json:"templateID"`
	Recurring          bool               `json:"recurring"`
	RecurrenceInterval RecurrenceInterval `json:"recurrenceInterval,omitempty"`
	EmailSentAt        *time.Time         `json:"emailSentAt,omitempty"`
}
