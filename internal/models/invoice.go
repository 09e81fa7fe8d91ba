package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the invoices table row. Line items and the party blocks are
// stored as JSONB documents; totals are denormalized snapshot columns.
type Invoice struct {
	InvoiceID          string
	OwnerUserID        string
	InvoiceNumber      string
	IssueDate          time.Time
	DueDate            time.Time
	CurrencyCode       string
	LineItems          []byte // JSONB
	TaxRate            decimal.Decimal
	DiscountRate       decimal.Decimal
	Notes              string
	Business           []byte // JSONB
	Client             []byte // JSONB
	Banking            []byte // JSONB
	Subtotal           decimal.Decimal
	DiscountAmount     decimal.Decimal
	TaxAmount          decimal.Decimal
	Total              decimal.Decimal
	TemplateID         string
	Recurring          bool
	RecurrenceInterval string
	EmailSentAt        *time.Time
	AuditFields
}
