package mapping_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/invoicecraft/invoice_craft_app/internal/models"
	"github.com/invoicecraft/invoice_craft_app/internal/utils/mapping"
)

func TestInvoiceMapping_RoundTrip(t *testing.T) {
	sent := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	original := domain.SavedInvoice{
		Invoice: domain.Invoice{
			InvoiceID:     "inv-1",
			InvoiceNumber: "INV-0042",
			IssueDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
			CurrencyCode:  "EUR",
			LineItems: []domain.LineItem{
				{LineItemID: "li-1", Description: "Design work", Quantity: 2, Rate: decimal.NewFromInt(500), Amount: decimal.NewFromInt(1000)},
				{LineItemID: "li-2", Description: "Hosting", Quantity: 5, Rate: decimal.NewFromInt(100), Amount: decimal.NewFromInt(500)},
			},
			TaxRate:      decimal.NewFromInt(20),
			DiscountRate: decimal.NewFromInt(5),
			Notes:        "Payment due within 30 days.",
			Business:     domain.BusinessInfo{Name: "Acme Studio", Email: "billing@acme.example", Address: "1 Main St\nSpringfield"},
			Client:       domain.ClientInfo{Name: "Globex Corp", Email: "ap@globex.example"},
			Banking: domain.BankingInfo{
				BankName:      "First National",
				AccountNumber: "12345678",
				SwiftCode:     "FNBKUS33",
				IBAN:          "US00 1234",
			},
			Totals: domain.InvoiceTotals{
				Subtotal:       decimal.NewFromInt(1500),
				DiscountAmount: decimal.NewFromInt(75),
				TaxAmount:      decimal.NewFromInt(285),
				Total:          decimal.NewFromInt(1710),
			},
		},
		OwnerUserID:        "user-1",
		TemplateID:         domain.TemplateCreative,
		Recurring:          true,
		RecurrenceInterval: domain.RecurQuarterly,
		EmailSentAt:        &sent,
	}

	row, err := mapping.ToModelInvoice(original)
	require.NoError(t, err)
	assert.NotEmpty(t, row.LineItems)
	assert.Equal(t, "creative", row.TemplateID)

	back, err := mapping.ToDomainInvoice(row)
	require.NoError(t, err)

	assert.Equal(t, original.InvoiceID, back.InvoiceID)
	assert.Equal(t, original.OwnerUserID, back.OwnerUserID)
	assert.Equal(t, original.TemplateID, back.TemplateID)
	assert.Equal(t, original.RecurrenceInterval, back.RecurrenceInterval)
	require.NotNil(t, back.EmailSentAt)
	assert.True(t, back.EmailSentAt.Equal(sent))
	require.Len(t, back.LineItems, 2)
	assert.Equal(t, original.LineItems[0].LineItemID, back.LineItems[0].LineItemID)
	assert.True(t, back.LineItems[0].Amount.Equal(original.LineItems[0].Amount))
	assert.Equal(t, original.Banking, back.Banking)
	assert.True(t, back.Totals.Total.Equal(original.Totals.Total))
}

func TestToDomainInvoice_CorruptDocumentColumn(t *testing.T) {
	row := models.Invoice{
		InvoiceID: "inv-1",
		LineItems: []byte("{not json"),
		Business:  []byte("{}"),
		Client:    []byte("{}"),
		Banking:   []byte("{}"),
	}

	_, err := mapping.ToDomainInvoice(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line items")
}

func TestToDomainInvoice_UnknownTemplateFallsBack(t *testing.T) {
	row := models.Invoice{
		InvoiceID:  "inv-1",
		TemplateID: "vaporwave",
		LineItems:  []byte("[]"),
		Business:   []byte("{}"),
		Client:     []byte("{}"),
		Banking:    []byte("{}"),
	}

	back, err := mapping.ToDomainInvoice(row)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTemplateID, back.TemplateID)
}
