package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/invoicecraft/invoice_craft_app/internal/models"
)

// ToModelInvoice converts a domain SavedInvoice to an invoices table row,
// marshaling the document-valued columns.
func ToModelInvoice(d domain.SavedInvoice) (models.Invoice, error) {
	lineItems, err := json.Marshal(d.LineItems)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to marshal line items: %w", err)
	}
	business, err := json.Marshal(d.Business)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to marshal business info: %w", err)
	}
	client, err := json.Marshal(d.Client)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to marshal client info: %w", err)
	}
	banking, err := json.Marshal(d.Banking)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to marshal banking info: %w", err)
	}

	return models.Invoice{
		InvoiceID:          d.InvoiceID,
		OwnerUserID:        d.OwnerUserID,
		InvoiceNumber:      d.InvoiceNumber,
		IssueDate:          d.IssueDate,
		DueDate:            d.DueDate,
		CurrencyCode:       d.CurrencyCode,
		LineItems:          lineItems,
		TaxRate:            d.TaxRate,
		DiscountRate:       d.DiscountRate,
		Notes:              d.Notes,
		Business:           business,
		Client:             client,
		Banking:            banking,
		Subtotal:           d.Totals.Subtotal,
		DiscountAmount:     d.Totals.DiscountAmount,
		TaxAmount:          d.Totals.TaxAmount,
		Total:              d.Totals.Total,
		TemplateID:         string(d.TemplateID),
		Recurring:          d.Recurring,
		RecurrenceInterval: string(d.RecurrenceInterval),
		EmailSentAt:        d.EmailSentAt,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainInvoice converts an invoices table row back into the domain shape.
func ToDomainInvoice(m models.Invoice) (domain.SavedInvoice, error) {
	var lineItems []domain.LineItem
	if err := json.Unmarshal(m.LineItems, &lineItems); err != nil {
		return domain.SavedInvoice{}, fmt.Errorf("failed to unmarshal line items: %w", err)
	}
	var business domain.BusinessInfo
	if err := json.Unmarshal(m.Business, &business); err != nil {
		return domain.SavedInvoice{}, fmt.Errorf("failed to unmarshal business info: %w", err)
	}
	var client domain.ClientInfo
	if err := json.Unmarshal(m.Client, &client); err != nil {
		return domain.SavedInvoice{}, fmt.Errorf("failed to unmarshal client info: %w", err)
	}
	var banking domain.BankingInfo
	if err := json.Unmarshal(m.Banking, &banking); err != nil {
		return domain.SavedInvoice{}, fmt.Errorf("failed to unmarshal banking info: %w", err)
	}

	return domain.SavedInvoice{
		Invoice: domain.Invoice{
			InvoiceID:     m.InvoiceID,
			InvoiceNumber: m.InvoiceNumber,
			IssueDate:     m.IssueDate,
			DueDate:       m.DueDate,
			CurrencyCode:  m.CurrencyCode,
			LineItems:     lineItems,
			TaxRate:       m.TaxRate,
			DiscountRate:  m.DiscountRate,
			Notes:         m.Notes,
			Business:      business,
			Client:        client,
			Banking:       banking,
			Totals: domain.InvoiceTotals{
				Subtotal:       m.Subtotal,
				DiscountAmount: m.DiscountAmount,
				TaxAmount:      m.TaxAmount,
				Total:          m.Total,
			},
			AuditFields: ToDomainAuditFields(m.AuditFields),
		},
		OwnerUserID:        m.OwnerUserID,
		TemplateID:         domain.ParseTemplateID(m.TemplateID),
		Recurring:          m.Recurring,
		RecurrenceInterval: domain.RecurrenceInterval(m.RecurrenceInterval),
		EmailSentAt:        m.EmailSentAt,
	}, nil
}

// ToDomainInvoiceSlice converts a slice of invoice rows to domain shapes.
func ToDomainInvoiceSlice(ms []models.Invoice) ([]domain.SavedInvoice, error) {
	ds := make([]domain.SavedInvoice, len(ms))
	for i, m := range ms {
		d, err := ToDomainInvoice(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
