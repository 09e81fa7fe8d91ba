package dto

import (
	"time"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one editable invoice row. Amount is intentionally
// absent: it is derived, never accepted from the client.
type LineItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	Rate        decimal.Decimal `json:"rate"`
}

// BusinessInfoRequest carries issuer identity on a save request.
type BusinessInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	LogoURL string `json:"logoURL"`
}

// ClientInfoRequest carries recipient identity on a save request.
type ClientInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// BankingInfoRequest carries optional payment coordinates. The trio rule is
// cross-field and therefore enforced in the service, not by binding tags.
type BankingInfoRequest struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	SwiftCode     string `json:"swiftCode"`
	IBAN          string `json:"iban"`
}

// SaveInvoiceRequest is the whole-object payload for creating or replacing an
// invoice. Derived totals are recomputed server-side on every save.
type SaveInvoiceRequest struct {
	InvoiceNumber      string              `json:"invoiceNumber"`
	IssueDate          time.Time           `json:"issueDate"`
	DueDate            time.Time           `json:"dueDate"`
	CurrencyCode       string              `json:"currencyCode" binding:"required,uppercase,len=3"`
	LineItems          []LineItemRequest   `json:"lineItems" binding:"dive"`
	TaxRate            decimal.Decimal     `json:"taxRate"`
	DiscountRate       decimal.Decimal     `json:"discountRate"`
	Notes              string              `json:"notes"`
	Business           BusinessInfoRequest `json:"business" binding:"required"`
	Client             ClientInfoRequest   `json:"client" binding:"required"`
	Banking            BankingInfoRequest  `json:"banking"`
	TemplateID         string              `json:"templateID"`
	Recurring          bool                `json:"recurring"`
	RecurrenceInterval string              `json:"recurrenceInterval"`
}

// LineItemResponse mirrors a stored line item including its derived amount.
type LineItemResponse struct {
	LineItemID  string          `json:"lineItemID"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse is the API view of a saved invoice.
type InvoiceResponse struct {
	InvoiceID          string             `json:"invoiceID"`
	InvoiceNumber      string             `json:"invoiceNumber"`
	IssueDate          time.Time          `json:"issueDate"`
	DueDate            time.Time          `json:"dueDate"`
	CurrencyCode       string             `json:"currencyCode"`
	LineItems          []LineItemResponse `json:"lineItems"`
	TaxRate            decimal.Decimal    `json:"taxRate"`
	DiscountRate       decimal.Decimal    `json:"discountRate"`
	Notes              string             `json:"notes,omitempty"`
	Business           domain.BusinessInfo `json:"business"`
	Client             domain.ClientInfo   `json:"client"`
	Banking            domain.BankingInfo  `json:"banking"`
	Subtotal           decimal.Decimal    `json:"subtotal"`
	DiscountAmount     decimal.Decimal    `json:"discountAmount"`
	TaxAmount          decimal.Decimal    `json:"taxAmount"`
	Total              decimal.Decimal    `json:"total"`
	TemplateID         string             `json:"templateID"`
	Recurring          bool               `json:"recurring"`
	RecurrenceInterval string             `json:"recurrenceInterval,omitempty"`
	EmailSentAt        *time.Time         `json:"emailSentAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	LastUpdatedAt      time.Time          `json:"lastUpdatedAt"`
}

// ToInvoiceResponse converts a domain.SavedInvoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.SavedInvoice) InvoiceResponse {
	items := make([]LineItemResponse, len(inv.LineItems))
	for i, item := range inv.LineItems {
		items[i] = LineItemResponse{
			LineItemID:  item.LineItemID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
		}
	}
	return InvoiceResponse{
		InvoiceID:          inv.InvoiceID,
		InvoiceNumber:      inv.InvoiceNumber,
		IssueDate:          inv.IssueDate,
		DueDate:            inv.DueDate,
		CurrencyCode:       inv.CurrencyCode,
		LineItems:          items,
		TaxRate:            inv.TaxRate,
		DiscountRate:       inv.DiscountRate,
		Notes:              inv.Notes,
		Business:           inv.Business,
		Client:             inv.Client,
		Banking:            inv.Banking,
		Subtotal:           inv.Totals.Subtotal,
		DiscountAmount:     inv.Totals.DiscountAmount,
		TaxAmount:          inv.Totals.TaxAmount,
		Total:              inv.Totals.Total,
		TemplateID:         string(inv.TemplateID),
		Recurring:          inv.Recurring,
		RecurrenceInterval: string(inv.RecurrenceInterval),
		EmailSentAt:        inv.EmailSentAt,
		CreatedAt:          inv.CreatedAt,
		LastUpdatedAt:      inv.LastUpdatedAt,
	}
}

// ToListInvoiceResponse converts a slice of saved invoices to DTOs.
func ToListInvoiceResponse(invoices []domain.SavedInvoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}

// DraftDefaultsResponse seeds a fresh editing session: today's issue date, a
// +30-day due date and an empty item list.
type DraftDefaultsResponse struct {
	IssueDate    time.Time `json:"issueDate"`
	DueDate      time.Time `json:"dueDate"`
	CurrencyCode string    `json:"currencyCode"`
	TemplateID   string    `json:"templateID"`
}
