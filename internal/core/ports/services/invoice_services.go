package services

import (
	"context"
	"io"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for saved invoices
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves a saved invoice owned by the requesting user.
	GetInvoiceByID(ctx context.Context, invoiceID, requesterUserID string) (*domain.SavedInvoice, error)

	// ListInvoices retrieves all invoices of the requesting user, newest first.
	ListInvoices(ctx context.Context, requesterUserID string) ([]domain.SavedInvoice, error)

	// NewDraftDefaults returns the seed values for a fresh editing session.
	NewDraftDefaults(ctx context.Context, requesterUserID string) dto.DraftDefaultsResponse
}

// InvoiceWriterSvc defines write operations for saved invoices
type InvoiceWriterSvc interface {
	// CreateInvoice validates, recomputes totals and persists a new invoice snapshot.
	CreateInvoice(ctx context.Context, req dto.SaveInvoiceRequest, ownerUserID string) (*domain.SavedInvoice, error)

	// UpdateInvoice replaces a saved invoice wholesale, re-running the derivation.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.SaveInvoiceRequest, requesterUserID string) (*domain.SavedInvoice, error)

	// DeleteInvoice removes a saved invoice owned by the requesting user.
	DeleteInvoice(ctx context.Context, invoiceID, requesterUserID string) error

	// UploadLogo stores an ad-hoc logo image for use on invoice drafts,
	// returning its public URL.
	UploadLogo(ctx context.Context, ownerUserID, filename string, size int64, reader io.Reader) (*dto.LogoUploadResponse, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
