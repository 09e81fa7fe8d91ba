package repositories

import (
	"context"
	"time"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
)

// InvoiceReader defines read operations for saved invoices
type InvoiceReader interface {
	// FindInvoiceByID retrieves a saved invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.SavedInvoice, error)

	// ListInvoicesByOwner retrieves all invoices belonging to a user, newest first.
	ListInvoicesByOwner(ctx context.Context, ownerUserID string) ([]domain.SavedInvoice, error)
}

// InvoiceWriter defines write operations for saved invoices
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice snapshot.
	SaveInvoice(ctx context.Context, invoice domain.SavedInvoice) error

	// UpdateInvoice replaces a persisted invoice with a new snapshot.
	UpdateInvoice(ctx context.Context, invoice domain.SavedInvoice) error

	// MarkEmailSent records the moment an invoice was emailed.
	MarkEmailSent(ctx context.Context, invoiceID string, sentAt time.Time) error

	// DeleteInvoice removes a saved invoice.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}
