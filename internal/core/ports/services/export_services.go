package services

import (
	"context"

	"github.com/invoicecraft/invoice_craft_app/internal/dto"
)

// ExportSvc turns invoices into downloadable PDF artifacts
type ExportSvc interface {
	// ExportInvoice renders a saved invoice. At most one export per invoice
	// runs at a time; concurrent attempts fail with ErrExportInProgress.
	ExportInvoice(ctx context.Context, invoiceID, requesterUserID string, req dto.ExportInvoiceRequest) (*dto.ExportArtifact, error)

	// ExportDraft renders an unsaved invoice payload without persisting it.
	ExportDraft(ctx context.Context, req dto.ExportDraftRequest, requesterUserID string) (*dto.ExportArtifact, error)
}
