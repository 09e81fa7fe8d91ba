package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/invoicecraft/invoice_craft_app/internal/core/pdf"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/core/render"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
)

// exportService implements the ExportSvc interface. A per-invoice in-flight
// set keeps a second export of the same invoice from starting while the first
// is still producing bytes.
type exportService struct {
	BaseService
	invoiceSvc portssvc.InvoiceReaderSvc

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewExportService creates a new export service
func NewExportService(invoiceSvc portssvc.InvoiceReaderSvc) portssvc.ExportSvc {
	return &exportService{
		invoiceSvc: invoiceSvc,
		inflight:   make(map[string]struct{}),
	}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

func (s *exportService) ExportInvoice(ctx context.Context, invoiceID, requesterUserID string, req dto.ExportInvoiceRequest) (*dto.ExportArtifact, error) {
	if err := s.acquire(invoiceID); err != nil {
		s.LogInfo(ctx, "Export already in progress", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	defer s.release(invoiceID)

	invoice, err := s.invoiceSvc.GetInvoiceByID(ctx, invoiceID, requesterUserID)
	if err != nil {
		return nil, err
	}

	templateID := invoice.TemplateID
	if req.TemplateID != "" {
		templateID = domain.ParseTemplateID(req.TemplateID)
	}

	artifact, err := s.produce(ctx, invoice.Invoice, templateID, req.Mode)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Invoice exported",
		slog.String("invoice_id", invoiceID),
		slog.String("filename", artifact.Filename),
		slog.Int("pages", artifact.Pages))
	return artifact, nil
}

func (s *exportService) ExportDraft(ctx context.Context, req dto.ExportDraftRequest, requesterUserID string) (*dto.ExportArtifact, error) {
	draft, err := buildInvoice(req.Invoice, requesterUserID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Draft validation failed before export")
		return nil, err
	}

	artifact, err := s.produce(ctx, draft.Invoice, draft.TemplateID, req.Mode)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Draft exported",
		slog.String("filename", artifact.Filename),
		slog.Int("pages", artifact.Pages))
	return artifact, nil
}

// produce runs projection and the selected paginator path. Rendering errors
// are normalized so callers can treat every failure after validation as an
// export failure.
func (s *exportService) produce(ctx context.Context, invoice domain.Invoice, templateID domain.TemplateID, mode string) (*dto.ExportArtifact, error) {
	if mode == "" {
		mode = dto.ExportModeLayout
	}

	tree := render.Project(invoice, templateID)

	var (
		doc *pdf.Document
		err error
	)
	switch mode {
	case dto.ExportModePreview:
		doc, err = pdf.RasterPreview(tree)
	default:
		doc, err = pdf.Layout(tree)
	}
	if err != nil {
		s.LogError(ctx, err, "Document rendering failed", slog.String("mode", mode))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExport, err)
	}

	return &dto.ExportArtifact{
		Filename:    pdf.ArtifactName(invoice.InvoiceNumber, time.Now()),
		ContentType: "application/pdf",
		Pages:       doc.Pages,
		Mode:        mode,
		Data:        doc.Bytes,
	}, nil
}

func (s *exportService) acquire(invoiceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[invoiceID]; busy {
		return apperrors.ErrExportInProgress
	}
	s.inflight[invoiceID] = struct{}{}
	return nil
}

func (s *exportService) release(invoiceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, invoiceID)
}
