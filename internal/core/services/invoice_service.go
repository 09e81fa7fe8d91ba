package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	"github.com/invoicecraft/invoice_craft_app/internal/core/currencies"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	portsrepo "github.com/invoicecraft/invoice_craft_app/internal/core/ports/repositories"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
	"github.com/invoicecraft/invoice_craft_app/internal/utils/invoicecalc"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	profileRepo  portsrepo.ProfileReader
	blobs        portsrepo.BlobStore
	maxLogoBytes int64
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithProfileReader lets draft defaults pick up the user's saved preferences.
func WithProfileReader(repo portsrepo.ProfileReader) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.profileRepo = repo
	}
}

// WithLogoUploads enables ad-hoc logo uploads for invoice drafts. Drafts
// embed a logo by URL only, so the ceiling is tighter than the profile one.
func WithLogoUploads(blobs portsrepo.BlobStore, maxBytes int64) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.blobs = blobs
		s.maxLogoBytes = maxBytes
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{invoiceRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

const defaultDueDays = 30

func (s *invoiceService) NewDraftDefaults(ctx context.Context, requesterUserID string) dto.DraftDefaultsResponse {
	today := time.Now().Truncate(24 * time.Hour)
	defaults := dto.DraftDefaultsResponse{
		IssueDate:    today,
		DueDate:      today.AddDate(0, 0, defaultDueDays),
		CurrencyCode: "USD",
		TemplateID:   string(domain.DefaultTemplateID),
	}

	if s.profileRepo != nil {
		profile, err := s.profileRepo.FindProfileByOwner(ctx, requesterUserID)
		if err == nil && profile != nil {
			if profile.DefaultCurrency != "" {
				defaults.CurrencyCode = profile.DefaultCurrency
			}
			if profile.DefaultTemplate != "" {
				defaults.TemplateID = string(profile.DefaultTemplate)
			}
		}
	}

	return defaults
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.SaveInvoiceRequest, ownerUserID string) (*domain.SavedInvoice, error) {
	now := time.Now()

	invoice, err := buildInvoice(req, ownerUserID, now)
	if err != nil {
		s.LogError(ctx, err, "Invoice validation failed", slog.String("owner_user_id", ownerUserID))
		return nil, err
	}

	invoice.InvoiceID = uuid.NewString()
	invoice.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     ownerUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: ownerUserID,
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", invoice.InvoiceID))
	return invoice, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.SaveInvoiceRequest, requesterUserID string) (*domain.SavedInvoice, error) {
	existing, err := s.findOwned(ctx, invoiceID, requesterUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// Whole-object replacement: the request is the new truth, only identity,
	// creation audit and delivery bookkeeping survive.
	invoice, err := buildInvoice(req, requesterUserID, now)
	if err != nil {
		s.LogError(ctx, err, "Invoice validation failed", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	invoice.InvoiceID = existing.InvoiceID
	invoice.EmailSentAt = existing.EmailSentAt
	invoice.AuditFields = domain.AuditFields{
		CreatedAt:     existing.CreatedAt,
		CreatedBy:     existing.CreatedBy,
		LastUpdatedAt: now,
		LastUpdatedBy: requesterUserID,
	}

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID, requesterUserID string) error {
	if _, err := s.findOwned(ctx, invoiceID, requesterUserID); err != nil {
		return err
	}

	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID, requesterUserID string) (*domain.SavedInvoice, error) {
	return s.findOwned(ctx, invoiceID, requesterUserID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, requesterUserID string) ([]domain.SavedInvoice, error) {
	invoices, err := s.invoiceRepo.ListInvoicesByOwner(ctx, requesterUserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("owner_user_id", requesterUserID))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		return []domain.SavedInvoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) UploadLogo(ctx context.Context, ownerUserID, filename string, size int64, reader io.Reader) (*dto.LogoUploadResponse, error) {
	if s.blobs == nil {
		return nil, fmt.Errorf("logo uploads are not configured: %w", apperrors.ErrDependency)
	}

	data, mimeType, err := readLogoImage(reader, size, s.maxLogoBytes)
	if err != nil {
		return nil, err
	}

	url, err := s.blobs.Upload(ctx, ownerUserID, filename, mimeType, data)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload draft logo", slog.String("owner_user_id", ownerUserID))
		return nil, fmt.Errorf("failed to upload logo: %w", err)
	}

	s.LogInfo(ctx, "Draft logo uploaded", slog.String("owner_user_id", ownerUserID), slog.String("url", url))
	return &dto.LogoUploadResponse{LogoURL: url}, nil
}

// findOwned resolves an invoice and enforces ownership. Invoices of other
// users are reported as not found, not as forbidden.
func (s *invoiceService) findOwned(ctx context.Context, invoiceID, requesterUserID string) (*domain.SavedInvoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	if invoice.OwnerUserID != requesterUserID {
		return nil, apperrors.ErrNotFound
	}
	return invoice, nil
}

// buildInvoice validates a save request and assembles the derived snapshot.
// Totals and line amounts always come out of the recomputation, never from
// the request. The export path reuses it for unsaved drafts.
func buildInvoice(req dto.SaveInvoiceRequest, ownerUserID string, now time.Time) (*domain.SavedInvoice, error) {
	if _, err := currencies.Resolve(req.CurrencyCode); err != nil {
		return nil, apperrors.NewValidationError("unknown currency code", "currencyCode")
	}
	if err := invoicecalc.ValidatePercentRate(req.TaxRate); err != nil {
		return nil, apperrors.NewValidationError("tax rate must be between 0 and 100", "taxRate")
	}
	if err := invoicecalc.ValidatePercentRate(req.DiscountRate); err != nil {
		return nil, apperrors.NewValidationError("discount rate must be between 0 and 100", "discountRate")
	}

	items := make([]domain.LineItem, len(req.LineItems))
	for i, li := range req.LineItems {
		item := domain.LineItem{
			LineItemID:  uuid.NewString(),
			Description: li.Description,
			Quantity:    li.Quantity,
			Rate:        li.Rate,
		}
		if err := invoicecalc.ValidateLineItem(item); err != nil {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("line item %d: %v", i+1, err),
				fmt.Sprintf("lineItems[%d]", i))
		}
		items[i] = item
	}

	banking := domain.BankingInfo{
		BankName:      req.Banking.BankName,
		AccountNumber: req.Banking.AccountNumber,
		SwiftCode:     req.Banking.SwiftCode,
		IBAN:          req.Banking.IBAN,
	}
	if missing := banking.MissingTrioFields(); len(missing) > 0 {
		return nil, apperrors.NewValidationError(
			"bank name, account number and SWIFT code must be provided together", missing...)
	}

	recurrence, err := parseRecurrence(req.Recurring, req.RecurrenceInterval)
	if err != nil {
		return nil, err
	}

	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = now.Truncate(24 * time.Hour)
	}
	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = issueDate.AddDate(0, 0, defaultDueDays)
	}

	inv := domain.Invoice{
		InvoiceNumber: req.InvoiceNumber,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		CurrencyCode:  req.CurrencyCode,
		LineItems:     items,
		TaxRate:       req.TaxRate,
		DiscountRate:  req.DiscountRate,
		Notes:         req.Notes,
		Business: domain.BusinessInfo{
			Name:    req.Business.Name,
			Email:   req.Business.Email,
			Address: req.Business.Address,
			Phone:   req.Business.Phone,
			LogoURL: req.Business.LogoURL,
		},
		Client: domain.ClientInfo{
			Name:    req.Client.Name,
			Email:   req.Client.Email,
			Address: req.Client.Address,
			Phone:   req.Client.Phone,
		},
		Banking: banking,
	}
	inv = invoicecalc.Recompute(inv)

	return &domain.SavedInvoice{
		Invoice:            inv,
		OwnerUserID:        ownerUserID,
		TemplateID:         domain.ParseTemplateID(req.TemplateID),
		Recurring:          req.Recurring,
		RecurrenceInterval: recurrence,
	}, nil
}

func parseRecurrence(recurring bool, interval string) (domain.RecurrenceInterval, error) {
	if !recurring {
		return "", nil
	}
	switch domain.RecurrenceInterval(interval) {
	case domain.RecurWeekly, domain.RecurMonthly, domain.RecurQuarterly, domain.RecurYearly:
		return domain.RecurrenceInterval(interval), nil
	default:
		return "", apperrors.NewValidationError(
			"recurring invoices need an interval of WEEKLY, MONTHLY, QUARTERLY or YEARLY", "recurrenceInterval")
	}
}
