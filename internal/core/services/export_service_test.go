package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/core/services"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
	"github.com/invoicecraft/invoice_craft_app/internal/utils/invoicecalc"
)

// --- Mock InvoiceReaderSvc ---
type MockInvoiceReaderSvc struct {
	mock.Mock
}

func (m *MockInvoiceReaderSvc) GetInvoiceByID(ctx context.Context, invoiceID, requesterUserID string) (*domain.SavedInvoice, error) {
	args := m.Called(ctx, invoiceID, requesterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedInvoice), args.Error(1)
}

func (m *MockInvoiceReaderSvc) ListInvoices(ctx context.Context, requesterUserID string) ([]domain.SavedInvoice, error) {
	args := m.Called(ctx, requesterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedInvoice), args.Error(1)
}

func (m *MockInvoiceReaderSvc) NewDraftDefaults(ctx context.Context, requesterUserID string) dto.DraftDefaultsResponse {
	args := m.Called(ctx, requesterUserID)
	return args.Get(0).(dto.DraftDefaultsResponse)
}

// --- Test Suite ---
type ExportServiceTestSuite struct {
	suite.Suite
	mockInvoices *MockInvoiceReaderSvc
	service      portssvc.ExportSvc
	userID       string
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockInvoices = new(MockInvoiceReaderSvc)
	suite.service = services.NewExportService(suite.mockInvoices)
	suite.userID = uuid.NewString()
}

func (suite *ExportServiceTestSuite) savedInvoice() *domain.SavedInvoice {
	inv := domain.Invoice{
		InvoiceID:     "inv-1",
		InvoiceNumber: "INV-0042",
		IssueDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		CurrencyCode:  "USD",
		LineItems: []domain.LineItem{
			{LineItemID: "li-1", Description: "Design work", Quantity: 2, Rate: decimal.NewFromInt(500)},
		},
		TaxRate:  decimal.NewFromInt(20),
		Business: domain.BusinessInfo{Name: "Acme Studio", Email: "billing@acme.example"},
		Client:   domain.ClientInfo{Name: "Globex Corp"},
	}
	return &domain.SavedInvoice{
		Invoice:     invoicecalc.Recompute(inv),
		OwnerUserID: suite.userID,
		TemplateID:  domain.TemplateModern,
	}
}

func (suite *ExportServiceTestSuite) TestExportInvoice_Success() {
	ctx := context.Background()

	suite.mockInvoices.On("GetInvoiceByID", ctx, "inv-1", suite.userID).Return(suite.savedInvoice(), nil).Once()

	artifact, err := suite.service.ExportInvoice(ctx, "inv-1", suite.userID, dto.ExportInvoiceRequest{})

	suite.Require().NoError(err)
	suite.Require().NotNil(artifact)
	suite.Equal("application/pdf", artifact.ContentType)
	suite.Equal(dto.ExportModeLayout, artifact.Mode)
	suite.GreaterOrEqual(artifact.Pages, 1)
	suite.True(strings.HasPrefix(artifact.Filename, "invoice-inv-0042-"))
	suite.True(strings.HasSuffix(artifact.Filename, ".pdf"))
	suite.NotEmpty(artifact.Data)
	suite.mockInvoices.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestExportInvoice_PreviewMode() {
	ctx := context.Background()

	suite.mockInvoices.On("GetInvoiceByID", ctx, "inv-1", suite.userID).Return(suite.savedInvoice(), nil).Once()

	artifact, err := suite.service.ExportInvoice(ctx, "inv-1", suite.userID, dto.ExportInvoiceRequest{Mode: dto.ExportModePreview})

	suite.Require().NoError(err)
	suite.Equal(dto.ExportModePreview, artifact.Mode)
	suite.Equal(1, artifact.Pages)
	suite.mockInvoices.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestExportInvoice_NotFound() {
	ctx := context.Background()

	suite.mockInvoices.On("GetInvoiceByID", ctx, "missing", suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	artifact, err := suite.service.ExportInvoice(ctx, "missing", suite.userID, dto.ExportInvoiceRequest{})

	suite.Require().Error(err)
	suite.Nil(artifact)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExportServiceTestSuite) TestExportInvoice_SecondConcurrentAttemptRejected() {
	ctx := context.Background()

	entered := make(chan struct{})
	unblock := make(chan struct{})
	suite.mockInvoices.On("GetInvoiceByID", ctx, "inv-1", suite.userID).
		Run(func(args mock.Arguments) {
			close(entered)
			<-unblock
		}).
		Return(suite.savedInvoice(), nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := suite.service.ExportInvoice(ctx, "inv-1", suite.userID, dto.ExportInvoiceRequest{})
		done <- err
	}()

	<-entered
	artifact, err := suite.service.ExportInvoice(ctx, "inv-1", suite.userID, dto.ExportInvoiceRequest{})
	suite.Require().Error(err)
	suite.Nil(artifact)
	suite.ErrorIs(err, apperrors.ErrExportInProgress)

	close(unblock)
	suite.NoError(<-done)
}

func (suite *ExportServiceTestSuite) TestExportInvoice_GuardReleasedAfterCompletion() {
	ctx := context.Background()

	suite.mockInvoices.On("GetInvoiceByID", ctx, "inv-1", suite.userID).Return(suite.savedInvoice(), nil).Twice()

	_, err := suite.service.ExportInvoice(ctx, "inv-1", suite.userID, dto.ExportInvoiceRequest{})
	suite.Require().NoError(err)

	_, err = suite.service.ExportInvoice(ctx, "inv-1", suite.userID, dto.ExportInvoiceRequest{})
	suite.Require().NoError(err)
	suite.mockInvoices.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestExportInvoice_GuardReleasedAfterFailure() {
	ctx := context.Background()

	suite.mockInvoices.On("GetInvoiceByID", ctx, "inv-1", suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockInvoices.On("GetInvoiceByID", ctx, "inv-1", suite.userID).Return(suite.savedInvoice(), nil).Once()

	_, err := suite.service.ExportInvoice(ctx, "inv-1", suite.userID, dto.ExportInvoiceRequest{})
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.ExportInvoice(ctx, "inv-1", suite.userID, dto.ExportInvoiceRequest{})
	suite.Require().NoError(err)
	suite.mockInvoices.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestExportDraft_Success() {
	ctx := context.Background()
	req := dto.ExportDraftRequest{Invoice: validSaveRequest()}

	artifact, err := suite.service.ExportDraft(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("application/pdf", artifact.ContentType)
	suite.True(strings.HasPrefix(artifact.Filename, "invoice-inv-0042-"))
	suite.NotEmpty(artifact.Data)
	suite.mockInvoices.AssertNotCalled(suite.T(), "GetInvoiceByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExportServiceTestSuite) TestExportDraft_ValidationFailure() {
	ctx := context.Background()
	req := dto.ExportDraftRequest{Invoice: validSaveRequest()}
	req.Invoice.CurrencyCode = "ZZZ"

	artifact, err := suite.service.ExportDraft(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(artifact)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExportServiceTestSuite) TestExportDraft_EmptyNumberBecomesDraftSlug() {
	ctx := context.Background()
	req := dto.ExportDraftRequest{Invoice: validSaveRequest()}
	req.Invoice.InvoiceNumber = ""

	artifact, err := suite.service.ExportDraft(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(artifact.Filename, "invoice-draft-"))
}

// --- Run Suite ---
func TestExportService(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
