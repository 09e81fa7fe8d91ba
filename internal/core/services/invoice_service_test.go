package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/core/services"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.SavedInvoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedInvoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByOwner(ctx context.Context, ownerUserID string) ([]domain.SavedInvoice, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedInvoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.SavedInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.SavedInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) MarkEmailSent(ctx context.Context, invoiceID string, sentAt time.Time) error {
	args := m.Called(ctx, invoiceID, sentAt)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// --- Mock ProfileReader ---
type MockProfileReader struct {
	mock.Mock
}

func (m *MockProfileReader) FindProfileByOwner(ctx context.Context, ownerUserID string) (*domain.Profile, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockInvoiceRepository
	mockProfile *MockProfileReader
	service     portssvc.InvoiceSvcFacade
	ownerID     string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.mockProfile = new(MockProfileReader)
	suite.service = services.NewInvoiceService(suite.mockRepo, services.WithProfileReader(suite.mockProfile))
	suite.ownerID = uuid.NewString()
}

func validSaveRequest() dto.SaveInvoiceRequest {
	return dto.SaveInvoiceRequest{
		InvoiceNumber: "INV-0042",
		IssueDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		CurrencyCode:  "USD",
		LineItems: []dto.LineItemRequest{
			{Description: "Design work", Quantity: 2, Rate: decimal.NewFromInt(500)},
			{Description: "Hosting", Quantity: 5, Rate: decimal.NewFromInt(100)},
		},
		TaxRate:  decimal.NewFromInt(20),
		Business: dto.BusinessInfoRequest{Name: "Acme Studio", Email: "billing@acme.example"},
		Client:   dto.ClientInfoRequest{Name: "Globex Corp", Email: "ap@globex.example"},
		TemplateID: "classic",
	}
}

// --- Create ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	req := validSaveRequest()

	suite.mockRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.SavedInvoice) bool {
		return inv.OwnerUserID == suite.ownerID &&
			inv.InvoiceID != "" &&
			inv.TemplateID == domain.TemplateClassic &&
			inv.Totals.Subtotal.Equal(decimal.NewFromInt(1500)) &&
			inv.Totals.TaxAmount.Equal(decimal.NewFromInt(300)) &&
			inv.Totals.Total.Equal(decimal.NewFromInt(1800))
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.NotEmpty(invoice.InvoiceID)
	suite.Equal(suite.ownerID, invoice.CreatedBy)
	suite.Equal(suite.ownerID, invoice.LastUpdatedBy)
	suite.True(invoice.LineItems[0].Amount.Equal(decimal.NewFromInt(1000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownCurrency() {
	ctx := context.Background()
	req := validSaveRequest()
	req.CurrencyCode = "ZZZ"

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Equal([]string{"currencyCode"}, vErr.Fields)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_BankingTrioIncomplete() {
	ctx := context.Background()
	req := validSaveRequest()
	req.Banking = dto.BankingInfoRequest{BankName: "First National"}

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(invoice)

	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.ElementsMatch([]string{"accountNumber", "swiftCode"}, vErr.Fields)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_BankingAllEmptyIsValid() {
	ctx := context.Background()
	req := validSaveRequest()
	req.Banking = dto.BankingInfoRequest{}

	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.SavedInvoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.NotNil(invoice)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_IBANAloneIsValid() {
	ctx := context.Background()
	req := validSaveRequest()
	req.Banking = dto.BankingInfoRequest{IBAN: "US00 1234"}

	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.SavedInvoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal("US00 1234", invoice.Banking.IBAN)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_InvalidLineItem() {
	ctx := context.Background()
	req := validSaveRequest()
	req.LineItems[1].Quantity = 0

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(invoice)

	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Equal([]string{"lineItems[1]"}, vErr.Fields)
	suite.Contains(vErr.Message, "line item 2")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_TaxRateOutOfRange() {
	ctx := context.Background()
	req := validSaveRequest()
	req.TaxRate = decimal.NewFromInt(101)

	_, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Equal([]string{"taxRate"}, vErr.Fields)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RecurringNeedsInterval() {
	ctx := context.Background()
	req := validSaveRequest()
	req.Recurring = true
	req.RecurrenceInterval = ""

	_, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Equal([]string{"recurrenceInterval"}, vErr.Fields)

	req.RecurrenceInterval = "DAILY"
	_, err = suite.service.CreateInvoice(ctx, req, suite.ownerID)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RecurringMonthly() {
	ctx := context.Background()
	req := validSaveRequest()
	req.Recurring = true
	req.RecurrenceInterval = "MONTHLY"

	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.SavedInvoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.True(invoice.Recurring)
	suite.Equal(domain.RecurMonthly, invoice.RecurrenceInterval)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ZeroDatesDefaulted() {
	ctx := context.Background()
	req := validSaveRequest()
	req.IssueDate = time.Time{}
	req.DueDate = time.Time{}

	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.SavedInvoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.False(invoice.IssueDate.IsZero())
	suite.Equal(invoice.IssueDate.AddDate(0, 0, 30), invoice.DueDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownTemplateFallsBack() {
	ctx := context.Background()
	req := validSaveRequest()
	req.TemplateID = "vaporwave"

	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.SavedInvoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultTemplateID, invoice.TemplateID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.SavedInvoice")).Return(expectedErr).Once()

	invoice, err := suite.service.CreateInvoice(ctx, validSaveRequest(), suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Update ---

func (suite *InvoiceServiceTestSuite) existingInvoice() *domain.SavedInvoice {
	sent := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return &domain.SavedInvoice{
		Invoice: domain.Invoice{
			InvoiceID:     "inv-1",
			InvoiceNumber: "INV-0001",
			CurrencyCode:  "USD",
			AuditFields: domain.AuditFields{
				CreatedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				CreatedBy:     suite.ownerID,
				LastUpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				LastUpdatedBy: suite.ownerID,
			},
		},
		OwnerUserID: suite.ownerID,
		TemplateID:  domain.TemplateModern,
		EmailSentAt: &sent,
	}
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_PreservesIdentityAndDelivery() {
	ctx := context.Background()
	existing := suite.existingInvoice()
	req := validSaveRequest()

	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.SavedInvoice) bool {
		return inv.InvoiceID == "inv-1" &&
			inv.CreatedAt.Equal(existing.CreatedAt) &&
			inv.CreatedBy == existing.CreatedBy &&
			inv.EmailSentAt != nil && inv.EmailSentAt.Equal(*existing.EmailSentAt) &&
			inv.InvoiceNumber == "INV-0042"
	})).Return(nil).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, "inv-1", req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal("inv-1", invoice.InvoiceID)
	suite.Equal(existing.CreatedAt, invoice.CreatedAt)
	suite.NotEqual(existing.LastUpdatedAt, invoice.LastUpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_OtherOwnerReportsNotFound() {
	ctx := context.Background()
	existing := suite.existingInvoice()
	existing.OwnerUserID = uuid.NewString()

	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-1").Return(existing, nil).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, "inv-1", validSaveRequest(), suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

// --- Delete / Get / List ---

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.existingInvoice(), nil).Once()
	suite.mockRepo.On("DeleteInvoice", ctx, "inv-1").Return(nil).Once()

	err := suite.service.DeleteInvoice(ctx, "inv-1", suite.ownerID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_NotOwned() {
	ctx := context.Background()
	existing := suite.existingInvoice()
	existing.OwnerUserID = uuid.NewString()

	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-1").Return(existing, nil).Once()

	err := suite.service.DeleteInvoice(ctx, "inv-1", suite.ownerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindInvoiceByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.GetInvoiceByID(ctx, "missing", suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListInvoicesByOwner", ctx, suite.ownerID).Return(nil, nil).Once()

	invoices, err := suite.service.ListInvoices(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.NotNil(invoices)
	suite.Empty(invoices)
}

// --- Draft defaults ---

func (suite *InvoiceServiceTestSuite) TestNewDraftDefaults_NoProfile() {
	ctx := context.Background()

	suite.mockProfile.On("FindProfileByOwner", ctx, suite.ownerID).Return(nil, apperrors.ErrNotFound).Once()

	defaults := suite.service.NewDraftDefaults(ctx, suite.ownerID)

	suite.Equal("USD", defaults.CurrencyCode)
	suite.Equal("modern", defaults.TemplateID)
	suite.Equal(defaults.IssueDate.AddDate(0, 0, 30), defaults.DueDate)
}

func (suite *InvoiceServiceTestSuite) TestNewDraftDefaults_ProfilePreferences() {
	ctx := context.Background()
	profile := &domain.Profile{
		OwnerUserID:     suite.ownerID,
		DefaultCurrency: "EUR",
		DefaultTemplate: domain.TemplateClassic,
	}

	suite.mockProfile.On("FindProfileByOwner", ctx, suite.ownerID).Return(profile, nil).Once()

	defaults := suite.service.NewDraftDefaults(ctx, suite.ownerID)

	suite.Equal("EUR", defaults.CurrencyCode)
	suite.Equal("classic", defaults.TemplateID)
}

func (suite *InvoiceServiceTestSuite) TestUploadLogo_Success() {
	ctx := context.Background()
	mockBlobs := new(MockBlobStore)
	svc := services.NewInvoiceService(suite.mockRepo, services.WithLogoUploads(mockBlobs, testMaxLogoBytes))

	img := pngBytes(16, 16)
	mockBlobs.On("Upload", ctx, suite.ownerID, "logo.png", "image/png", img).
		Return("https://cdn.invoicecraft.test/logos/abc.png", nil).Once()

	resp, err := svc.UploadLogo(ctx, suite.ownerID, "logo.png", int64(len(img)), bytes.NewReader(img))

	suite.Require().NoError(err)
	suite.Equal("https://cdn.invoicecraft.test/logos/abc.png", resp.LogoURL)
	mockBlobs.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUploadLogo_TooLarge() {
	ctx := context.Background()
	mockBlobs := new(MockBlobStore)
	svc := services.NewInvoiceService(suite.mockRepo, services.WithLogoUploads(mockBlobs, testMaxLogoBytes))

	resp, err := svc.UploadLogo(ctx, suite.ownerID, "huge.png", testMaxLogoBytes+1, bytes.NewReader(nil))

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resp)
	mockBlobs.AssertNotCalled(suite.T(), "Upload")
}

func (suite *InvoiceServiceTestSuite) TestUploadLogo_NotConfigured() {
	ctx := context.Background()

	resp, err := suite.service.UploadLogo(ctx, suite.ownerID, "logo.png", 10, bytes.NewReader(pngBytes(4, 4)))

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, apperrors.ErrDependency)
	suite.Nil(resp)
}

// --- Run Suite ---
func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
