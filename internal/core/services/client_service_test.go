package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/core/services"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClientsByOwner(ctx context.Context, ownerUserID string) ([]domain.Client, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Test Suite ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
	ownerID  string
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
}

func (suite *ClientServiceTestSuite) storedClient() *domain.Client {
	return &domain.Client{
		ClientID:    "client-1",
		OwnerUserID: suite.ownerID,
		ClientInfo: domain.ClientInfo{
			Name:    "Globex Corp",
			Email:   "ap@globex.example",
			Address: "742 Evergreen Terrace",
		},
	}
}

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	req := dto.CreateClientRequest{Name: "Globex Corp", Email: "ap@globex.example"}

	suite.mockRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.OwnerUserID == suite.ownerID && c.ClientID != "" &&
			c.Name == req.Name && c.CreatedBy == suite.ownerID
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(req.Name, client.Name)
	suite.NotEmpty(client.ClientID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_PartialFields() {
	ctx := context.Background()
	newName := "Globex International"

	suite.mockRepo.On("FindClientByID", ctx, "client-1").Return(suite.storedClient(), nil).Once()
	suite.mockRepo.On("UpdateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == newName && c.Email == "ap@globex.example"
	})).Return(nil).Once()

	client, err := suite.service.UpdateClient(ctx, "client-1", dto.UpdateClientRequest{Name: &newName}, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(newName, client.Name)
	suite.Equal("ap@globex.example", client.Email, "omitted fields stay untouched")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_OtherOwnerReportsNotFound() {
	ctx := context.Background()
	other := suite.storedClient()
	other.OwnerUserID = uuid.NewString()

	suite.mockRepo.On("FindClientByID", ctx, "client-1").Return(other, nil).Once()

	client, err := suite.service.UpdateClient(ctx, "client-1", dto.UpdateClientRequest{}, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestDeleteClient_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindClientByID", ctx, "client-1").Return(suite.storedClient(), nil).Once()
	suite.mockRepo.On("DeleteClient", ctx, "client-1").Return(nil).Once()

	err := suite.service.DeleteClient(ctx, "client-1", suite.ownerID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestGetClientByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindClientByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.GetClientByID(ctx, "missing", suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClientServiceTestSuite) TestListClients_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListClientsByOwner", ctx, suite.ownerID).Return(nil, nil).Once()

	clients, err := suite.service.ListClients(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.NotNil(clients)
	suite.Empty(clients)
}

// --- Run Suite ---
func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
