package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/core/services"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
	"github.com/invoicecraft/invoice_craft_app/internal/platform/config"
	"github.com/invoicecraft/invoice_craft_app/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock TokenSvc ---
type MockTokenSvc struct {
	mock.Mock
}

func (m *MockTokenSvc) GenerateToken(user *domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockTokenSvc) ValidateToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockUserRepository
	mockTokens *MockTokenSvc
	service    portssvc.AuthSvc
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockTokens = new(MockTokenSvc)
	suite.service = services.NewAuthService(suite.mockRepo, suite.mockTokens)
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "Jane", Email: "jane@example.com", Password: "correct horse"}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email && u.Name == req.Name &&
			u.UserID != "" && u.PasswordHash != "" && u.PasswordHash != req.Password
	})).Return(nil).Once()
	suite.mockTokens.On("GenerateToken", mock.AnythingOfType("*domain.User")).Return("token-123", nil).Once()

	resp, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("token-123", resp.Token)
	suite.Equal(req.Email, resp.User.Email)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockTokens.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "Jane", Email: "jane@example.com", Password: "correct horse"}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(&domain.User{Email: req.Email}, nil).Once()

	resp, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "jane@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockTokens.On("GenerateToken", user).Return("token-123", nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: "correct horse"})

	suite.Require().NoError(err)
	suite.Equal("token-123", resp.Token)
	suite.Equal(user.UserID, resp.User.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "jane@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: "wrong"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockTokens.AssertNotCalled(suite.T(), "GenerateToken", mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_OAuthAccountHasNoPassword() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Email: "jane@example.com", AuthProvider: "google"}

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: "anything"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

// --- Token service ---

func tokenConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "invoicecraft-test",
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := services.NewTokenService(tokenConfig())
	user := &domain.User{UserID: uuid.NewString()}

	token, err := svc.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.UserID, subject)
}

func TestTokenService_WrongSecretRejected(t *testing.T) {
	issuing := services.NewTokenService(tokenConfig())
	token, err := issuing.GenerateToken(&domain.User{UserID: uuid.NewString()})
	assert.NoError(t, err)

	other := tokenConfig()
	other.JWTSecret = "different-secret"
	validating := services.NewTokenService(other)

	_, err = validating.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenService_GarbageTokenRejected(t *testing.T) {
	svc := services.NewTokenService(tokenConfig())

	_, err := svc.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
