package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	portsrepo "github.com/invoicecraft/invoice_craft_app/internal/core/ports/repositories"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
	"github.com/invoicecraft/invoice_craft_app/internal/platform/config"
	"github.com/invoicecraft/invoice_craft_app/internal/utils"
)

// authService implements password registration and login.
type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	tokens   portssvc.TokenSvc
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvc) portssvc.AuthSvc {
	return &authService{userRepo: userRepo, tokens: tokens}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterUserRequest) (*dto.AuthResponse, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save new user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return s.issue(&user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user for login: %w", err)
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected", slog.String("email", req.Email))
		return nil, apperrors.ErrUnauthorized
	}

	return s.issue(user)
}

func (s *authService) issue(user *domain.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}

// tokenService issues and validates JWT access tokens.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new token service
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvc = (*tokenService)(nil)

func (s *tokenService) GenerateToken(user *domain.User) (string, error) {
	return utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}

func (s *tokenService) ValidateToken(token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	if claims.Subject == "" {
		return "", apperrors.ErrUnauthorized
	}
	return claims.Subject, nil
}

// googleOAuthService implements the Google sign-in flow.
type googleOAuthService struct {
	BaseService
	cfg          *config.Config
	oauth2Config *oauth2.Config
	userRepo     portsrepo.UserRepositoryFacade
	tokens       portssvc.TokenSvc
}

// NewGoogleOAuthService creates a new Google OAuth service
func NewGoogleOAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvc) portssvc.GoogleOAuthSvc {
	return &googleOAuthService{
		cfg:      cfg,
		userRepo: userRepo,
		tokens:   tokens,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvc = (*googleOAuthService)(nil)

func (s *googleOAuthService) AuthCodeURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

func (s *googleOAuthService) HandleCallback(ctx context.Context, code string) (*dto.AuthResponse, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google token response did not include an ID token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, errors.New("google ID token is missing the email claim")
	}

	user, err := s.findOrCreate(ctx, email, name)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &dto.AuthResponse{Token: accessToken, User: dto.ToUserResponse(user)}, nil
}

func (s *googleOAuthService) findOrCreate(ctx context.Context, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	now := time.Now()
	created := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		AuthProvider: "google",
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	created.CreatedBy = created.UserID
	created.LastUpdatedBy = created.UserID

	if err := s.userRepo.SaveUser(ctx, created); err != nil {
		s.LogError(ctx, err, "Failed to provision google user", slog.String("email", email))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &created, nil
}
