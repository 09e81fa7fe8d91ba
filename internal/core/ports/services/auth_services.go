package services

import (
	"context"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
)

// AuthSvc handles credential-based registration and login
type AuthSvc interface {
	Register(ctx context.Context, req dto.RegisterUserRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}

// TokenSvc issues and verifies access tokens
type TokenSvc interface {
	GenerateToken(user *domain.User) (string, error)

	// ValidateToken returns the user ID the token was issued for.
	ValidateToken(token string) (string, error)
}

// GoogleOAuthSvc handles the Google sign-in flow
type GoogleOAuthSvc interface {
	// AuthCodeURL builds the consent page URL for the given state.
	AuthCodeURL(state string) string

	// HandleCallback exchanges the authorization code, provisioning the user
	// on first sign-in.
	HandleCallback(ctx context.Context, code string) (*dto.AuthResponse, error)
}
