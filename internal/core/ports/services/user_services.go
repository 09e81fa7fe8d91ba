package services

import (
	"context"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
)

// UserReaderSvc defines read operations for user accounts
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
}
