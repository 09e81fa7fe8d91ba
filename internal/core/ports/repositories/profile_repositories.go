package repositories

import (
	"context"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
)

// ProfileReader defines read operations for business profiles
type ProfileReader interface {
	// FindProfileByOwner retrieves the business profile of a user.
	FindProfileByOwner(ctx context.Context, ownerUserID string) (*domain.Profile, error)
}

// ProfileWriter defines write operations for business profiles
type ProfileWriter interface {
	// SaveProfile inserts or replaces the business profile of a user.
	SaveProfile(ctx context.Context, profile domain.Profile) error
}

// ProfileRepositoryFacade combines all profile-related repository interfaces
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}

// ProfileRepositoryWithTx extends ProfileRepositoryFacade with transaction capabilities
type ProfileRepositoryWithTx interface {
	ProfileRepositoryFacade
	TransactionManager
}
