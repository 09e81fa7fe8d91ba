package repositories

import (
	"context"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
)

// ClientReader defines read operations for client records
type ClientReader interface {
	// FindClientByID retrieves a specific client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClientsByOwner retrieves all clients belonging to a user.
	ListClientsByOwner(ctx context.Context, ownerUserID string) ([]domain.Client, error)
}

// ClientWriter defines write operations for client records
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient replaces a persisted client record.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client record.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}

// ClientRepositoryWithTx extends ClientRepositoryFacade with transaction capabilities
type ClientRepositoryWithTx interface {
	ClientRepositoryFacade
	TransactionManager
}
