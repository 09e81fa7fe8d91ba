package services

import (
	"context"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
)

// ClientReaderSvc defines read operations for client records
type ClientReaderSvc interface {
	GetClientByID(ctx context.Context, clientID, requesterUserID string) (*domain.Client, error)
	ListClients(ctx context.Context, requesterUserID string) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client records
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, ownerUserID string) (*domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, requesterUserID string) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID, requesterUserID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
