package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	portsrepo "github.com/invoicecraft/invoice_craft_app/internal/core/ports/repositories"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
	"github.com/invoicecraft/invoice_craft_app/internal/dto"
)

// clientService implements the ClientSvcFacade interface
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service
func NewClientService(repo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: repo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, ownerUserID string) (*domain.Client, error) {
	now := time.Now()
	client := domain.Client{
		ClientID:    uuid.NewString(),
		OwnerUserID: ownerUserID,
		ClientInfo: domain.ClientInfo{
			Name:    req.Name,
			Email:   req.Email,
			Address: req.Address,
			Phone:   req.Phone,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("owner_user_id", ownerUserID))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	return &client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, requesterUserID string) (*domain.Client, error) {
	client, err := s.findOwned(ctx, clientID, requesterUserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = requesterUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID, requesterUserID string) error {
	if _, err := s.findOwned(ctx, clientID, requesterUserID); err != nil {
		return err
	}

	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID, requesterUserID string) (*domain.Client, error) {
	return s.findOwned(ctx, clientID, requesterUserID)
}

func (s *clientService) ListClients(ctx context.Context, requesterUserID string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClientsByOwner(ctx, requesterUserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients", slog.String("owner_user_id", requesterUserID))
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *clientService) findOwned(ctx context.Context, clientID, requesterUserID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	if client.OwnerUserID != requesterUserID {
		return nil, apperrors.ErrNotFound
	}
	return client, nil
}
