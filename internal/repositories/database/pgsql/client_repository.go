package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	portsrepo "github.com/invoicecraft/invoice_craft_app/internal/core/ports/repositories"
	"github.com/invoicecraft/invoice_craft_app/internal/models"
	"github.com/invoicecraft/invoice_craft_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepositoryWithTx {
	return &PgxClientRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ClientRepositoryWithTx = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (client_id, owner_user_id, name, email, address, phone, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.OwnerUserID, m.Name, m.Email, m.Address, m.Phone,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET name = $1, email = $2, address = $3, phone = $4, last_updated_at = $5, last_updated_by = $6
		WHERE client_id = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Email, m.Address, m.Phone, m.LastUpdatedAt, m.LastUpdatedBy, m.ClientID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, owner_user_id, name, email, address, phone, created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		WHERE client_id = $1;
	`
	var m models.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&m.ClientID, &m.OwnerUserID, &m.Name, &m.Email, &m.Address, &m.Phone,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}

	d := mapping.ToDomainClient(m)
	return &d, nil
}

func (r *PgxClientRepository) ListClientsByOwner(ctx context.Context, ownerUserID string) ([]domain.Client, error) {
	query := `
		SELECT client_id, owner_user_id, name, email, address, phone, created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		WHERE owner_user_id = $1
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	ms := []models.Client{}
	for rows.Next() {
		var m models.Client
		err := rows.Scan(
			&m.ClientID, &m.OwnerUserID, &m.Name, &m.Email, &m.Address, &m.Phone,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}

	return mapping.ToDomainClientSlice(ms), nil
}
