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

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(db *pgxpool.Pool) portsrepo.ProfileRepositoryWithTx {
	return &PgxProfileRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ProfileRepositoryWithTx = (*PgxProfileRepository)(nil)

// SaveProfile upserts on owner_user_id; each user has at most one profile.
func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	m, err := mapping.ToModelProfile(profile)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO profiles (profile_id, owner_user_id, business, banking, default_currency, default_template, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (owner_user_id) DO UPDATE SET
			business = EXCLUDED.business,
			banking = EXCLUDED.banking,
			default_currency = EXCLUDED.default_currency,
			default_template = EXCLUDED.default_template,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = r.Pool.Exec(ctx, query,
		m.ProfileID, m.OwnerUserID, m.Business, m.Banking, m.DefaultCurrency, m.DefaultTemplate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *PgxProfileRepository) FindProfileByOwner(ctx context.Context, ownerUserID string) (*domain.Profile, error) {
	query := `
		SELECT profile_id, owner_user_id, business, banking, default_currency, default_template, created_at, created_by, last_updated_at, last_updated_by
		FROM profiles
		WHERE owner_user_id = $1;
	`
	var m models.Profile
	err := r.Pool.QueryRow(ctx, query, ownerUserID).Scan(
		&m.ProfileID, &m.OwnerUserID, &m.Business, &m.Banking, &m.DefaultCurrency, &m.DefaultTemplate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile for user %s: %w", ownerUserID, err)
	}

	d, err := mapping.ToDomainProfile(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
