package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/invoicecraft/invoice_craft_app/internal/apperrors"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	portsrepo "github.com/invoicecraft/invoice_craft_app/internal/core/ports/repositories"
	"github.com/invoicecraft/invoice_craft_app/internal/models"
	"github.com/invoicecraft/invoice_craft_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `
	invoice_id, owner_user_id, invoice_number, issue_date, due_date, currency_code,
	line_items, tax_rate, discount_rate, notes, business, client, banking,
	subtotal, discount_amount, tax_amount, total,
	template_id, recurring, recurrence_interval, email_sent_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.OwnerUserID,
		&m.InvoiceNumber,
		&m.IssueDate,
		&m.DueDate,
		&m.CurrencyCode,
		&m.LineItems,
		&m.TaxRate,
		&m.DiscountRate,
		&m.Notes,
		&m.Business,
		&m.Client,
		&m.Banking,
		&m.Subtotal,
		&m.DiscountAmount,
		&m.TaxAmount,
		&m.Total,
		&m.TemplateID,
		&m.Recurring,
		&m.RecurrenceInterval,
		&m.EmailSentAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.SavedInvoice) error {
	m, err := mapping.ToModelInvoice(invoice)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.InvoiceID, m.OwnerUserID, m.InvoiceNumber, m.IssueDate, m.DueDate, m.CurrencyCode,
		m.LineItems, m.TaxRate, m.DiscountRate, m.Notes, m.Business, m.Client, m.Banking,
		m.Subtotal, m.DiscountAmount, m.TaxAmount, m.Total,
		m.TemplateID, m.Recurring, m.RecurrenceInterval, m.EmailSentAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.SavedInvoice) error {
	m, err := mapping.ToModelInvoice(invoice)
	if err != nil {
		return err
	}

	query := `
		UPDATE invoices SET
			invoice_number = $1, issue_date = $2, due_date = $3, currency_code = $4,
			line_items = $5, tax_rate = $6, discount_rate = $7, notes = $8,
			business = $9, client = $10, banking = $11,
			subtotal = $12, discount_amount = $13, tax_amount = $14, total = $15,
			template_id = $16, recurring = $17, recurrence_interval = $18,
			last_updated_at = $19, last_updated_by = $20
		WHERE invoice_id = $21;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.InvoiceNumber, m.IssueDate, m.DueDate, m.CurrencyCode,
		m.LineItems, m.TaxRate, m.DiscountRate, m.Notes,
		m.Business, m.Client, m.Banking,
		m.Subtotal, m.DiscountAmount, m.TaxAmount, m.Total,
		m.TemplateID, m.Recurring, m.RecurrenceInterval,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.InvoiceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInvoiceRepository) MarkEmailSent(ctx context.Context, invoiceID string, sentAt time.Time) error {
	query := `
		UPDATE invoices SET email_sent_at = $1, last_updated_at = $1
		WHERE invoice_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, sentAt, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to mark invoice email sent: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.SavedInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	d, err := mapping.ToDomainInvoice(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxInvoiceRepository) ListInvoicesByOwner(ctx context.Context, ownerUserID string) ([]domain.SavedInvoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE owner_user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	ms := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}

	return mapping.ToDomainInvoiceSlice(ms)
}
