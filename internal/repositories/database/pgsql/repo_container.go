package pgsql

import (
	portsrepo "github.com/invoicecraft/invoice_craft_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgsql repositories plus the blob store into
// the provider handed to the service container.
func NewRepositoryProvider(dbPool *pgxpool.Pool, blobs portsrepo.BlobStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo: newPgxInvoiceRepository(dbPool),
		ClientRepo:  newPgxClientRepository(dbPool),
		ProfileRepo: newPgxProfileRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
		Blobs:       blobs,
	}
}
