package pgsql

import (
	"database/sql"

	portsrepo "github.com/SscSPs/uk_books_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the invoice repository on the pgx pool and the
// read-only ledger and category queries on database/sql.
func NewRepositoryProvider(dbPool *pgxpool.Pool, db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		LedgerRepo:   newSQLLedgerRepository(db),
		CategoryRepo: newSQLCategoryRepository(db),
	}
}
