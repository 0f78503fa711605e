package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
	portsrepo "github.com/SscSPs/uk_books_app/internal/core/ports/repositories"
	"github.com/SscSPs/uk_books_app/internal/models"
	"github.com/SscSPs/uk_books_app/internal/utils/mapping"
)

type sqlLedgerRepository struct {
	SQLRepository
}

func newSQLLedgerRepository(db *sql.DB) portsrepo.LedgerQuery {
	return &sqlLedgerRepository{SQLRepository: SQLRepository{DB: db}}
}

var _ portsrepo.LedgerQuery = (*sqlLedgerRepository)(nil)

// buildLedgerQuery renders the filter into SQL. Excluded statuses become one placeholder each.
func buildLedgerQuery(filter domain.LedgerFilter) (string, []any) {
	var b strings.Builder
	b.WriteString(`SELECT transaction_id, user_id, type, status, transaction_date,
		amount, vat_rate, vat_amount, total_amount, category_id
		FROM transactions
		WHERE user_id = $1 AND transaction_date >= $2 AND transaction_date <= $3`)
	args := []any{
		filter.UserID,
		filter.DateFrom.Format(domain.DateLayout),
		filter.DateTo.Format(domain.DateLayout),
	}

	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		fmt.Fprintf(&b, " AND type = $%d", len(args))
	}
	if len(filter.ExcludedStatuses) > 0 {
		placeholders := make([]string, len(filter.ExcludedStatuses))
		for i, s := range filter.ExcludedStatuses {
			args = append(args, string(s))
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		fmt.Fprintf(&b, " AND status NOT IN (%s)", strings.Join(placeholders, ", "))
	}
	b.WriteString(" ORDER BY transaction_date, transaction_id;")
	return b.String(), args
}

// QueryLedger returns the ledger rows matching filter.
func (r *sqlLedgerRepository) QueryLedger(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	query, args := buildLedgerQuery(filter)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger: %w", err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.UserID,
			&m.Type,
			&m.Status,
			&m.TransactionDate,
			&m.Amount,
			&m.VatRate,
			&m.VatAmount,
			&m.TotalAmount,
			&m.CategoryID,
		); err != nil {
			return nil, fmt.Errorf("error scanning ledger row: %w", err)
		}
		entries = append(entries, mapping.ToDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger rows: %w", err)
	}
	return entries, nil
}
