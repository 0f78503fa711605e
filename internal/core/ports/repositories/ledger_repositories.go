package repositories

import (
	"context"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
)

// LedgerQuery is the read-only view of the transaction ledger the VAT reports are built from.
// Implementations must honour every field of the filter; the aggregator re-checks date range
// and void status regardless.
type LedgerQuery interface {
	QueryLedger(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error)
}

// CategoryDirectory resolves category ids to display names.
type CategoryDirectory interface {
	// ListCategories returns the categories visible to a user, including system-wide ones.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
}
