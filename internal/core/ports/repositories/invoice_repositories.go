package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoices.
type InvoiceReader interface {
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	// ListOverdueCandidates returns pending invoices whose due date is strictly before asOf.
	ListOverdueCandidates(ctx context.Context, asOf time.Time, limit int) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoices.
type InvoiceWriter interface {
	// ApplyStatusChange writes change only if the stored row still has change.PreviousStatus
	// and expectedUpdatedAt. A lost race returns apperrors.ErrConflict.
	ApplyStatusChange(ctx context.Context, invoiceID string, expectedUpdatedAt time.Time, change domain.StatusChange) (*domain.Invoice, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
