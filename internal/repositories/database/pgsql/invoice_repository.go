package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/uk_books_app/internal/apperrors"
	"github.com/SscSPs/uk_books_app/internal/core/domain"
	portsrepo "github.com/SscSPs/uk_books_app/internal/core/ports/repositories"
	"github.com/SscSPs/uk_books_app/internal/middleware"
	"github.com/SscSPs/uk_books_app/internal/models"
	"github.com/SscSPs/uk_books_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const invoiceColumns = `invoice_id, user_id, invoice_number, customer_name, status, issue_date, due_date,
	net_amount, vat_amount, total_amount, currency_code,
	sent_at, paid_at, cancelled_at, refunded_at,
	payment_method, payment_reference, payment_amount, payment_notes,
	created_at, updated_at`

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.UserID,
		&m.InvoiceNumber,
		&m.CustomerName,
		&m.Status,
		&m.IssueDate,
		&m.DueDate,
		&m.NetAmount,
		&m.VatAmount,
		&m.TotalAmount,
		&m.CurrencyCode,
		&m.SentAt,
		&m.PaidAt,
		&m.CancelledAt,
		&m.RefundedAt,
		&m.PaymentMethod,
		&m.PaymentReference,
		&m.PaymentAmount,
		&m.PaymentNotes,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	inv := mapping.ToDomainInvoice(m)
	return &inv, nil
}

// ListOverdueCandidates returns pending invoices due strictly before asOf, oldest due date first.
func (r *PgxInvoiceRepository) ListOverdueCandidates(ctx context.Context, asOf time.Time, limit int) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE status = $1 AND due_date < $2
		ORDER BY due_date, invoice_id
		LIMIT $3;`

	rows, err := r.Pool.Query(ctx, query, string(domain.InvoiceStatusPending), asOf.Format(domain.DateLayout), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue candidates: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}

// ApplyStatusChange writes a lifecycle result with a compare-and-swap on status and updated_at,
// and records the transition in invoice_status_history within the same transaction.
func (r *PgxInvoiceRepository) ApplyStatusChange(ctx context.Context, invoiceID string, expectedUpdatedAt time.Time, change domain.StatusChange) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to roll back invoice status change", slog.String("invoice_id", invoiceID), slog.String("error", rbErr.Error()))
		}
	}()

	var paymentMethod *string
	if change.PaymentMethod != nil {
		s := string(*change.PaymentMethod)
		paymentMethod = &s
	}
	isPaid := change.NewStatus == domain.InvoiceStatusPaid

	query := `
		UPDATE invoices SET
			status = $1,
			updated_at = $2,
			sent_at = COALESCE($3::timestamptz, sent_at),
			cancelled_at = COALESCE($4::timestamptz, cancelled_at),
			refunded_at = COALESCE($5::timestamptz, refunded_at),
			paid_at = CASE WHEN $6::boolean THEN $7::timestamptz ELSE paid_at END,
			payment_method = CASE WHEN $6::boolean THEN $8::varchar ELSE payment_method END,
			payment_reference = CASE WHEN $6::boolean THEN $9::varchar ELSE payment_reference END,
			payment_amount = CASE WHEN $6::boolean THEN $10::bigint ELSE payment_amount END,
			payment_notes = CASE WHEN $6::boolean THEN $11::varchar ELSE payment_notes END
		WHERE invoice_id = $12 AND status = $13 AND updated_at = $14
		RETURNING ` + invoiceColumns + `;`

	m, err := scanInvoice(tx.QueryRow(ctx, query,
		string(change.NewStatus),
		change.UpdatedAt,
		change.SentAt,
		change.CancelledAt,
		change.RefundedAt,
		isPaid,
		change.PaidAt,
		paymentMethod,
		change.PaymentReference,
		change.PaymentAmount,
		change.PaymentNotes,
		invoiceID,
		string(change.PreviousStatus),
		expectedUpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missOrConflict(ctx, tx, invoiceID)
		}
		return nil, fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}

	history := mapping.ToModelStatusHistory(invoiceID, change)
	_, err = tx.Exec(ctx, `
		INSERT INTO invoice_status_history (invoice_id, previous_status, new_status, changed_at)
		VALUES ($1, $2, $3, $4);`,
		history.InvoiceID, history.PreviousStatus, history.NewStatus, m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record status history for invoice %s: %w", invoiceID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	inv := mapping.ToDomainInvoice(m)
	return &inv, nil
}

// missOrConflict tells a missing invoice apart from one that changed under the caller.
func (r *PgxInvoiceRepository) missOrConflict(ctx context.Context, tx pgx.Tx, invoiceID string) error {
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM invoices WHERE invoice_id = $1);`, invoiceID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check invoice %s: %w", invoiceID, err)
	}
	if !exists {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
	}
	return fmt.Errorf("%w: invoice %s", apperrors.ErrConflict, invoiceID)
}
