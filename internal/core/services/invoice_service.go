package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/uk_books_app/internal/analytics"
	"github.com/SscSPs/uk_books_app/internal/apperrors"
	"github.com/SscSPs/uk_books_app/internal/core/domain"
	"github.com/SscSPs/uk_books_app/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/uk_books_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/uk_books_app/internal/core/ports/services"
	"github.com/SscSPs/uk_books_app/internal/localization"
	"github.com/SscSPs/uk_books_app/internal/obs"
)

// overdueBatchSize bounds how many invoices one MarkOverdue query loads.
const overdueBatchSize = 100

// systemActor is the analytics distinct id for changes made by the overdue sweep.
const systemActor = "system:overdue-sweep"

type invoiceService struct {
	BaseService
	repo      portsrepo.InvoiceRepositoryFacade
	localizer localization.Localizer
	metrics   *obs.Metrics
	tracker   analytics.Tracker
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceLocalizer overrides the catalog used for status descriptions.
func WithInvoiceLocalizer(l localization.Localizer) InvoiceServiceOption {
	return func(s *invoiceService) {
		if l != nil {
			s.localizer = l
		}
	}
}

// WithInvoiceMetrics counts status change attempts.
func WithInvoiceMetrics(m *obs.Metrics) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.metrics = m
	}
}

// WithInvoiceTracker sends an analytics event for every applied status change.
func WithInvoiceTracker(t analytics.Tracker) InvoiceServiceOption {
	return func(s *invoiceService) {
		if t != nil {
			s.tracker = t
		}
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		repo:      repo,
		localizer: localization.Default(),
		tracker:   analytics.Noop{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// owned loads an invoice and checks it belongs to userID.
func (s *invoiceService) owned(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	inv, err := s.repo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	if inv.UserID != userID {
		s.LogWarn(ctx, "User attempted to access another user's invoice",
			slog.String("invoice_id", invoiceID),
			slog.String("user_id", userID))
		return nil, fmt.Errorf("%w: invoice %s does not belong to the user", apperrors.ErrForbidden, invoiceID)
	}
	return inv, nil
}

// GetInvoice returns an invoice owned by userID.
func (s *invoiceService) GetInvoice(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	return s.owned(ctx, userID, invoiceID)
}

// GetTransitions reports which statuses and events are available for an invoice.
func (s *invoiceService) GetTransitions(ctx context.Context, userID, invoiceID string) (*portssvc.InvoiceTransitions, error) {
	inv, err := s.owned(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	return &portssvc.InvoiceTransitions{
		Status:            inv.Status,
		ValidTransitions:  lifecycle.ValidTransitions(inv.Status),
		ValidEvents:       lifecycle.ValidEvents(inv.Status),
		IsTerminal:        lifecycle.IsTerminalStatus(inv.Status),
		IsEditable:        lifecycle.IsEditable(inv.Status),
		IsDeletable:       lifecycle.IsDeletable(inv.Status),
		StatusDescription: s.localizer.Localized(localization.StatusDescriptionKey(string(inv.Status))),
	}, nil
}

// ChangeStatus moves an invoice to target. When expectedUpdatedAt is set it must match the stored
// updatedAt, otherwise apperrors.ErrConflict is returned without touching the invoice.
func (s *invoiceService) ChangeStatus(ctx context.Context, userID, invoiceID string, target domain.InvoiceStatus, expectedUpdatedAt *time.Time, details *domain.PaymentDetails) (*domain.Invoice, error) {
	inv, err := s.owned(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := s.checkFresh(ctx, inv, expectedUpdatedAt, string(target)); err != nil {
		return nil, err
	}

	change, err := lifecycle.PrepareStatusChange(inv.Status, target, details)
	if err != nil {
		s.rejected(ctx, inv, string(target), err)
		return nil, err
	}
	return s.persist(ctx, userID, inv, *change, "")
}

// ApplyEvent fires a named event on an invoice. expectedUpdatedAt behaves as in ChangeStatus.
func (s *invoiceService) ApplyEvent(ctx context.Context, userID, invoiceID string, event domain.InvoiceEvent, expectedUpdatedAt *time.Time, details *domain.PaymentDetails) (*domain.Invoice, error) {
	inv, err := s.owned(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	to := string(event)
	if target, ok := lifecycle.TargetStatusForEvent(event); ok {
		to = string(target)
	}
	if err := s.checkFresh(ctx, inv, expectedUpdatedAt, to); err != nil {
		return nil, err
	}

	change, err := lifecycle.PrepareEventChange(inv.Status, event, details)
	if err != nil {
		s.rejected(ctx, inv, to, err)
		return nil, err
	}
	return s.persist(ctx, userID, inv, *change, event)
}

// MarkOverdue applies mark_overdue to every pending invoice due before asOf.
// Invoices that change concurrently are reported as conflicts and left alone.
func (s *invoiceService) MarkOverdue(ctx context.Context, asOf time.Time) (*portssvc.OverdueSweepResult, error) {
	result := &portssvc.OverdueSweepResult{Marked: []string{}, Conflicts: []string{}}
	seen := map[string]bool{}

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		candidates, err := s.repo.ListOverdueCandidates(ctx, asOf, overdueBatchSize)
		if err != nil {
			s.LogError(ctx, err, "Failed to list overdue candidates", slog.Time("as_of", asOf))
			return result, fmt.Errorf("failed to list overdue candidates: %w", err)
		}

		progressed := false
		for i := range candidates {
			inv := &candidates[i]
			if seen[inv.InvoiceID] {
				continue
			}
			seen[inv.InvoiceID] = true
			progressed = true
			result.Checked++

			change, err := lifecycle.PrepareEventChange(inv.Status, domain.EventMarkOverdue, nil)
			if err != nil {
				s.rejected(ctx, inv, string(domain.InvoiceStatusOverdue), err)
				continue
			}
			if _, err := s.persist(ctx, systemActor, inv, *change, domain.EventMarkOverdue); err != nil {
				if errors.Is(err, apperrors.ErrConflict) {
					result.Conflicts = append(result.Conflicts, inv.InvoiceID)
					continue
				}
				return result, err
			}
			result.Marked = append(result.Marked, inv.InvoiceID)
		}

		if len(candidates) < overdueBatchSize || !progressed {
			break
		}
	}

	s.LogInfo(ctx, "Overdue sweep finished",
		slog.Time("as_of", asOf),
		slog.Int("checked", result.Checked),
		slog.Int("marked", len(result.Marked)),
		slog.Int("conflicts", len(result.Conflicts)))
	return result, nil
}

func (s *invoiceService) checkFresh(ctx context.Context, inv *domain.Invoice, expectedUpdatedAt *time.Time, to string) error {
	if expectedUpdatedAt == nil || expectedUpdatedAt.Equal(inv.UpdatedAt) {
		return nil
	}
	s.metrics.ObserveStatusChange(string(inv.Status), to, obs.ResultConflict)
	s.LogInfo(ctx, "Stale invoice status change rejected",
		slog.String("invoice_id", inv.InvoiceID),
		slog.Time("expected_updated_at", *expectedUpdatedAt),
		slog.Time("updated_at", inv.UpdatedAt))
	return fmt.Errorf("%w: invoice %s was updated at %s", apperrors.ErrConflict, inv.InvoiceID, inv.UpdatedAt.Format(time.RFC3339Nano))
}

func (s *invoiceService) rejected(ctx context.Context, inv *domain.Invoice, to string, err error) {
	s.metrics.ObserveStatusChange(string(inv.Status), to, obs.ResultRejected)
	s.LogDebug(ctx, "Invoice status change rejected",
		slog.String("invoice_id", inv.InvoiceID),
		slog.String("from", string(inv.Status)),
		slog.String("to", to),
		slog.String("reason", err.Error()))
}

// persist writes change with a compare-and-swap on the updatedAt the invoice was read with.
func (s *invoiceService) persist(ctx context.Context, actor string, inv *domain.Invoice, change domain.StatusChange, event domain.InvoiceEvent) (*domain.Invoice, error) {
	from, to := string(change.PreviousStatus), string(change.NewStatus)

	updated, err := s.repo.ApplyStatusChange(ctx, inv.InvoiceID, inv.UpdatedAt, change)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.metrics.ObserveStatusChange(from, to, obs.ResultConflict)
			s.LogInfo(ctx, "Invoice changed concurrently, status change not applied",
				slog.String("invoice_id", inv.InvoiceID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to persist invoice status change",
			slog.String("invoice_id", inv.InvoiceID),
			slog.String("from", from),
			slog.String("to", to))
		return nil, err
	}

	s.metrics.ObserveStatusChange(from, to, obs.ResultApplied)
	props := map[string]any{
		"invoice_id": inv.InvoiceID,
		"from":       from,
		"to":         to,
	}
	if event != "" {
		props["event"] = string(event)
	}
	if change.PaymentMethod != nil {
		props["payment_method"] = string(*change.PaymentMethod)
	}
	s.tracker.Track(actor, "invoice_status_changed", props)

	s.LogInfo(ctx, "Invoice status changed",
		slog.String("invoice_id", inv.InvoiceID),
		slog.String("from", from),
		slog.String("to", to))
	return updated, nil
}
