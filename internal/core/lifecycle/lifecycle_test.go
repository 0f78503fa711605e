package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/uk_books_app/internal/apperrors"
	"github.com/SscSPs/uk_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC)

func withFixedClock(t *testing.T) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return fixedNow }
	t.Cleanup(func() { nowFunc = prev })
}

func strPtr(s string) *string { return &s }

func methodPtr(m domain.PaymentMethod) *domain.PaymentMethod { return &m }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestTerminalIffNoTransitions(t *testing.T) {
	for _, s := range Statuses() {
		assert.Equal(t, len(ValidTransitions(s)) == 0, IsTerminalStatus(s), s)
	}
	assert.True(t, IsTerminalStatus(domain.InvoiceStatusCancelled))
	assert.True(t, IsTerminalStatus(domain.InvoiceStatusRefunded))
	assert.False(t, IsTerminalStatus("archived"))
}

func TestIsValidTransition_MatchesTable(t *testing.T) {
	for _, from := range Statuses() {
		for _, to := range Statuses() {
			want := false
			for _, allowed := range statusTransitions[from] {
				if allowed == to {
					want = true
				}
			}
			assert.Equal(t, want, IsValidTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTransitionGraphIsAcyclic(t *testing.T) {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := map[domain.InvoiceStatus]int{}
	var visit func(s domain.InvoiceStatus) bool
	visit = func(s domain.InvoiceStatus) bool {
		switch state[s] {
		case inProgress:
			return false
		case done:
			return true
		}
		state[s] = inProgress
		for _, next := range ValidTransitions(s) {
			if !visit(next) {
				return false
			}
		}
		state[s] = done
		return true
	}
	for _, s := range Statuses() {
		assert.True(t, visit(s), "cycle reachable from %s", s)
	}
}

func TestValidTransitions_ReturnsCopy(t *testing.T) {
	got := ValidTransitions(domain.InvoiceStatusDraft)
	got[0] = domain.InvoiceStatusRefunded
	assert.Equal(t, []domain.InvoiceStatus{domain.InvoiceStatusPending, domain.InvoiceStatusCancelled}, ValidTransitions(domain.InvoiceStatusDraft))
}

func TestEditableAndDeletable(t *testing.T) {
	for _, s := range Statuses() {
		assert.Equal(t, s == domain.InvoiceStatusDraft, IsEditable(s), s)
		assert.Equal(t, s == domain.InvoiceStatusDraft, IsDeletable(s), s)
	}
}

func TestEvents(t *testing.T) {
	tests := []struct {
		event  domain.InvoiceEvent
		target domain.InvoiceStatus
	}{
		{domain.EventSend, domain.InvoiceStatusPending},
		{domain.EventMarkPaid, domain.InvoiceStatusPaid},
		{domain.EventMarkOverdue, domain.InvoiceStatusOverdue},
		{domain.EventCancel, domain.InvoiceStatusCancelled},
		{domain.EventRefund, domain.InvoiceStatusRefunded},
	}
	for _, tt := range tests {
		t.Run(string(tt.event), func(t *testing.T) {
			assert.True(t, IsValidEvent(tt.event))
			target, ok := TargetStatusForEvent(tt.event)
			require.True(t, ok)
			assert.Equal(t, tt.target, target)
		})
	}

	_, ok := TargetStatusForEvent("archive")
	assert.False(t, ok)
	assert.False(t, IsValidEvent("archive"))

	assert.Equal(t, []domain.InvoiceEvent{domain.EventMarkPaid, domain.EventMarkOverdue, domain.EventCancel}, ValidEvents(domain.InvoiceStatusPending))
	assert.Equal(t, []domain.InvoiceEvent{domain.EventRefund}, ValidEvents(domain.InvoiceStatusPaid))
	assert.Empty(t, ValidEvents(domain.InvoiceStatusRefunded))
}

func TestEventTargetsAreLegalFromEverySource(t *testing.T) {
	for e, rule := range eventRules {
		for _, src := range rule.sources {
			assert.True(t, IsValidTransition(src, rule.target), "%s from %s", e, src)
		}
	}
}

func TestPrepareStatusChange_DraftToPaidIsIllegal(t *testing.T) {
	change, err := PrepareStatusChange(domain.InvoiceStatusDraft, domain.InvoiceStatusPaid, nil)

	assert.Nil(t, change)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrIllegalTransition))
	assert.Contains(t, err.Error(), "'draft'")
	assert.Contains(t, err.Error(), "'paid'")
	assert.Contains(t, err.Error(), "pending, cancelled")
}

func TestPrepareStatusChange_FromTerminal(t *testing.T) {
	_, err := PrepareStatusChange(domain.InvoiceStatusCancelled, domain.InvoiceStatusPending, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrIllegalTransition))
	assert.Contains(t, err.Error(), "No transitions are allowed from 'cancelled'")
}

func TestPrepareStatusChange_InvalidStatus(t *testing.T) {
	_, err := PrepareStatusChange("archived", domain.InvoiceStatusPaid, nil)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidStatus))
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = PrepareStatusChange(domain.InvoiceStatusDraft, "archived", nil)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidStatus))
}

func TestPrepareStatusChange_DerivedTimestamps(t *testing.T) {
	withFixedClock(t)

	sent, err := PrepareStatusChange(domain.InvoiceStatusDraft, domain.InvoiceStatusPending, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusDraft, sent.PreviousStatus)
	assert.Equal(t, domain.InvoiceStatusPending, sent.NewStatus)
	assert.Equal(t, fixedNow, sent.UpdatedAt)
	require.NotNil(t, sent.SentAt)
	assert.Equal(t, fixedNow, *sent.SentAt)
	assert.Nil(t, sent.PaidAt)

	overdue, err := PrepareStatusChange(domain.InvoiceStatusPending, domain.InvoiceStatusOverdue, nil)
	require.NoError(t, err)
	assert.Nil(t, overdue.SentAt)
	assert.Nil(t, overdue.CancelledAt)

	cancelled, err := PrepareStatusChange(domain.InvoiceStatusOverdue, domain.InvoiceStatusCancelled, nil)
	require.NoError(t, err)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, fixedNow, *cancelled.CancelledAt)

	refunded, err := PrepareStatusChange(domain.InvoiceStatusPaid, domain.InvoiceStatusRefunded, nil)
	require.NoError(t, err)
	require.NotNil(t, refunded.RefundedAt)
	assert.Equal(t, fixedNow, *refunded.RefundedAt)
}

func TestPrepareStatusChange_PaidWithoutDetailsDefaultsToNow(t *testing.T) {
	withFixedClock(t)

	change, err := PrepareStatusChange(domain.InvoiceStatusPending, domain.InvoiceStatusPaid, nil)

	require.NoError(t, err)
	require.NotNil(t, change.PaidAt)
	assert.Equal(t, fixedNow, *change.PaidAt)
	assert.Nil(t, change.PaymentMethod)
	assert.Nil(t, change.PaymentAmount)
}

func TestPrepareStatusChange_PaidWithDetails(t *testing.T) {
	withFixedClock(t)
	details := &domain.PaymentDetails{
		PaymentDate:      strPtr("2025-04-30T09:00:00Z"),
		PaymentMethod:    methodPtr(domain.PaymentMethodBankTransfer),
		PaymentReference: strPtr("INV-0042"),
		PaymentAmount:    decPtr(decimal.NewFromInt(12000)),
		Notes:            strPtr("paid in full"),
	}

	change, err := PrepareStatusChange(domain.InvoiceStatusOverdue, domain.InvoiceStatusPaid, details)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 30, 9, 0, 0, 0, time.UTC), *change.PaidAt)
	assert.Equal(t, domain.PaymentMethodBankTransfer, *change.PaymentMethod)
	assert.Equal(t, "INV-0042", *change.PaymentReference)
	assert.Equal(t, int64(12000), *change.PaymentAmount)
	assert.Equal(t, "paid in full", *change.PaymentNotes)
	assert.Equal(t, fixedNow, change.UpdatedAt)
}

func TestPrepareStatusChange_PaidWithInvalidDetails(t *testing.T) {
	details := &domain.PaymentDetails{
		PaymentMethod: methodPtr("bitcoin"),
		PaymentAmount: decPtr(decimal.RequireFromString("10.5")),
	}

	change, err := PrepareStatusChange(domain.InvoiceStatusPending, domain.InvoiceStatusPaid, details)

	assert.Nil(t, change)
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, apperrors.CodeInvalidPaymentDetails, domainErr.Code)
	assert.Contains(t, domainErr.Fields, "paymentMethod")
	assert.Contains(t, domainErr.Fields, "paymentAmount")
}

func TestPrepareStatusChange_AmountBeyondInt64IsRejected(t *testing.T) {
	details := &domain.PaymentDetails{PaymentAmount: decPtr(decimal.RequireFromString("18446744073709551615"))}

	change, err := PrepareStatusChange(domain.InvoiceStatusPending, domain.InvoiceStatusPaid, details)

	assert.Nil(t, change)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentDetails)
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Contains(t, domainErr.Fields, "paymentAmount")
}

func TestPrepareStatusChange_MinutePrecisionPaymentDate(t *testing.T) {
	details := &domain.PaymentDetails{PaymentDate: strPtr("2025-04-05T10:00")}

	change, err := PrepareStatusChange(domain.InvoiceStatusPending, domain.InvoiceStatusPaid, details)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC), *change.PaidAt)
}

func TestPrepareStatusChange_DetailsIgnoredForOtherTargets(t *testing.T) {
	details := &domain.PaymentDetails{PaymentMethod: methodPtr("bitcoin")}

	change, err := PrepareStatusChange(domain.InvoiceStatusDraft, domain.InvoiceStatusPending, details)

	require.NoError(t, err)
	assert.Nil(t, change.PaymentMethod)
}

func TestPrepareEventChange(t *testing.T) {
	withFixedClock(t)

	change, err := PrepareEventChange(domain.InvoiceStatusDraft, domain.EventSend, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPending, change.NewStatus)
	assert.NotNil(t, change.SentAt)

	_, err = PrepareEventChange(domain.InvoiceStatusDraft, "archive", nil)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidEvent))

	_, err = PrepareEventChange(domain.InvoiceStatusPaid, domain.EventSend, nil)
	assert.True(t, errors.Is(err, apperrors.ErrEventNotAllowedFromStatus))
	assert.Contains(t, err.Error(), "Valid events: refund")

	_, err = PrepareEventChange(domain.InvoiceStatusRefunded, domain.EventCancel, nil)
	assert.True(t, errors.Is(err, apperrors.ErrEventNotAllowedFromStatus))
	assert.Contains(t, err.Error(), "No events are allowed")
}
