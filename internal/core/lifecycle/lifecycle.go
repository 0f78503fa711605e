// Package lifecycle decides which invoice status changes are legal and what
// the caller must persist for them. It performs no I/O; the caller owns storage
// and must apply its own compare-and-swap on the invoice's updatedAt.
package lifecycle

import (
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/uk_books_app/internal/apperrors"
	"github.com/SscSPs/uk_books_app/internal/core/domain"
)

// nowFunc is the clock used for derived timestamps.
var nowFunc = func() time.Time { return time.Now().UTC() }

var statuses = []domain.InvoiceStatus{
	domain.InvoiceStatusDraft,
	domain.InvoiceStatusPending,
	domain.InvoiceStatusPaid,
	domain.InvoiceStatusOverdue,
	domain.InvoiceStatusCancelled,
	domain.InvoiceStatusRefunded,
}

var events = []domain.InvoiceEvent{
	domain.EventSend,
	domain.EventMarkPaid,
	domain.EventMarkOverdue,
	domain.EventCancel,
	domain.EventRefund,
}

// statusTransitions is read-only; accessors hand out copies.
var statusTransitions = map[domain.InvoiceStatus][]domain.InvoiceStatus{
	domain.InvoiceStatusDraft:     {domain.InvoiceStatusPending, domain.InvoiceStatusCancelled},
	domain.InvoiceStatusPending:   {domain.InvoiceStatusPaid, domain.InvoiceStatusOverdue, domain.InvoiceStatusCancelled},
	domain.InvoiceStatusPaid:      {domain.InvoiceStatusRefunded},
	domain.InvoiceStatusOverdue:   {domain.InvoiceStatusPaid, domain.InvoiceStatusCancelled},
	domain.InvoiceStatusCancelled: {},
	domain.InvoiceStatusRefunded:  {},
}

type eventRule struct {
	target  domain.InvoiceStatus
	sources []domain.InvoiceStatus
}

var eventRules = map[domain.InvoiceEvent]eventRule{
	domain.EventSend:        {target: domain.InvoiceStatusPending, sources: []domain.InvoiceStatus{domain.InvoiceStatusDraft}},
	domain.EventMarkPaid:    {target: domain.InvoiceStatusPaid, sources: []domain.InvoiceStatus{domain.InvoiceStatusPending, domain.InvoiceStatusOverdue}},
	domain.EventMarkOverdue: {target: domain.InvoiceStatusOverdue, sources: []domain.InvoiceStatus{domain.InvoiceStatusPending}},
	domain.EventCancel:      {target: domain.InvoiceStatusCancelled, sources: []domain.InvoiceStatus{domain.InvoiceStatusDraft, domain.InvoiceStatusPending, domain.InvoiceStatusOverdue}},
	domain.EventRefund:      {target: domain.InvoiceStatusRefunded, sources: []domain.InvoiceStatus{domain.InvoiceStatusPaid}},
}

// Statuses lists every invoice status in lifecycle order.
func Statuses() []domain.InvoiceStatus { return slices.Clone(statuses) }

// Events lists every invoice event.
func Events() []domain.InvoiceEvent { return slices.Clone(events) }

// IsValidStatus reports whether s is a known invoice status.
func IsValidStatus(s domain.InvoiceStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsValidTransition reports whether from -> to is an edge of the lifecycle graph.
func IsValidTransition(from, to domain.InvoiceStatus) bool {
	return slices.Contains(statusTransitions[from], to)
}

// ValidTransitions returns the statuses reachable from s in one step.
// Unknown and terminal statuses yield an empty slice.
func ValidTransitions(s domain.InvoiceStatus) []domain.InvoiceStatus {
	return slices.Clone(statusTransitions[s])
}

// IsTerminalStatus reports whether s has no outgoing transitions.
func IsTerminalStatus(s domain.InvoiceStatus) bool {
	return IsValidStatus(s) && len(statusTransitions[s]) == 0
}

// IsEditable reports whether an invoice in status s may still be edited.
func IsEditable(s domain.InvoiceStatus) bool { return s == domain.InvoiceStatusDraft }

// IsDeletable reports whether an invoice in status s may be deleted.
func IsDeletable(s domain.InvoiceStatus) bool { return s == domain.InvoiceStatusDraft }

// IsValidEvent reports whether e is a known event.
func IsValidEvent(e domain.InvoiceEvent) bool {
	_, ok := eventRules[e]
	return ok
}

// TargetStatusForEvent resolves an event to its target status.
func TargetStatusForEvent(e domain.InvoiceEvent) (domain.InvoiceStatus, bool) {
	rule, ok := eventRules[e]
	return rule.target, ok
}

// ValidEvents returns, in declaration order, the events that may fire from s.
func ValidEvents(s domain.InvoiceStatus) []domain.InvoiceEvent {
	valid := []domain.InvoiceEvent{}
	for _, e := range events {
		if slices.Contains(eventRules[e].sources, s) {
			valid = append(valid, e)
		}
	}
	return valid
}

// PrepareStatusChange validates current -> target and returns the fields to persist.
// details is only looked at when target is paid and may be nil.
func PrepareStatusChange(current, target domain.InvoiceStatus, details *domain.PaymentDetails) (*domain.StatusChange, error) {
	if !IsValidStatus(current) {
		return nil, apperrors.NewDomainError(apperrors.CodeInvalidStatus, "Invalid current status: '%s'", current)
	}
	if !IsValidStatus(target) {
		return nil, apperrors.NewDomainError(apperrors.CodeInvalidStatus, "Invalid target status: '%s'", target)
	}
	if !IsValidTransition(current, target) {
		allowed := ValidTransitions(current)
		if len(allowed) == 0 {
			return nil, apperrors.NewDomainError(apperrors.CodeIllegalTransition,
				"Invalid status transition from '%s' to '%s'. No transitions are allowed from '%s' status", current, target, current)
		}
		return nil, apperrors.NewDomainError(apperrors.CodeIllegalTransition,
			"Invalid status transition from '%s' to '%s'. Valid transitions: %s", current, target, joinStatuses(allowed))
	}

	now := nowFunc()
	change := &domain.StatusChange{
		PreviousStatus: current,
		NewStatus:      target,
		UpdatedAt:      now,
	}

	switch target {
	case domain.InvoiceStatusPending:
		if current == domain.InvoiceStatusDraft {
			change.SentAt = &now
		}
	case domain.InvoiceStatusPaid:
		if err := applyPayment(change, details, now); err != nil {
			return nil, err
		}
	case domain.InvoiceStatusCancelled:
		change.CancelledAt = &now
	case domain.InvoiceStatusRefunded:
		change.RefundedAt = &now
	}

	return change, nil
}

// PrepareEventChange resolves event to a target status and delegates to PrepareStatusChange.
func PrepareEventChange(current domain.InvoiceStatus, event domain.InvoiceEvent, details *domain.PaymentDetails) (*domain.StatusChange, error) {
	rule, ok := eventRules[event]
	if !ok {
		return nil, apperrors.NewDomainError(apperrors.CodeInvalidEvent, "Invalid event: '%s'", event)
	}
	if !slices.Contains(rule.sources, current) {
		valid := ValidEvents(current)
		if len(valid) == 0 {
			return nil, apperrors.NewDomainError(apperrors.CodeEventNotAllowedFromStatus,
				"Event '%s' is not allowed from status '%s'. No events are allowed from '%s' status", event, current, current)
		}
		names := make([]string, len(valid))
		for i, e := range valid {
			names[i] = string(e)
		}
		return nil, apperrors.NewDomainError(apperrors.CodeEventNotAllowedFromStatus,
			"Event '%s' is not allowed from status '%s'. Valid events: %s", event, current, strings.Join(names, ", "))
	}
	return PrepareStatusChange(current, rule.target, details)
}

func applyPayment(change *domain.StatusChange, details *domain.PaymentDetails, now time.Time) error {
	paidAt := now
	if details == nil {
		change.PaidAt = &paidAt
		return nil
	}

	result := ValidatePaymentDetails(*details)
	if !result.IsValid {
		return &apperrors.DomainError{
			Code:    apperrors.CodeInvalidPaymentDetails,
			Message: "Invalid payment details",
			Fields:  result.Errors,
		}
	}

	if details.PaymentDate != nil && *details.PaymentDate != "" {
		// Already validated above.
		paidAt, _ = parsePaymentDate(*details.PaymentDate)
	}
	change.PaidAt = &paidAt
	change.PaymentMethod = details.PaymentMethod
	change.PaymentReference = details.PaymentReference
	change.PaymentNotes = details.Notes
	if details.PaymentAmount != nil {
		amount := details.PaymentAmount.IntPart()
		change.PaymentAmount = &amount
	}
	return nil
}

func joinStatuses(list []domain.InvoiceStatus) string {
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
