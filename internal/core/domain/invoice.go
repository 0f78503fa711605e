package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusRefunded  InvoiceStatus = "refunded"
)

// InvoiceEvent is a named action that resolves to exactly one target status.
type InvoiceEvent string

const (
	EventSend        InvoiceEvent = "send"
	EventMarkPaid    InvoiceEvent = "mark_paid"
	EventMarkOverdue InvoiceEvent = "mark_overdue"
	EventCancel      InvoiceEvent = "cancel"
	EventRefund      InvoiceEvent = "refund"
)

// PaymentMethod is how a paid invoice was settled.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodCheque       PaymentMethod = "cheque"
	PaymentMethodOther        PaymentMethod = "other"
)

// PaymentDetails is the optional payload of a transition to paid.
// PaymentDate is an ISO-8601 timestamp; PaymentAmount is in minor units and
// kept as a decimal so fractional input can be rejected instead of truncated.
type PaymentDetails struct {
	PaymentDate      *string          `json:"paymentDate,omitempty" validate:"-"`
	PaymentMethod    *PaymentMethod   `json:"paymentMethod,omitempty" validate:"omitempty,oneof=cash bank_transfer card cheque other"`
	PaymentReference *string          `json:"paymentReference,omitempty" validate:"omitempty,max=100"`
	PaymentAmount    *decimal.Decimal `json:"paymentAmount,omitempty" validate:"-"`
	Notes            *string          `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// StatusChange is the data a caller persists after a legal transition.
// Only the fields relevant to the target status are set.
type StatusChange struct {
	PreviousStatus InvoiceStatus `json:"previousStatus"`
	NewStatus      InvoiceStatus `json:"newStatus"`
	UpdatedAt      time.Time     `json:"updatedAt"`

	SentAt      *time.Time `json:"sentAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	RefundedAt  *time.Time `json:"refundedAt,omitempty"`

	PaidAt           *time.Time     `json:"paidAt,omitempty"`
	PaymentMethod    *PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentReference *string        `json:"paymentReference,omitempty"`
	PaymentAmount    *int64         `json:"paymentAmount,omitempty"`
	PaymentNotes     *string        `json:"paymentNotes,omitempty"`
}

// Invoice is the stored invoice record the status change is applied to.
type Invoice struct {
	InvoiceID     string        `json:"invoiceID"`
	UserID        string        `json:"userID"`
	InvoiceNumber string        `json:"invoiceNumber"`
	CustomerName  string        `json:"customerName"`
	Status        InvoiceStatus `json:"status"`
	IssueDate     time.Time     `json:"issueDate"`
	DueDate       time.Time     `json:"dueDate"`
	NetAmount     int64         `json:"netAmount"`
	VatAmount     int64         `json:"vatAmount"`
	TotalAmount   int64         `json:"totalAmount"`
	CurrencyCode  string        `json:"currencyCode"`

	SentAt           *time.Time     `json:"sentAt,omitempty"`
	PaidAt           *time.Time     `json:"paidAt,omitempty"`
	CancelledAt      *time.Time     `json:"cancelledAt,omitempty"`
	RefundedAt       *time.Time     `json:"refundedAt,omitempty"`
	PaymentMethod    *PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentReference *string        `json:"paymentReference,omitempty"`
	PaymentAmount    *int64         `json:"paymentAmount,omitempty"`
	PaymentNotes     *string        `json:"paymentNotes,omitempty"`
	AuditFields
}

// Apply copies a StatusChange onto the invoice, mirroring what the storage layer writes.
func (i *Invoice) Apply(change StatusChange) {
	i.Status = change.NewStatus
	i.UpdatedAt = change.UpdatedAt
	if change.SentAt != nil {
		i.SentAt = change.SentAt
	}
	if change.CancelledAt != nil {
		i.CancelledAt = change.CancelledAt
	}
	if change.RefundedAt != nil {
		i.RefundedAt = change.RefundedAt
	}
	if change.NewStatus == InvoiceStatusPaid {
		i.PaidAt = change.PaidAt
		i.PaymentMethod = change.PaymentMethod
		i.PaymentReference = change.PaymentReference
		i.PaymentAmount = change.PaymentAmount
		i.PaymentNotes = change.PaymentNotes
	}
}
