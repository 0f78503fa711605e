package models

import "time"

// Invoice mirrors a row of the invoices table. Nullable columns are pointers.
type Invoice struct {
	InvoiceID     string
	UserID        string
	InvoiceNumber string
	CustomerName  string
	Status        string
	IssueDate     time.Time
	DueDate       time.Time
	NetAmount     int64
	VatAmount     int64
	TotalAmount   int64
	CurrencyCode  string

	SentAt           *time.Time
	PaidAt           *time.Time
	CancelledAt      *time.Time
	RefundedAt       *time.Time
	PaymentMethod    *string
	PaymentReference *string
	PaymentAmount    *int64
	PaymentNotes     *string
	AuditFields
}

// InvoiceStatusHistory mirrors a row of invoice_status_history.
type InvoiceStatusHistory struct {
	InvoiceID      string
	PreviousStatus string
	NewStatus      string
	ChangedAt      time.Time
}
