package services

import (
	"context"
	"time"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
)

// InvoiceTransitions describes what a user may do next with an invoice.
type InvoiceTransitions struct {
	Status            domain.InvoiceStatus   `json:"status"`
	ValidTransitions  []domain.InvoiceStatus `json:"validTransitions"`
	ValidEvents       []domain.InvoiceEvent  `json:"validEvents"`
	IsTerminal        bool                   `json:"isTerminal"`
	IsEditable        bool                   `json:"isEditable"`
	IsDeletable       bool                   `json:"isDeletable"`
	StatusDescription domain.LocalizedText   `json:"statusDescription"`
}

// OverdueSweepResult summarises one MarkOverdue run.
type OverdueSweepResult struct {
	Checked   int      `json:"checked"`
	Marked    []string `json:"marked"`
	Conflicts []string `json:"conflicts"`
}

// InvoiceReaderSvc defines read operations for invoices.
type InvoiceReaderSvc interface {
	GetInvoice(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error)
	GetTransitions(ctx context.Context, userID, invoiceID string) (*InvoiceTransitions, error)
}

// InvoiceStatusSvc moves invoices through their lifecycle.
type InvoiceStatusSvc interface {
	ChangeStatus(ctx context.Context, userID, invoiceID string, target domain.InvoiceStatus, expectedUpdatedAt *time.Time, details *domain.PaymentDetails) (*domain.Invoice, error)
	ApplyEvent(ctx context.Context, userID, invoiceID string, event domain.InvoiceEvent, expectedUpdatedAt *time.Time, details *domain.PaymentDetails) (*domain.Invoice, error)
	MarkOverdue(ctx context.Context, asOf time.Time) (*OverdueSweepResult, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceStatusSvc
}
