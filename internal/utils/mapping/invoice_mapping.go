package mapping

import (
	"github.com/SscSPs/uk_books_app/internal/core/domain"
	"github.com/SscSPs/uk_books_app/internal/models"
)

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	inv := domain.Invoice{
		InvoiceID:        m.InvoiceID,
		UserID:           m.UserID,
		InvoiceNumber:    m.InvoiceNumber,
		CustomerName:     m.CustomerName,
		Status:           domain.InvoiceStatus(m.Status),
		IssueDate:        m.IssueDate,
		DueDate:          m.DueDate,
		NetAmount:        m.NetAmount,
		VatAmount:        m.VatAmount,
		TotalAmount:      m.TotalAmount,
		CurrencyCode:     m.CurrencyCode,
		SentAt:           m.SentAt,
		PaidAt:           m.PaidAt,
		CancelledAt:      m.CancelledAt,
		RefundedAt:       m.RefundedAt,
		PaymentReference: m.PaymentReference,
		PaymentAmount:    m.PaymentAmount,
		PaymentNotes:     m.PaymentNotes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	if m.PaymentMethod != nil {
		method := domain.PaymentMethod(*m.PaymentMethod)
		inv.PaymentMethod = &method
	}
	return inv
}

// ToModelStatusHistory converts a domain StatusChange into the history row it produces.
func ToModelStatusHistory(invoiceID string, c domain.StatusChange) models.InvoiceStatusHistory {
	return models.InvoiceStatusHistory{
		InvoiceID:      invoiceID,
		PreviousStatus: string(c.PreviousStatus),
		NewStatus:      string(c.NewStatus),
		ChangedAt:      c.UpdatedAt,
	}
}
