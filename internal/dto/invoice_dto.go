package dto

import (
	"time"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
	portssvc "github.com/SscSPs/uk_books_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// PaymentDetailsRequest is the optional payment payload of a move to paid.
// Field rules are enforced by the lifecycle so that every violation is reported at once.
type PaymentDetailsRequest struct {
	PaymentDate      *string          `json:"paymentDate,omitempty" example:"2025-05-01"`
	PaymentMethod    *string          `json:"paymentMethod,omitempty" example:"bank_transfer"`
	PaymentReference *string          `json:"paymentReference,omitempty"`
	PaymentAmount    *decimal.Decimal `json:"paymentAmount,omitempty" swaggertype:"number"`
	Notes            *string          `json:"notes,omitempty"`
}

// ToDomain converts the request into lifecycle input. A nil request stays nil.
func (r *PaymentDetailsRequest) ToDomain() *domain.PaymentDetails {
	if r == nil {
		return nil
	}
	details := &domain.PaymentDetails{
		PaymentDate:      r.PaymentDate,
		PaymentReference: r.PaymentReference,
		PaymentAmount:    r.PaymentAmount,
		Notes:            r.Notes,
	}
	if r.PaymentMethod != nil {
		method := domain.PaymentMethod(*r.PaymentMethod)
		details.PaymentMethod = &method
	}
	return details
}

// ChangeInvoiceStatusRequest moves an invoice straight to a target status.
// ExpectedUpdatedAt is the updatedAt the client last saw; a mismatch is answered with 409.
type ChangeInvoiceStatusRequest struct {
	Status            string                 `json:"status" binding:"required" example:"paid"`
	ExpectedUpdatedAt *time.Time             `json:"expectedUpdatedAt,omitempty"`
	PaymentDetails    *PaymentDetailsRequest `json:"paymentDetails,omitempty"`
}

// ApplyInvoiceEventRequest fires a named lifecycle event.
type ApplyInvoiceEventRequest struct {
	Event             string                 `json:"event" binding:"required" example:"mark_paid"`
	ExpectedUpdatedAt *time.Time             `json:"expectedUpdatedAt,omitempty"`
	PaymentDetails    *PaymentDetailsRequest `json:"paymentDetails,omitempty"`
}

// InvoiceResponse is the API view of an invoice.
type InvoiceResponse struct {
	InvoiceID        string     `json:"invoiceID"`
	UserID           string     `json:"userID"`
	InvoiceNumber    string     `json:"invoiceNumber"`
	CustomerName     string     `json:"customerName"`
	Status           string     `json:"status"`
	IssueDate        string     `json:"issueDate"`
	DueDate          string     `json:"dueDate"`
	NetAmount        int64      `json:"netAmount"`
	VatAmount        int64      `json:"vatAmount"`
	TotalAmount      int64      `json:"totalAmount"`
	CurrencyCode     string     `json:"currencyCode"`
	SentAt           *time.Time `json:"sentAt,omitempty"`
	PaidAt           *time.Time `json:"paidAt,omitempty"`
	CancelledAt      *time.Time `json:"cancelledAt,omitempty"`
	RefundedAt       *time.Time `json:"refundedAt,omitempty"`
	PaymentMethod    *string    `json:"paymentMethod,omitempty"`
	PaymentReference *string    `json:"paymentReference,omitempty"`
	PaymentAmount    *int64     `json:"paymentAmount,omitempty"`
	PaymentNotes     *string    `json:"paymentNotes,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// ToInvoiceResponse converts a domain invoice to its API view.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:        inv.InvoiceID,
		UserID:           inv.UserID,
		InvoiceNumber:    inv.InvoiceNumber,
		CustomerName:     inv.CustomerName,
		Status:           string(inv.Status),
		IssueDate:        inv.IssueDate.Format(domain.DateLayout),
		DueDate:          inv.DueDate.Format(domain.DateLayout),
		NetAmount:        inv.NetAmount,
		VatAmount:        inv.VatAmount,
		TotalAmount:      inv.TotalAmount,
		CurrencyCode:     inv.CurrencyCode,
		SentAt:           inv.SentAt,
		PaidAt:           inv.PaidAt,
		CancelledAt:      inv.CancelledAt,
		RefundedAt:       inv.RefundedAt,
		PaymentReference: inv.PaymentReference,
		PaymentAmount:    inv.PaymentAmount,
		PaymentNotes:     inv.PaymentNotes,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
	if inv.PaymentMethod != nil {
		method := string(*inv.PaymentMethod)
		resp.PaymentMethod = &method
	}
	return resp
}

// InvoiceTransitionsResponse tells a client which actions to offer for an invoice.
type InvoiceTransitionsResponse struct {
	Status                string            `json:"status"`
	ValidTransitions      []string          `json:"validTransitions"`
	ValidEvents           []string          `json:"validEvents"`
	IsTerminal            bool              `json:"isTerminal"`
	IsEditable            bool              `json:"isEditable"`
	IsDeletable           bool              `json:"isDeletable"`
	StatusDescription     map[string]string `json:"statusDescription"`
	StatusDescriptionText string            `json:"statusDescriptionText"`
}

// ToInvoiceTransitionsResponse converts the service view, picking locale for the convenience text.
func ToInvoiceTransitionsResponse(t *portssvc.InvoiceTransitions, locale string) InvoiceTransitionsResponse {
	resp := InvoiceTransitionsResponse{
		Status:                string(t.Status),
		ValidTransitions:      make([]string, len(t.ValidTransitions)),
		ValidEvents:           make([]string, len(t.ValidEvents)),
		IsTerminal:            t.IsTerminal,
		IsEditable:            t.IsEditable,
		IsDeletable:           t.IsDeletable,
		StatusDescription:     t.StatusDescription,
		StatusDescriptionText: t.StatusDescription[locale],
	}
	for i, s := range t.ValidTransitions {
		resp.ValidTransitions[i] = string(s)
	}
	for i, e := range t.ValidEvents {
		resp.ValidEvents[i] = string(e)
	}
	return resp
}
