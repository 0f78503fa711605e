package mapping

import (
	"github.com/SscSPs/uk_books_app/internal/core/domain"
	"github.com/SscSPs/uk_books_app/internal/models"
)

// ToDomainLedgerEntry converts a model Transaction to a domain LedgerEntry
func ToDomainLedgerEntry(m models.Transaction) domain.LedgerEntry {
	e := domain.LedgerEntry{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		Type:            domain.TransactionType(m.Type),
		Status:          domain.TransactionStatus(m.Status),
		TransactionDate: m.TransactionDate,
		Amount:          m.Amount,
		VatRate:         m.VatRate,
		VatAmount:       m.VatAmount,
		TotalAmount:     m.TotalAmount,
	}
	if m.CategoryID.Valid {
		id := m.CategoryID.String
		e.CategoryID = &id
	}
	return e
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:    m.CategoryID,
		Code:          m.Code,
		Name:          m.Name,
		NameLocalized: m.NameLocalized,
		Type:          domain.TransactionType(m.Type),
	}
}
