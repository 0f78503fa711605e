package domain

import "time"

// TransactionType separates sales (output VAT) from purchases (input VAT).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionStatus is the ledger status of an entry. Void entries never count towards VAT.
type TransactionStatus string

const (
	TransactionStatusActive     TransactionStatus = "active"
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusReconciled TransactionStatus = "reconciled"
	TransactionStatusVoid       TransactionStatus = "void"
)

// LedgerEntry is one read-only ledger row. Money is in minor units and
// Amount + VatAmount == TotalAmount holds by construction.
type LedgerEntry struct {
	TransactionID   string            `json:"transactionID"`
	UserID          string            `json:"userID"`
	Type            TransactionType   `json:"type"`
	Status          TransactionStatus `json:"status"`
	TransactionDate time.Time         `json:"transactionDate"`
	Amount          int64             `json:"amount"`
	VatRate         int64             `json:"vatRate"` // basis points, 2000 = 20%
	VatAmount       int64             `json:"vatAmount"`
	TotalAmount     int64             `json:"totalAmount"`
	CategoryID      *string           `json:"categoryID,omitempty"`
}

// LedgerFilter is what the ledger query is asked for. DateFrom and DateTo are inclusive calendar dates.
type LedgerFilter struct {
	UserID           string
	Type             *TransactionType
	ExcludedStatuses []TransactionStatus
	DateFrom         time.Time
	DateTo           time.Time
}

// Category is an income/expense category with an English and a localized name.
type Category struct {
	CategoryID    string          `json:"categoryID"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	NameLocalized string          `json:"nameLocalized"`
	Type          TransactionType `json:"type"`
}
