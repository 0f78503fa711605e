package models

import (
	"database/sql"
	"time"
)

// Transaction mirrors the ledger columns of the transactions table that VAT reporting reads.
type Transaction struct {
	TransactionID   string
	UserID          string
	Type            string
	Status          string
	TransactionDate time.Time
	Amount          int64
	VatRate         int64
	VatAmount       int64
	TotalAmount     int64
	CategoryID      sql.NullString
}

// Category mirrors a row of the categories table.
type Category struct {
	CategoryID    string
	UserID        sql.NullString // NULL for system categories
	Code          string
	Name          string
	NameLocalized string
	Type          string
}
