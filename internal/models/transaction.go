package models

import (
	"database/sql"
	"time"
)

// Transaction represents a transaction row in the database.
// Amount is stored as a BIGINT in miliunits; CategoryID is nullable.
// CategoryName is populated only by queries joining the categories table.
type Transaction struct {
	TransactionID string         `json:"transactionID" db:"transaction_id"`
	AccountID     string         `json:"accountID" db:"account_id"`
	CategoryID    sql.NullString `json:"categoryID" db:"category_id"`
	CategoryName  sql.NullString `json:"categoryName" db:"category_name"`
	Date          time.Time      `json:"date" db:"date"`
	Amount        int64          `json:"amount" db:"amount"`
	Payee         string         `json:"payee" db:"payee"`
	Notes         sql.NullString `json:"notes" db:"notes"`
	AuditFields
}
