package domain

import "time"

// Transaction is a single dated money movement on an account.
//
// Amount is stored in miliunits: a signed fixed-point integer with three
// implied decimal digits (12.34 -> 12340). Positive amounts are income,
// negative amounts are expenses. Date carries no time-of-day semantics and is
// normalized to UTC midnight.
type Transaction struct {
	TransactionID string    `json:"transactionID"` // Primary Key (UUID)
	AccountID     string    `json:"accountID"`     // FK -> Account (Not Null)
	CategoryID    string    `json:"categoryID"`    // FK -> Category, empty = uncategorized
	CategoryName  string    `json:"categoryName"`  // resolved by repository join, read-only
	Date          time.Time `json:"date"`
	Amount        int64     `json:"amount"` // miliunits
	Payee         string    `json:"payee"`
	Notes         string    `json:"notes"`
	AuditFields
}

// IsExpense reports whether the transaction is an expense (negative amount).
func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}
