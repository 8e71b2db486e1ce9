package domain

// Account represents a financial account (bank account, credit card, cash)
// owned by a single user. All transactions belong to exactly one account.
type Account struct {
	AccountID string `json:"accountID"`
	UserID    string `json:"userID"`
	Name      string `json:"name"`
	AuditFields
}
