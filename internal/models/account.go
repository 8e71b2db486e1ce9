package models

// Account represents an account row in the database.
type Account struct {
	AccountID string `json:"accountID" db:"account_id"`
	UserID    string `json:"userID" db:"user_id"`
	Name      string `json:"name" db:"name"`
	AuditFields
}
