package domain

// Category is a user-defined spending/income label. A transaction may
// reference at most one category; uncategorized transactions are allowed.
type Category struct {
	CategoryID string `json:"categoryID"`
	UserID     string `json:"userID"`
	Name       string `json:"name"`
	AuditFields
}
