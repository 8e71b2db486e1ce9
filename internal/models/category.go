package models

// Category represents a category row in the database.
type Category struct {
	CategoryID string `json:"categoryID" db:"category_id"`
	UserID     string `json:"userID" db:"user_id"`
	Name       string `json:"name" db:"name"`
	AuditFields
}
