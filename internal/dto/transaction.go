package dto

import (
	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to create a transaction.
// Amount is in miliunits (signed; negative = expense). Date uses the
// canonical "2006-01-02" encoding.
type CreateTransactionRequest struct {
	AccountID  string `json:"accountId" binding:"required"`
	CategoryID string `json:"categoryId"`
	Date       string `json:"date" binding:"required,dateonly"`
	Amount     int64  `json:"amount"`
	Payee      string `json:"payee" binding:"required"`
	Notes      string `json:"notes"`
}

// UpdateTransactionRequest defines the data allowed for updating a
// transaction. Pointers distinguish omitted fields from zero values; an
// empty-string CategoryID clears the category.
type UpdateTransactionRequest struct {
	AccountID  *string `json:"accountId"`
	CategoryID *string `json:"categoryId"`
	Date       *string `json:"date" binding:"omitempty,dateonly"`
	Amount     *int64  `json:"amount"`
	Payee      *string `json:"payee"`
	Notes      *string `json:"notes"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	From      string `form:"from" binding:"omitempty,dateonly"`
	To        string `form:"to" binding:"omitempty,dateonly"`
	AccountID string `form:"accountId"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string `json:"transactionID"`
	AccountID     string `json:"accountId"`
	CategoryID    string `json:"categoryId,omitempty"`
	Category      string `json:"category,omitempty"`
	Date          string `json:"date"`
	Amount        int64  `json:"amount"`
	Payee         string `json:"payee"`
	Notes         string `json:"notes,omitempty"`
}

// BulkCreateTransactionsRequest carries a batch of transactions to insert.
type BulkCreateTransactionsRequest struct {
	Transactions []CreateTransactionRequest `json:"transactions" binding:"required,min=1,dive"`
}

// BulkCreateTransactionsResponse reports how many rows were inserted.
type BulkCreateTransactionsResponse struct {
	CreatedCount int `json:"createdCount"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		CategoryID:    txn.CategoryID,
		Category:      txn.CategoryName,
		Date:          txn.Date.Format(domain.DateFormat),
		Amount:        txn.Amount,
		Payee:         txn.Payee,
		Notes:         txn.Notes,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
