package services

import (
	"context"

	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	"github.com/FinRoots/finance_tracker_app/internal/dto"
)

// TransactionSvcFacade defines the transaction management operations.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
	BulkCreateTransactions(ctx context.Context, userID string, reqs []dto.CreateTransactionRequest) (int, error)
	BulkDeleteTransactions(ctx context.Context, userID string, transactionIDs []string) (int64, error)
}
