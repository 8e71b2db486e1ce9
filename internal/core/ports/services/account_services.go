package services

import (
	"context"

	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	"github.com/FinRoots/finance_tracker_app/internal/dto"
)

// AccountSvcFacade defines the account management operations.
// Every operation is scoped to the calling user.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID string) error
	BulkDeleteAccounts(ctx context.Context, userID string, accountIDs []string) (int64, error)
}
