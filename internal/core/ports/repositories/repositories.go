package repositories

import (
	"context"
	"time"

	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
)

// UserRepository defines persistence operations for Users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string, now time.Time) error
}

// AccountRepository defines persistence operations for Accounts.
// All reads and writes are scoped to the owning user.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error)
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccounts(ctx context.Context, accountIDs []string, userID string) (int64, error)
}

// CategoryRepository defines persistence operations for Categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string, userID string) (*domain.Category, error)
	ListCategoriesByUser(ctx context.Context, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategories(ctx context.Context, categoryIDs []string, userID string) (int64, error)
}

// TransactionRepository defines persistence operations for Transactions.
// Reads resolve the category name via join; ownership is enforced through
// the account relation. SaveTransactions persists a batch atomically.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	SaveTransactions(ctx context.Context, txns []domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, period domain.Period, accountID string) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction, userID string) error
	DeleteTransactions(ctx context.Context, transactionIDs []string, userID string) (int64, error)
}

// RepositoryProvider bundles all repositories for dependency injection.
type RepositoryProvider struct {
	UserRepo        UserRepository
	AccountRepo     AccountRepository
	CategoryRepo    CategoryRepository
	TransactionRepo TransactionRepository
}
