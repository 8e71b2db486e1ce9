package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/FinRoots/finance_tracker_app/internal/apperrors"
	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/FinRoots/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/FinRoots/finance_tracker_app/internal/core/ports/services"
	"github.com/FinRoots/finance_tracker_app/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountRepository
	categoryRepo    portsrepo.CategoryRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactionRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountRepository, categoryRepo portsrepo.CategoryRepository) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// buildTransaction validates references and assembles a domain transaction
// from a create request. Ownership of the account (and category, when set) is
// checked so a user cannot attach rows to someone else's account.
func (s *transactionService) buildTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest, now time.Time) (domain.Transaction, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID, userID); err != nil {
		return domain.Transaction{}, fmt.Errorf("account %s: %w", req.AccountID, err)
	}
	if req.CategoryID != "" {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID, userID); err != nil {
			return domain.Transaction{}, fmt.Errorf("category %s: %w", req.CategoryID, err)
		}
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}

	return domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     req.AccountID,
		CategoryID:    req.CategoryID,
		Date:          date,
		Amount:        req.Amount,
		Payee:         req.Payee,
		Notes:         req.Notes,
		AuditFields:   newAuditFields(userID, now),
	}, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.buildTransaction(ctx, userID, req, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID, userID)
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	period, err := domain.ParsePeriod(params.From, params.To, time.Now())
	if err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, userID, period, params.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}

	if req.AccountID != nil && *req.AccountID != txn.AccountID {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.AccountID, userID); err != nil {
			return nil, fmt.Errorf("account %s: %w", *req.AccountID, err)
		}
		txn.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		// Empty string clears the category.
		if *req.CategoryID != "" && *req.CategoryID != txn.CategoryID {
			if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID, userID); err != nil {
				return nil, fmt.Errorf("category %s: %w", *req.CategoryID, err)
			}
		}
		txn.CategoryID = *req.CategoryID
		txn.CategoryName = ""
	}
	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", *req.Date, apperrors.ErrValidation)
		}
		txn.Date = date
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Payee != nil {
		txn.Payee = *req.Payee
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn, userID); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	deleted, err := s.transactionRepo.DeleteTransactions(ctx, []string{transactionID}, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if deleted == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *transactionService) BulkCreateTransactions(ctx context.Context, userID string, reqs []dto.CreateTransactionRequest) (int, error) {
	now := time.Now()
	txns := make([]domain.Transaction, 0, len(reqs))
	for i, req := range reqs {
		txn, err := s.buildTransaction(ctx, userID, req, now)
		if err != nil {
			return 0, fmt.Errorf("transaction %d: %w", i, err)
		}
		txns = append(txns, txn)
	}

	if err := s.transactionRepo.SaveTransactions(ctx, txns); err != nil {
		s.LogError(ctx, err, "Failed to bulk create transactions", slog.Int("count", len(txns)))
		return 0, fmt.Errorf("failed to save transactions: %w", err)
	}

	s.LogInfo(ctx, "Transactions created", slog.Int("count", len(txns)))
	return len(txns), nil
}

func (s *transactionService) BulkDeleteTransactions(ctx context.Context, userID string, transactionIDs []string) (int64, error) {
	deleted, err := s.transactionRepo.DeleteTransactions(ctx, transactionIDs, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to bulk delete transactions", slog.Int("requested", len(transactionIDs)))
		return 0, fmt.Errorf("failed to delete transactions: %w", err)
	}
	s.LogInfo(ctx, "Transactions deleted", slog.Int64("deleted", deleted))
	return deleted, nil
}
