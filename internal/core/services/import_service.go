package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/FinRoots/finance_tracker_app/internal/apperrors"
	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/FinRoots/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/FinRoots/finance_tracker_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// importService implements the ImportSvcFacade interface
type importService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountRepository
}

// NewImportService creates a new import service
func NewImportService(transactionRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountRepository) portssvc.ImportSvcFacade {
	return &importService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Ensure importService implements the ImportSvcFacade interface
var _ portssvc.ImportSvcFacade = (*importService)(nil)

func (s *importService) ParseCSV(r io.Reader) (domain.RawGrid, error) {
	reader := csv.NewReader(r)
	// Source files come out of spreadsheet exports with ragged rows; the
	// positional mapping tolerates them, so the reader should too.
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return domain.RawGrid{}, fmt.Errorf("empty file: %w", apperrors.ErrParse)
	}
	if err != nil {
		return domain.RawGrid{}, fmt.Errorf("failed to read csv header: %w", apperrors.ErrParse)
	}

	var body [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.RawGrid{}, fmt.Errorf("failed to read csv row: %w", apperrors.ErrParse)
		}
		body = append(body, row)
	}

	return domain.RawGrid{Headers: headers, Body: body}, nil
}

func (s *importService) Submit(ctx context.Context, userID, accountID string, grid domain.RawGrid, mapping domain.ColumnMapping) (int, error) {
	if !mapping.Ready() {
		assigned, total := mapping.Progress()
		return 0, fmt.Errorf("mapping incomplete, %d of %d required fields assigned: %w",
			assigned, total, apperrors.ErrValidation)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID, userID); err != nil {
		return 0, fmt.Errorf("account %s: %w", accountID, err)
	}

	drafts, err := domain.TransformGrid(grid, mapping)
	if err != nil {
		s.LogInfo(ctx, "Import rejected", slog.String("reason", err.Error()))
		return 0, err
	}
	if len(drafts) == 0 {
		return 0, nil
	}

	now := time.Now()
	txns := make([]domain.Transaction, len(drafts))
	for i, draft := range drafts {
		// Draft dates are already canonical, TransformGrid guarantees it.
		date, err := time.Parse(domain.DateFormat, draft.Date)
		if err != nil {
			return 0, fmt.Errorf("row %d date %q: %w", i, draft.Date, apperrors.ErrParse)
		}
		txns[i] = domain.Transaction{
			TransactionID: uuid.NewString(),
			AccountID:     accountID,
			Date:          date,
			Amount:        draft.Amount,
			Payee:         draft.Payee,
			Notes:         draft.Notes,
			AuditFields:   newAuditFields(userID, now),
		}
	}

	if err := s.transactionRepo.SaveTransactions(ctx, txns); err != nil {
		s.LogError(ctx, err, "Failed to persist imported transactions", slog.Int("count", len(txns)))
		return 0, fmt.Errorf("failed to persist imported transactions: %w", err)
	}

	s.LogInfo(ctx, "Import completed",
		slog.String("account_id", accountID),
		slog.Int("imported", len(txns)),
	)
	return len(txns), nil
}
