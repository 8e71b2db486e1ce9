package services

import (
	"context"
	"fmt"
	"time"

	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/FinRoots/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/FinRoots/finance_tracker_app/internal/core/ports/services"
	"github.com/FinRoots/finance_tracker_app/internal/dto"
	"github.com/FinRoots/finance_tracker_app/internal/utils/accounting"
)

// summaryService implements the SummarySvcFacade interface
type summaryService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
}

// NewSummaryService creates a new summary service
func NewSummaryService(transactionRepo portsrepo.TransactionRepository) portssvc.SummarySvcFacade {
	return &summaryService{transactionRepo: transactionRepo}
}

// Ensure summaryService implements the SummarySvcFacade interface
var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

func (s *summaryService) GetSummary(ctx context.Context, userID string, params dto.SummaryParams) (*accounting.Summary, error) {
	period, err := domain.ParsePeriod(params.From, params.To, time.Now())
	if err != nil {
		return nil, err
	}

	// One fetch covers both the requested period and the equal-length prior
	// period needed for the deltas.
	span := domain.Period{From: period.Prior().From, To: period.To}
	txns, err := s.transactionRepo.ListTransactions(ctx, userID, span, params.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary")
		return nil, fmt.Errorf("failed to load transactions for summary: %w", err)
	}

	summary := accounting.Summarize(txns, period)
	return &summary, nil
}
