package services

import (
	"context"

	"github.com/FinRoots/finance_tracker_app/internal/dto"
	"github.com/FinRoots/finance_tracker_app/internal/utils/accounting"
)

// SummarySvcFacade computes the dashboard period summary.
type SummarySvcFacade interface {
	// GetSummary aggregates the user's transactions over the requested
	// period (defaulted when absent), optionally restricted to one account.
	GetSummary(ctx context.Context, userID string, params dto.SummaryParams) (*accounting.Summary, error)
}
