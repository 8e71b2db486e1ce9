package services

import (
	"context"
	"io"

	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
)

// ImportSvcFacade runs the tabular import pipeline: CSV parsing into a raw
// grid, and submission of a mapped grid as a batch of transactions.
type ImportSvcFacade interface {
	// ParseCSV reads an uploaded CSV stream into a raw grid (first row is
	// taken as headers).
	ParseCSV(r io.Reader) (domain.RawGrid, error)
	// Submit validates the mapping, transforms the grid and persists the
	// resulting transactions on the given account atomically. Returns the
	// number of imported rows.
	Submit(ctx context.Context, userID, accountID string, grid domain.RawGrid, mapping domain.ColumnMapping) (int, error)
}
