package dto

import (
	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
)

// ImportTransactionsRequest submits a mapped grid for import. The mapping
// uses the synthetic "column_<index>" keys; a null or "skip" value leaves
// the column unmapped.
type ImportTransactionsRequest struct {
	AccountID string             `json:"accountId" binding:"required"`
	Headers   []string           `json:"headers" binding:"required"`
	Body      [][]string         `json:"body" binding:"required"`
	Mapping   map[string]*string `json:"mapping" binding:"required"`
}

// Grid assembles the raw grid from the request.
func (r ImportTransactionsRequest) Grid() domain.RawGrid {
	return domain.RawGrid{Headers: r.Headers, Body: r.Body}
}

// ColumnMapping converts the wire mapping (nullable values) into the domain
// mapping, where unmapped columns are simply absent. A mapping that assigns
// one field to several columns, or names an unknown field, is rejected.
func (r ImportTransactionsRequest) ColumnMapping() (domain.ColumnMapping, error) {
	wire := make(map[string]string, len(r.Mapping))
	for key, field := range r.Mapping {
		if field == nil {
			continue
		}
		wire[key] = *field
	}
	return domain.NewColumnMapping(wire)
}

// ImportTransactionsResponse reports the outcome of a submitted import.
type ImportTransactionsResponse struct {
	ImportedCount int `json:"importedCount"`
}

// ParsedGridResponse returns the grid extracted from an uploaded CSV file,
// ready for interactive column mapping.
type ParsedGridResponse struct {
	Headers []string   `json:"headers"`
	Body    [][]string `json:"body"`
}
