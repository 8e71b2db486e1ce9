package domain

import (
	"fmt"
	"time"

	"github.com/FinRoots/finance_tracker_app/internal/apperrors"
)

// ImportDateFormat is the fixed source format import date cells must match.
const ImportDateFormat = "2006-01-02 15:04:05"

// FieldSkip is the sentinel a user picks to leave a column unmapped.
const FieldSkip = "skip"

// Semantic fields a raw import column can be assigned to.
const (
	FieldAmount = "amount"
	FieldDate   = "date"
	FieldPayee  = "payee"
	FieldNotes  = "notes"
)

// RequiredImportFields must all be assigned before an import is submittable.
var RequiredImportFields = []string{FieldAmount, FieldDate, FieldPayee}

// importFields is the closed set of assignable fields.
var importFields = map[string]bool{
	FieldAmount: true,
	FieldDate:   true,
	FieldPayee:  true,
	FieldNotes:  true,
}

// RawGrid is a spreadsheet-like grid of strings as uploaded by the user.
// The first row of the file is Headers; every later row is Body. Rows
// shorter or longer than Headers are tolerated by positional mapping.
type RawGrid struct {
	Headers []string   `json:"headers"`
	Body    [][]string `json:"body"`
}

// TransactionDraft is one normalized row of a tabular import, ready to be
// attached to an account and persisted.
type TransactionDraft struct {
	Payee  string `json:"payee"`
	Amount int64  `json:"amount"` // miliunits
	Date   string `json:"date"`   // canonical "2006-01-02"
	Notes  string `json:"notes,omitempty"`
}

// ColumnMapping is the user-authored assignment of raw grid columns to
// semantic transaction fields. Keys are synthetic column keys
// ("column_<index>"); an absent key means the column is unmapped.
//
// The value is immutable: Assign returns a new mapping so the
// one-field-one-column invariant is enforced in a single place.
type ColumnMapping map[string]string

// ColumnKey builds the synthetic key for a column index.
func ColumnKey(index int) string {
	return fmt.Sprintf("column_%d", index)
}

// NewColumnMapping validates a client-submitted mapping wholesale. Unlike
// Assign, which resolves a conflict interactively by clearing the previous
// holder, a submitted mapping that puts the same field on two columns is
// ambiguous and rejected. Skip and empty values leave columns unmapped.
func NewColumnMapping(wire map[string]string) (ColumnMapping, error) {
	m := make(ColumnMapping, len(wire))
	holder := make(map[string]string, len(wire))
	for key, field := range wire {
		if field == "" || field == FieldSkip {
			continue
		}
		if !importFields[field] {
			return nil, fmt.Errorf("unknown import field %q: %w", field, apperrors.ErrValidation)
		}
		if other, taken := holder[field]; taken {
			return nil, fmt.Errorf("field %q assigned to both %s and %s: %w", field, other, key, apperrors.ErrValidation)
		}
		holder[field] = key
		m[key] = field
	}
	return m, nil
}

// Assign maps the given column to field and returns the resulting mapping.
// The receiver is not modified. Assigning a field already held by another
// column silently clears that column first. The FieldSkip sentinel (or an
// empty field) unmaps the column. Reapplying the same assignment is a no-op.
func (m ColumnMapping) Assign(columnIndex int, field string) (ColumnMapping, error) {
	if field != "" && field != FieldSkip && !importFields[field] {
		return nil, fmt.Errorf("unknown import field %q: %w", field, apperrors.ErrValidation)
	}

	next := make(ColumnMapping, len(m)+1)
	for k, v := range m {
		next[k] = v
	}

	if field == FieldSkip {
		field = ""
	}
	if field != "" {
		// One field maps to at most one column at a time.
		for k, v := range next {
			if v == field {
				delete(next, k)
			}
		}
	}

	key := ColumnKey(columnIndex)
	if field == "" {
		delete(next, key)
	} else {
		next[key] = field
	}
	return next, nil
}

// FieldFor returns the field mapped to the given column, or "" if unmapped.
func (m ColumnMapping) FieldFor(columnIndex int) string {
	return m[ColumnKey(columnIndex)]
}

// Progress returns how many of the required fields are currently assigned,
// together with the required total. This backs the UI progress indicator.
func (m ColumnMapping) Progress() (assigned, total int) {
	mapped := make(map[string]bool, len(m))
	for _, field := range m {
		mapped[field] = true
	}
	for _, field := range RequiredImportFields {
		if mapped[field] {
			assigned++
		}
	}
	return assigned, len(RequiredImportFields)
}

// Ready reports whether every required field is assigned to some column.
func (m ColumnMapping) Ready() bool {
	assigned, total := m.Progress()
	return assigned == total
}

// TransformGrid reshapes the selected rows of grid into normalized
// transaction drafts according to mapping.
//
// Cells of unmapped columns are discarded; rows whose retained cells are all
// absent carry no information and are dropped. Amounts are converted to
// miliunits and dates reparsed from ImportDateFormat to the canonical
// DateFormat. Any malformed amount or date fails the whole batch: the caller
// decides between "no rows imported" and "skip and report", the transform
// itself never coerces a bad cell to a default.
func TransformGrid(grid RawGrid, mapping ColumnMapping) ([]TransactionDraft, error) {
	fields := make([]string, len(grid.Headers))
	for i := range grid.Headers {
		fields[i] = mapping.FieldFor(i)
	}

	drafts := make([]TransactionDraft, 0, len(grid.Body))
	for rowIdx, row := range grid.Body {
		record := make(map[string]string, len(fields))
		for col, field := range fields {
			if field == "" || col >= len(row) {
				continue
			}
			record[field] = row[col]
		}
		if len(record) == 0 {
			// Fully unmapped row, nothing to import.
			continue
		}

		amount, err := ParseAmountToMiliunits(record[FieldAmount])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowIdx, err)
		}
		date, err := parseImportDate(record[FieldDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowIdx, err)
		}

		drafts = append(drafts, TransactionDraft{
			Payee:  record[FieldPayee],
			Amount: amount,
			Date:   date,
			Notes:  record[FieldNotes],
		})
	}
	return drafts, nil
}

// parseImportDate reparses a source-format date cell to the canonical
// date-only encoding, discarding the time component.
func parseImportDate(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("empty date: %w", apperrors.ErrParse)
	}
	t, err := time.Parse(ImportDateFormat, raw)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, want %q: %w", raw, ImportDateFormat, apperrors.ErrParse)
	}
	return t.Format(DateFormat), nil
}
