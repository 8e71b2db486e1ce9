package dto_test

import (
	"testing"

	"github.com/FinRoots/finance_tracker_app/internal/apperrors"
	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	"github.com/FinRoots/finance_tracker_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestImportRequestColumnMapping(t *testing.T) {
	req := dto.ImportTransactionsRequest{
		Mapping: map[string]*string{
			"column_0": strPtr(domain.FieldDate),
			"column_1": strPtr(domain.FieldAmount),
			"column_2": nil,
			"column_3": strPtr(domain.FieldSkip),
			"column_4": strPtr(domain.FieldPayee),
		},
	}

	m, err := req.ColumnMapping()
	require.NoError(t, err)

	assert.Equal(t, domain.FieldDate, m.FieldFor(0))
	assert.Equal(t, domain.FieldAmount, m.FieldFor(1))
	assert.Equal(t, "", m.FieldFor(2))
	assert.Equal(t, "", m.FieldFor(3))
	assert.Equal(t, domain.FieldPayee, m.FieldFor(4))
}

func TestImportRequestColumnMapping_RejectsDuplicateField(t *testing.T) {
	req := dto.ImportTransactionsRequest{
		Mapping: map[string]*string{
			"column_0": strPtr(domain.FieldAmount),
			"column_1": strPtr(domain.FieldAmount),
		},
	}

	_, err := req.ColumnMapping()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
