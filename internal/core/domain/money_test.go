package domain_test

import (
	"testing"

	"github.com/FinRoots/finance_tracker_app/internal/apperrors"
	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountToMiliunits(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{"12.3", 12300},
		{"-15.50", -15500},
		{"0", 0},
		{"100", 100000},
		{"0.001", 1},
		{"-0.001", -1},
		// Sub-miliunit precision rounds half away from zero.
		{"0.0005", 1},
		{"-0.0005", -1},
		{"0.0004", 0},
	}
	for _, tc := range cases {
		got, err := domain.ParseAmountToMiliunits(tc.raw)
		require.NoError(t, err, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}

func TestParseAmountToMiliunits_Malformed(t *testing.T) {
	for _, raw := range []string{"", "abc", "12,50", "1.2.3"} {
		_, err := domain.ParseAmountToMiliunits(raw)
		assert.ErrorIs(t, err, apperrors.ErrParse, "raw=%q", raw)
	}
}

func TestFormatMiliunits(t *testing.T) {
	assert.Equal(t, "12.30", domain.FormatMiliunits(12300))
	assert.Equal(t, "-15.50", domain.FormatMiliunits(-15500))
	assert.Equal(t, "0.00", domain.FormatMiliunits(0))
}

func TestMiliunitsRoundTrip(t *testing.T) {
	got, err := domain.ParseAmountToMiliunits("12.3")
	require.NoError(t, err)
	assert.Equal(t, "12.30", domain.FormatMiliunits(got))
}
