package accounting_test

import (
	"testing"
	"time"

	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	"github.com/FinRoots/finance_tracker_app/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustPeriod(t *testing.T, from, to time.Time) domain.Period {
	t.Helper()
	p, err := domain.NewPeriod(from, to)
	require.NoError(t, err)
	return p
}

func txn(date time.Time, amount int64, category string) domain.Transaction {
	return domain.Transaction{
		Date:         date,
		Amount:       amount,
		CategoryName: category,
	}
}

func TestPercentageChange(t *testing.T) {
	assert.Equal(t, float64(0), accounting.PercentageChange(0, 0))
	assert.Equal(t, float64(100), accounting.PercentageChange(500, 0))
	assert.Equal(t, float64(100), accounting.PercentageChange(-500, 0))
	assert.Equal(t, float64(50), accounting.PercentageChange(150, 100))
	assert.Equal(t, float64(-50), accounting.PercentageChange(50, 100))
	assert.Equal(t, float64(-100), accounting.PercentageChange(0, 100))
}

func TestSummarize_Totals(t *testing.T) {
	period := mustPeriod(t, day(2024, 3, 11), day(2024, 3, 20))
	txns := []domain.Transaction{
		txn(day(2024, 3, 12), 100000, ""),
		txn(day(2024, 3, 15), -40000, "Food"),
		txn(day(2024, 3, 18), -10000, "Transport"),
		// Prior period activity.
		txn(day(2024, 3, 5), 50000, ""),
		txn(day(2024, 3, 7), -25000, "Food"),
		// Outside both windows, ignored entirely.
		txn(day(2024, 2, 1), 999999, ""),
	}

	s := accounting.Summarize(txns, period)

	assert.Equal(t, int64(100000), s.IncomeAmount)
	assert.Equal(t, int64(-50000), s.ExpensesAmount)
	assert.Equal(t, int64(50000), s.RemainingAmount)
	// Remaining is always income plus (signed) expenses.
	assert.Equal(t, s.IncomeAmount+s.ExpensesAmount, s.RemainingAmount)

	assert.Equal(t, float64(100), s.IncomeChange)
	assert.Equal(t, float64(100), s.ExpensesChange)
	assert.Equal(t, float64(100), s.RemainingChange)
}

func TestSummarize_NoPriorActivity(t *testing.T) {
	period := mustPeriod(t, day(2024, 3, 11), day(2024, 3, 20))
	txns := []domain.Transaction{
		txn(day(2024, 3, 12), 30000, ""),
	}

	s := accounting.Summarize(txns, period)
	assert.Equal(t, float64(100), s.IncomeChange)
	assert.Equal(t, float64(0), s.ExpensesChange)
	assert.Equal(t, float64(100), s.RemainingChange)
}

func TestRankCategories_TopThreePlusOther(t *testing.T) {
	period := mustPeriod(t, day(2024, 3, 1), day(2024, 3, 31))
	txns := []domain.Transaction{
		txn(day(2024, 3, 1), -50000, "Rent"),
		txn(day(2024, 3, 2), -40000, "Food"),
		txn(day(2024, 3, 3), -30000, "Transport"),
		txn(day(2024, 3, 4), -20000, "Fun"),
		txn(day(2024, 3, 5), -10000, "Misc"),
	}

	ranked := accounting.RankCategories(txns, period)
	require.Len(t, ranked, 4)
	assert.Equal(t, accounting.CategorySum{Name: "Rent", Value: 50000}, ranked[0])
	assert.Equal(t, accounting.CategorySum{Name: "Food", Value: 40000}, ranked[1])
	assert.Equal(t, accounting.CategorySum{Name: "Transport", Value: 30000}, ranked[2])
	assert.Equal(t, accounting.CategorySum{Name: accounting.OtherCategoryName, Value: 30000}, ranked[3])
}

func TestRankCategories_ExactlyThreeNoOther(t *testing.T) {
	period := mustPeriod(t, day(2024, 3, 1), day(2024, 3, 31))
	txns := []domain.Transaction{
		txn(day(2024, 3, 1), -30000, "Rent"),
		txn(day(2024, 3, 2), -20000, "Food"),
		txn(day(2024, 3, 3), -10000, "Transport"),
	}

	ranked := accounting.RankCategories(txns, period)
	require.Len(t, ranked, 3)
	for _, c := range ranked {
		assert.NotEqual(t, accounting.OtherCategoryName, c.Name)
	}
}

func TestRankCategories_SkipsIncomeAndUncategorized(t *testing.T) {
	period := mustPeriod(t, day(2024, 3, 1), day(2024, 3, 31))
	txns := []domain.Transaction{
		txn(day(2024, 3, 1), 50000, "Salary"),
		txn(day(2024, 3, 2), -20000, ""),
		txn(day(2024, 3, 3), -15000, "Food"),
	}

	ranked := accounting.RankCategories(txns, period)
	require.Len(t, ranked, 1)
	assert.Equal(t, "Food", ranked[0].Name)
}

func TestRankCategories_TiesKeepFirstAppearanceOrder(t *testing.T) {
	period := mustPeriod(t, day(2024, 3, 1), day(2024, 3, 31))
	txns := []domain.Transaction{
		txn(day(2024, 3, 1), -10000, "Alpha"),
		txn(day(2024, 3, 2), -10000, "Beta"),
	}

	ranked := accounting.RankCategories(txns, period)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Alpha", ranked[0].Name)
	assert.Equal(t, "Beta", ranked[1].Name)
}

func TestRankCategories_GroupsAcrossTransactions(t *testing.T) {
	period := mustPeriod(t, day(2024, 3, 1), day(2024, 3, 31))
	txns := []domain.Transaction{
		txn(day(2024, 3, 1), -10000, "Food"),
		txn(day(2024, 3, 10), -5000, "Food"),
	}

	ranked := accounting.RankCategories(txns, period)
	require.Len(t, ranked, 1)
	assert.Equal(t, int64(15000), ranked[0].Value)
}

func TestDailySeries_ZeroFillsGaps(t *testing.T) {
	period := mustPeriod(t, day(2024, 3, 1), day(2024, 3, 5))
	txns := []domain.Transaction{
		txn(day(2024, 3, 1), 10000, ""),
		txn(day(2024, 3, 1), -2000, "Food"),
		txn(day(2024, 3, 4), -3000, "Food"),
	}

	series := accounting.DailySeries(txns, period)
	require.Len(t, series, 5)

	assert.Equal(t, day(2024, 3, 1), series[0].Date)
	assert.Equal(t, int64(10000), series[0].Income)
	assert.Equal(t, int64(2000), series[0].Expenses)

	// Untouched days come back zero-filled in order.
	for i, d := range []int{2, 3} {
		assert.Equal(t, day(2024, 3, d), series[i+1].Date)
		assert.Zero(t, series[i+1].Income)
		assert.Zero(t, series[i+1].Expenses)
	}

	assert.Equal(t, int64(3000), series[3].Expenses)
	assert.Equal(t, day(2024, 3, 5), series[4].Date)
}

func TestDailySeries_EmptyWhenNoActivity(t *testing.T) {
	period := mustPeriod(t, day(2024, 3, 1), day(2024, 3, 31))
	series := accounting.DailySeries(nil, period)
	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestDailySeries_ExpensesReportedAsMagnitude(t *testing.T) {
	period := mustPeriod(t, day(2024, 3, 1), day(2024, 3, 1))
	txns := []domain.Transaction{
		txn(day(2024, 3, 1), -7500, "Food"),
	}

	series := accounting.DailySeries(txns, period)
	require.Len(t, series, 1)
	assert.Equal(t, int64(7500), series[0].Expenses)
	assert.Zero(t, series[0].Income)
}
