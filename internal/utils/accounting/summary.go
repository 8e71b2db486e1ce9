// Package accounting holds the pure aggregation math behind the period
// summary: sign-partitioned totals, percentage deltas against the prior
// period, category ranking with an overflow bucket, and the gap-filled daily
// series. Everything here is side-effect free and operates on in-memory
// transaction slices; callers are responsible for scoping the input to one
// user and (optionally) one account.
package accounting

import (
	"sort"
	"time"

	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
)

// topCategoryCount is how many category groups are reported verbatim before
// the remainder collapses into the synthetic "Other" bucket.
const topCategoryCount = 3

// OtherCategoryName labels the overflow bucket.
const OtherCategoryName = "Other"

// CategorySum is one category's total absolute expense volume in a period.
type CategorySum struct {
	Name  string
	Value int64
}

// DailyPoint is one calendar day's income and expense volume. Expenses are
// reported as a positive magnitude here (chart-friendly), unlike the signed
// period totals.
type DailyPoint struct {
	Date     time.Time
	Income   int64
	Expenses int64
}

// Summary aggregates a period's totals, their deltas against the prior
// period, the category ranking and the daily series.
type Summary struct {
	RemainingAmount int64
	RemainingChange float64
	IncomeAmount    int64
	IncomeChange    float64
	ExpensesAmount  int64 // signed sum of negative amounts, stays negative
	ExpensesChange  float64
	Categories      []CategorySum
	Days            []DailyPoint
}

// PercentageChange computes the relative delta between two totals.
// A move from zero is reported as a full +100% swing rather than infinity;
// zero to zero is no change.
func PercentageChange(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return 100 * float64(current-previous) / float64(previous)
}

// periodTotals sums a window sign-partitioned: income keeps amounts >= 0,
// expenses keeps amounts < 0 (signed), remaining is the net.
type periodTotals struct {
	income    int64
	expenses  int64
	remaining int64
}

func totalsFor(txns []domain.Transaction, period domain.Period) periodTotals {
	var t periodTotals
	for _, txn := range txns {
		if !period.Contains(txn.Date) {
			continue
		}
		if txn.Amount >= 0 {
			t.income += txn.Amount
		} else {
			t.expenses += txn.Amount
		}
		t.remaining += txn.Amount
	}
	return t
}

// Summarize computes the full period summary for the given transactions.
// The input may cover a wider date range than the period; transactions
// outside [prior.From, period.To] are ignored. It performs no I/O and
// returns a fresh result on every call.
func Summarize(txns []domain.Transaction, period domain.Period) Summary {
	prior := period.Prior()

	current := totalsFor(txns, period)
	previous := totalsFor(txns, prior)

	return Summary{
		RemainingAmount: current.remaining,
		RemainingChange: PercentageChange(current.remaining, previous.remaining),
		IncomeAmount:    current.income,
		IncomeChange:    PercentageChange(current.income, previous.income),
		ExpensesAmount:  current.expenses,
		ExpensesChange:  PercentageChange(current.expenses, previous.expenses),
		Categories:      RankCategories(txns, period),
		Days:            DailySeries(txns, period),
	}
}

// RankCategories groups the period's expense transactions by category name,
// sums absolute values per group, and returns the top groups by volume with
// everything beyond the cutoff folded into the "Other" bucket. Uncategorized
// expenses are skipped. Ties at a rank boundary keep the order in which the
// categories first appear in the input (stable sort).
func RankCategories(txns []domain.Transaction, period domain.Period) []CategorySum {
	sums := make(map[string]int64)
	order := make([]string, 0)
	for _, txn := range txns {
		if !txn.IsExpense() || txn.CategoryName == "" || !period.Contains(txn.Date) {
			continue
		}
		if _, seen := sums[txn.CategoryName]; !seen {
			order = append(order, txn.CategoryName)
		}
		sums[txn.CategoryName] += -txn.Amount
	}

	ranked := make([]CategorySum, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, CategorySum{Name: name, Value: sums[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	if len(ranked) <= topCategoryCount {
		return ranked
	}

	top := ranked[:topCategoryCount:topCategoryCount]
	var otherSum int64
	for _, c := range ranked[topCategoryCount:] {
		otherSum += c.Value
	}
	return append(top, CategorySum{Name: OtherCategoryName, Value: otherSum})
}

// DailySeries produces one point per calendar day of the period in
// chronological order, zero-filled for days without activity. Daily income
// counts strictly positive amounts; daily expenses are the absolute value of
// negative amounts. When the whole period has no transactions at all the
// series is empty, not a run of synthetic zero days.
func DailySeries(txns []domain.Transaction, period domain.Period) []DailyPoint {
	byDay := make(map[time.Time]DailyPoint)
	for _, txn := range txns {
		if !period.Contains(txn.Date) {
			continue
		}
		day := time.Date(txn.Date.Year(), txn.Date.Month(), txn.Date.Day(), 0, 0, 0, 0, time.UTC)
		point := byDay[day]
		point.Date = day
		if txn.Amount > 0 {
			point.Income += txn.Amount
		} else {
			point.Expenses += -txn.Amount
		}
		byDay[day] = point
	}

	if len(byDay) == 0 {
		return []DailyPoint{}
	}

	series := make([]DailyPoint, 0, period.Days())
	for day := period.From; !day.After(period.To); day = day.AddDate(0, 0, 1) {
		if point, ok := byDay[day]; ok {
			series = append(series, point)
		} else {
			series = append(series, DailyPoint{Date: day})
		}
	}
	return series
}
