package dto

import (
	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	"github.com/FinRoots/finance_tracker_app/internal/utils/accounting"
)

// SummaryParams defines query parameters for the period summary.
// Absent bounds default to the trailing 30-day window ending today.
type SummaryParams struct {
	From      string `form:"from" binding:"omitempty,dateonly"`
	To        string `form:"to" binding:"omitempty,dateonly"`
	AccountID string `form:"accountId"`
}

// SummaryCategoryResponse is one entry of the ranked category breakdown.
type SummaryCategoryResponse struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// SummaryDayResponse is one day of the income/expense chart series.
type SummaryDayResponse struct {
	Date     string `json:"date"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
}

// SummaryResponse is the period summary consumed by the dashboard cards and
// charts. Field names and nesting are a compatibility contract with the
// existing consumers and must be preserved exactly.
type SummaryResponse struct {
	RemainingAmount int64                     `json:"remainingAmount"`
	RemainingChange float64                   `json:"remainingChange"`
	IncomeAmount    int64                     `json:"incomeAmount"`
	IncomeChange    float64                   `json:"incomeChange"`
	ExpensesAmount  int64                     `json:"expensesAmount"`
	ExpensesChange  float64                   `json:"expensesChange"`
	Categories      []SummaryCategoryResponse `json:"categories"`
	Days            []SummaryDayResponse      `json:"days"`
}

// ToSummaryResponse converts an accounting.Summary to the response DTO.
func ToSummaryResponse(s accounting.Summary) SummaryResponse {
	categories := make([]SummaryCategoryResponse, len(s.Categories))
	for i, c := range s.Categories {
		categories[i] = SummaryCategoryResponse{Name: c.Name, Value: c.Value}
	}
	days := make([]SummaryDayResponse, len(s.Days))
	for i, d := range s.Days {
		days[i] = SummaryDayResponse{
			Date:     d.Date.Format(domain.DateFormat),
			Income:   d.Income,
			Expenses: d.Expenses,
		}
	}
	return SummaryResponse{
		RemainingAmount: s.RemainingAmount,
		RemainingChange: s.RemainingChange,
		IncomeAmount:    s.IncomeAmount,
		IncomeChange:    s.IncomeChange,
		ExpensesAmount:  s.ExpensesAmount,
		ExpensesChange:  s.ExpensesChange,
		Categories:      categories,
		Days:            days,
	}
}
