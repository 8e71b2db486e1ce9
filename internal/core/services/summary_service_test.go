package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/FinRoots/finance_tracker_app/internal/apperrors"
	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	portssvc "github.com/FinRoots/finance_tracker_app/internal/core/ports/services"
	"github.com/FinRoots/finance_tracker_app/internal/core/services"
	"github.com/FinRoots/finance_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     portssvc.SummarySvcFacade
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewSummaryService(suite.mockTxnRepo)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *SummaryServiceTestSuite) TestGetSummary_FetchesSpanCoveringPriorPeriod() {
	ctx := context.Background()
	userID := uuid.NewString()
	params := dto.SummaryParams{From: "2024-03-11", To: "2024-03-20"}

	// The repo must be asked for both windows at once: the ten requested
	// days plus the ten prior days.
	expectedSpan := domain.Period{From: date(2024, 3, 1), To: date(2024, 3, 20)}
	txns := []domain.Transaction{
		{Date: date(2024, 3, 12), Amount: 100000},
		{Date: date(2024, 3, 15), Amount: -40000, CategoryName: "Food"},
		{Date: date(2024, 3, 5), Amount: 50000},
	}
	suite.mockTxnRepo.On("ListTransactions", ctx, userID, expectedSpan, "").Return(txns, nil).Once()

	summary, err := suite.service.GetSummary(ctx, userID, params)

	suite.Require().NoError(err)
	suite.Equal(int64(100000), summary.IncomeAmount)
	suite.Equal(int64(-40000), summary.ExpensesAmount)
	suite.Equal(int64(60000), summary.RemainingAmount)
	suite.Len(suite.mockTxnRepo.Calls, 1)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestGetSummary_PassesAccountFilter() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	params := dto.SummaryParams{From: "2024-03-11", To: "2024-03-20", AccountID: accountID}

	suite.mockTxnRepo.On("ListTransactions", ctx, userID, mock.AnythingOfType("domain.Period"), accountID).
		Return([]domain.Transaction{}, nil).Once()

	summary, err := suite.service.GetSummary(ctx, userID, params)

	suite.Require().NoError(err)
	suite.Zero(summary.IncomeAmount)
	suite.Empty(summary.Days)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestGetSummary_InvalidRange() {
	ctx := context.Background()

	_, err := suite.service.GetSummary(ctx, uuid.NewString(), dto.SummaryParams{From: "2024-03-20", To: "2024-03-11"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *SummaryServiceTestSuite) TestGetSummary_DefaultsWindowWhenBoundsAbsent() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockTxnRepo.On("ListTransactions", ctx, userID, mock.MatchedBy(func(p domain.Period) bool {
		// 31-day window plus the equal-length prior window.
		return p.Days() == 62
	}), "").Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.GetSummary(ctx, userID, dto.SummaryParams{})

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
