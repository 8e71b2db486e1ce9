package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/FinRoots/finance_tracker_app/internal/core/ports/services"
	"github.com/FinRoots/finance_tracker_app/internal/dto"
	"github.com/FinRoots/finance_tracker_app/internal/middleware"
	"github.com/FinRoots/finance_tracker_app/internal/utils/accounting"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockSummaryService is a mock type for the SummarySvcFacade interface
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) GetSummary(ctx context.Context, userID string, params dto.SummaryParams) (*accounting.Summary, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.Summary), args.Error(1)
}

var _ portssvc.SummarySvcFacade = (*MockSummaryService)(nil)

type SummaryHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockSummaryService *MockSummaryService
	jwtSecret          string
}

func (suite *SummaryHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *SummaryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockSummaryService = new(MockSummaryService)
	v1 := suite.router.Group("/api/v1")
	registerSummaryRoutes(v1, suite.mockSummaryService)
}

func (suite *SummaryHandlerTestSuite) TestGetSummary_Success() {
	userID := uuid.NewString()
	summary := &accounting.Summary{
		RemainingAmount: 50000,
		RemainingChange: 25,
		IncomeAmount:    100000,
		IncomeChange:    10,
		ExpensesAmount:  -50000,
		ExpensesChange:  -5,
		Categories: []accounting.CategorySum{
			{Name: "Food", Value: 30000},
		},
		Days: []accounting.DailyPoint{
			{Date: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), Income: 100000, Expenses: 50000},
		},
	}

	suite.mockSummaryService.On("GetSummary", mock.Anything, userID, dto.SummaryParams{From: "2024-03-11", To: "2024-03-20"}).
		Return(summary, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?from=2024-03-11&to=2024-03-20", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	// Exact top-level field names are a contract with the dashboard.
	for _, field := range []string{
		"remainingAmount", "remainingChange",
		"incomeAmount", "incomeChange",
		"expensesAmount", "expensesChange",
		"categories", "days",
	} {
		suite.Contains(body, field)
	}

	var resp dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(50000), resp.RemainingAmount)
	suite.Equal(int64(-50000), resp.ExpensesAmount)
	suite.Require().Len(resp.Days, 1)
	suite.Equal("2024-03-11", resp.Days[0].Date)

	suite.mockSummaryService.AssertExpectations(suite.T())
}

func (suite *SummaryHandlerTestSuite) TestGetSummary_RequiresAuth() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSummaryService.AssertNotCalled(suite.T(), "GetSummary")
}

func (suite *SummaryHandlerTestSuite) TestGetSummary_RejectsMalformedDate() {
	registerCustomValidators()

	userID := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?from=11-03-2024", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSummaryService.AssertNotCalled(suite.T(), "GetSummary")
}

func TestSummaryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryHandlerTestSuite))
}
