package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/FinRoots/finance_tracker_app/internal/apperrors"
	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	portssvc "github.com/FinRoots/finance_tracker_app/internal/core/ports/services"
	"github.com/FinRoots/finance_tracker_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ImportServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.ImportSvcFacade
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewImportService(suite.mockTxnRepo, suite.mockAccountRepo)
}

func (suite *ImportServiceTestSuite) completeMapping() domain.ColumnMapping {
	m := domain.ColumnMapping{}
	m, _ = m.Assign(0, domain.FieldDate)
	m, _ = m.Assign(1, domain.FieldAmount)
	m, _ = m.Assign(2, domain.FieldPayee)
	return m
}

func (suite *ImportServiceTestSuite) TestParseCSV() {
	csvData := "Fecha,Importe,Comercio\n2024-01-02 10:00:00,-15.50,Coffee Shop\n2024-01-03 09:30:00,1200,Employer Inc\n"

	grid, err := suite.service.ParseCSV(strings.NewReader(csvData))

	suite.Require().NoError(err)
	suite.Equal([]string{"Fecha", "Importe", "Comercio"}, grid.Headers)
	suite.Require().Len(grid.Body, 2)
	suite.Equal([]string{"2024-01-02 10:00:00", "-15.50", "Coffee Shop"}, grid.Body[0])
}

func (suite *ImportServiceTestSuite) TestParseCSV_ToleratesRaggedRows() {
	csvData := "a,b,c\nonly-one\nx,y,z\n"

	grid, err := suite.service.ParseCSV(strings.NewReader(csvData))

	suite.Require().NoError(err)
	suite.Require().Len(grid.Body, 2)
	suite.Equal([]string{"only-one"}, grid.Body[0])
}

func (suite *ImportServiceTestSuite) TestParseCSV_EmptyFile() {
	_, err := suite.service.ParseCSV(strings.NewReader(""))
	suite.ErrorIs(err, apperrors.ErrParse)
}

func (suite *ImportServiceTestSuite) TestSubmit_PersistsNormalizedRows() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	grid := domain.RawGrid{
		Headers: []string{"date", "amount", "payee"},
		Body: [][]string{
			{"2024-01-02 10:00:00", "-15.50", "Coffee Shop"},
			{"2024-01-03 09:30:00", "1200", "Employer Inc"},
		},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID, userID).
		Return(&domain.Account{AccountID: accountID, UserID: userID}, nil).Once()
	suite.mockTxnRepo.On("SaveTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		if len(txns) != 2 {
			return false
		}
		first := txns[0]
		return first.AccountID == accountID &&
			first.Amount == -15500 &&
			first.Payee == "Coffee Shop" &&
			first.Date.Format(domain.DateFormat) == "2024-01-02" &&
			first.TransactionID != "" &&
			first.CreatedBy == userID
	})).Return(nil).Once()

	imported, err := suite.service.Submit(ctx, userID, accountID, grid, suite.completeMapping())

	suite.Require().NoError(err)
	suite.Equal(2, imported)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestSubmit_RejectsIncompleteMapping() {
	ctx := context.Background()

	m := domain.ColumnMapping{}
	m, _ = m.Assign(0, domain.FieldDate)

	_, err := suite.service.Submit(ctx, uuid.NewString(), uuid.NewString(), domain.RawGrid{}, m)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID")
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions")
}

func (suite *ImportServiceTestSuite) TestSubmit_RejectsForeignAccount() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Submit(ctx, userID, accountID, domain.RawGrid{}, suite.completeMapping())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions")
}

func (suite *ImportServiceTestSuite) TestSubmit_BadCellFailsWholeBatch() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	grid := domain.RawGrid{
		Headers: []string{"date", "amount", "payee"},
		Body: [][]string{
			{"2024-01-02 10:00:00", "-15.50", "Coffee Shop"},
			{"2024-01-03 09:30:00", "not-a-number", "Bakery"},
		},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID, userID).
		Return(&domain.Account{AccountID: accountID, UserID: userID}, nil).Once()

	_, err := suite.service.Submit(ctx, userID, accountID, grid, suite.completeMapping())

	suite.ErrorIs(err, apperrors.ErrParse)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions")
}

func (suite *ImportServiceTestSuite) TestSubmit_NothingToImport() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID, userID).
		Return(&domain.Account{AccountID: accountID, UserID: userID}, nil).Once()

	imported, err := suite.service.Submit(ctx, userID, accountID, domain.RawGrid{}, suite.completeMapping())

	suite.Require().NoError(err)
	suite.Zero(imported)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions")
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
