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

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{Name: "Checking"}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal("Checking", created.Name)
	suite.Equal(userID, created.UserID)
	suite.Equal(userID, created.CreatedBy)
	suite.Equal(userID, created.LastUpdatedBy)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_RenamesAndStampsAudit() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	newName := "Renamed"

	existing := &domain.Account{
		AccountID: accountID,
		UserID:    userID,
		Name:      "Old",
	}
	suite.mockRepo.On("FindAccountByID", ctx, accountID, userID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == newName && a.LastUpdatedBy == userID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, userID, accountID, dto.UpdateAccountRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, accountID, userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateAccount(ctx, userID, accountID, dto.UpdateAccountRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFoundWhenNothingDeleted() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockRepo.On("DeleteAccounts", ctx, []string{accountID}, userID).Return(int64(0), nil).Once()

	err := suite.service.DeleteAccount(ctx, userID, accountID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestBulkDeleteAccounts_ReportsCount() {
	ctx := context.Background()
	userID := uuid.NewString()
	ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}

	// One of the three IDs belongs to someone else and is silently skipped.
	suite.mockRepo.On("DeleteAccounts", ctx, ids, userID).Return(int64(2), nil).Once()

	deleted, err := suite.service.BulkDeleteAccounts(ctx, userID, ids)

	suite.Require().NoError(err)
	suite.Equal(int64(2), deleted)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
