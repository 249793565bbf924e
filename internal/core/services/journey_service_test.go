package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/barrique/barrique_backend/internal/apperrors"
	"github.com/barrique/barrique_backend/internal/core/domain"
	portssvc "github.com/barrique/barrique_backend/internal/core/ports/services"
	"github.com/barrique/barrique_backend/internal/core/services"
	"github.com/barrique/barrique_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JourneyServiceTestSuite struct {
	suite.Suite
	mockJourneyRepo *MockJourneyRepository
	mockExpenseRepo *MockExpenseRepository
	service         portssvc.JourneySvcFacade
	ctx             context.Context
}

func (suite *JourneyServiceTestSuite) SetupTest() {
	suite.mockJourneyRepo = new(MockJourneyRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.service = services.NewJourneyService(suite.mockJourneyRepo, suite.mockExpenseRepo)
	suite.ctx = context.Background()
}

func (suite *JourneyServiceTestSuite) TearDownTest() {
	suite.mockJourneyRepo.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func date(y int, m time.Month, d int) *dto.Date {
	v := dto.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &v
}

func (suite *JourneyServiceTestSuite) TestCreateJourney_SetsOwner() {
	req := dto.JourneyRequest{
		Name:      "Lisbon",
		HomeCurr:  "USD",
		VacCurr:   "EUR",
		Budget:    1500,
		StartDate: date(2024, 5, 1),
		EndDate:   date(2024, 5, 9),
	}
	suite.mockJourneyRepo.On("SaveJourney", suite.ctx, mock.MatchedBy(func(j domain.Journey) bool {
		return j.UserID == 42 && j.Name == "Lisbon" && j.Budget == 1500 && j.EndDate.Day() == 9
	})).Return(&domain.Journey{JourneyID: 3, UserID: 42, Name: "Lisbon"}, nil).Once()

	journey, err := suite.service.CreateJourney(suite.ctx, 42, req)

	suite.Require().NoError(err)
	suite.Equal(int64(3), journey.JourneyID)
}

func (suite *JourneyServiceTestSuite) TestGetJourneyByID_LoadsExpenses() {
	suite.mockJourneyRepo.On("FindJourneyByID", suite.ctx, int64(3)).Return(&domain.Journey{JourneyID: 3}, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByJourney", suite.ctx, int64(3)).
		Return([]domain.Expense{{ExpenseID: 1, JourneyID: 3}}, nil).Once()

	journey, err := suite.service.GetJourneyByID(suite.ctx, 3)

	suite.Require().NoError(err)
	suite.Len(journey.Expenses, 1)
}

func (suite *JourneyServiceTestSuite) TestAuthorizeJourney() {
	tests := []struct {
		name    string
		repoRet *domain.Journey
		repoErr error
		userID  int64
		wantErr error
	}{
		{name: "owner", repoRet: &domain.Journey{JourneyID: 1, UserID: 5}, userID: 5},
		{name: "other user", repoRet: &domain.Journey{JourneyID: 1, UserID: 5}, userID: 6, wantErr: apperrors.ErrForbidden},
		{name: "missing", repoErr: apperrors.NewNotFoundError("journey not found"), userID: 5, wantErr: apperrors.ErrNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			repo := new(MockJourneyRepository)
			svc := services.NewJourneyService(repo, suite.mockExpenseRepo)
			if tt.repoRet != nil {
				repo.On("FindJourneyByID", suite.ctx, int64(1)).Return(tt.repoRet, nil).Once()
			} else {
				repo.On("FindJourneyByID", suite.ctx, int64(1)).Return(nil, tt.repoErr).Once()
			}

			journey, err := svc.AuthorizeJourney(suite.ctx, 1, tt.userID)

			if tt.wantErr != nil {
				suite.ErrorIs(err, tt.wantErr)
				suite.Nil(journey)
			} else {
				suite.NoError(err)
				suite.Equal(tt.userID, journey.UserID)
			}
			repo.AssertExpectations(suite.T())
		})
	}
}

func (suite *JourneyServiceTestSuite) TestUpdateJourney_KeepsOwnerAndID() {
	stored := &domain.Journey{JourneyID: 3, UserID: 42, Name: "Old", Budget: 100}
	req := dto.JourneyRequest{
		Name:      "New",
		HomeCurr:  "GBP",
		VacCurr:   "JPY",
		Budget:    900,
		StartDate: date(2024, 7, 1),
		EndDate:   date(2024, 7, 2),
	}
	suite.mockJourneyRepo.On("FindJourneyByID", suite.ctx, int64(3)).Return(stored, nil).Once()
	suite.mockJourneyRepo.On("UpdateJourney", suite.ctx, mock.MatchedBy(func(j domain.Journey) bool {
		return j.JourneyID == 3 && j.UserID == 42 && j.Name == "New" && j.VacCurr == "JPY"
	})).Return(nil).Once()

	journey, err := suite.service.UpdateJourney(suite.ctx, 3, req)

	suite.Require().NoError(err)
	suite.Equal(900, journey.Budget)
}

func (suite *JourneyServiceTestSuite) TestDeleteJourney_DelegatesCascade() {
	suite.mockJourneyRepo.On("DeleteJourney", suite.ctx, int64(3)).Return(nil).Once()

	suite.NoError(suite.service.DeleteJourney(suite.ctx, 3))
}

func (suite *JourneyServiceTestSuite) TestGetJourneySummary() {
	suite.mockJourneyRepo.On("FindJourneyByID", suite.ctx, int64(3)).
		Return(&domain.Journey{JourneyID: 3, Budget: 200, HomeCurr: "EUR"}, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByJourney", suite.ctx, int64(3)).Return([]domain.Expense{
		{ExpenseID: 1, Amount: decimal.RequireFromString("49.99")},
		{ExpenseID: 2, Amount: decimal.RequireFromString("0.01")},
	}, nil).Once()

	summary, err := suite.service.GetJourneySummary(suite.ctx, 3)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(50).Equal(summary.TotalSpent))
	suite.True(decimal.NewFromInt(150).Equal(summary.Remaining))
	suite.True(decimal.NewFromInt(25).Equal(summary.PercentUsed))
	suite.Equal(2, summary.ExpenseCount)
	suite.Equal("EUR", summary.Currency)
}

func TestJourneyService(t *testing.T) {
	suite.Run(t, new(JourneyServiceTestSuite))
}
