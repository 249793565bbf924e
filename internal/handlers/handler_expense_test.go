package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/barrique/barrique_backend/internal/apperrors"
	"github.com/barrique/barrique_backend/internal/core/domain"
	"github.com/barrique/barrique_backend/internal/dto"
	"github.com/barrique/barrique_backend/internal/handlers"
	"github.com/barrique/barrique_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockUserService    *MockUserService
	mockJourneyService *MockJourneyService
	mockExpenseService *MockExpenseService
	token              string
}

func (suite *ExpenseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockUserService = new(MockUserService)
	suite.mockJourneyService = new(MockJourneyService)
	suite.mockExpenseService = new(MockExpenseService)

	api := suite.router.Group("/api")
	handlers.RegisterExpenseRoutes(api, suite.mockUserService, suite.mockJourneyService, suite.mockExpenseService)

	suite.token = generateTestToken("ana")
	suite.mockUserService.On("GetUserByUsername", mock.Anything, "ana").
		Return(&domain.User{UserID: 1, Username: "ana", Name: "Ana"}, nil).Maybe()
}

func (suite *ExpenseHandlerTestSuite) TearDownTest() {
	suite.mockJourneyService.AssertExpectations(suite.T())
	suite.mockExpenseService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ExpenseHandlerTestSuite) ownJourney() {
	suite.mockJourneyService.On("AuthorizeJourney", mock.Anything, int64(7), int64(1)).
		Return(&domain.Journey{JourneyID: 7, UserID: 1}, nil).Once()
}

func (suite *ExpenseHandlerTestSuite) TestListExpenses_Success() {
	suite.ownJourney()
	suite.mockExpenseService.On("GetAllExpensesByJourneyID", mock.Anything, int64(7), int64(1)).
		Return([]domain.Expense{
			{ExpenseID: 1, JourneyID: 7, Name: "Hotel", Amount: decimal.NewFromInt(120), Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
			{ExpenseID: 2, JourneyID: 7, Name: "Dinner", Amount: decimal.RequireFromString("35.40"), Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/journey/7/expense", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Contains(w.Body.String(), `"date":"2024-06-01"`)
}

func (suite *ExpenseHandlerTestSuite) TestListExpenses_ForbiddenForOtherOwner() {
	suite.mockJourneyService.On("AuthorizeJourney", mock.Anything, int64(7), int64(1)).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodGet, "/api/journey/7/expense", "")

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "GetAllExpensesByJourneyID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestExpenseRoutes_ForbiddenForOtherOwner() {
	body := `{"name":"Taxi","amount":"20","date":"2024-06-02"}`
	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"get", http.MethodGet, "/api/journey/7/expense/5", ""},
		{"create", http.MethodPost, "/api/journey/7/expense", body},
		{"update", http.MethodPut, "/api/journey/7/expense/5", body},
		{"delete", http.MethodDelete, "/api/journey/7/expense/5", ""},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.mockJourneyService.On("AuthorizeJourney", mock.Anything, int64(7), int64(1)).
				Return(nil, apperrors.ErrForbidden).Once()

			w := suite.do(tc.method, tc.path, tc.body)

			suite.Equal(http.StatusForbidden, w.Code)
			suite.JSONEq(`{"error":"Forbidden"}`, w.Body.String())
		})
	}
	suite.mockExpenseService.AssertNotCalled(suite.T(), "GetExpenseByID", mock.Anything, mock.Anything)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything, mock.Anything)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "UpdateExpense", mock.Anything, mock.Anything, mock.Anything)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "DeleteExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestListExpenses_JourneyNotFound() {
	suite.mockJourneyService.On("AuthorizeJourney", mock.Anything, int64(7), int64(1)).
		Return(nil, apperrors.NewNotFoundError("journey not found")).Once()

	w := suite.do(http.MethodGet, "/api/journey/7/expense", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestGetExpense_MismatchedJourneyIsNotFound() {
	suite.ownJourney()
	suite.mockExpenseService.On("GetExpenseByID", mock.Anything, int64(5)).
		Return(&domain.Expense{ExpenseID: 5, JourneyID: 8}, nil).Once()

	w := suite.do(http.MethodGet, "/api/journey/7/expense/5", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestGetExpense_Success() {
	suite.ownJourney()
	suite.mockExpenseService.On("GetExpenseByID", mock.Anything, int64(5)).
		Return(&domain.Expense{ExpenseID: 5, JourneyID: 7, Name: "Bus", Amount: decimal.NewFromInt(3), Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)}, nil).Once()

	w := suite.do(http.MethodGet, "/api/journey/7/expense/5", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(5), resp.ExpenseID)
	suite.Equal("2024-06-03", resp.Date.Format(dto.DateLayout))
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_Created() {
	suite.ownJourney()
	suite.mockExpenseService.On("CreateExpense", mock.Anything, int64(7), mock.MatchedBy(func(e domain.Expense) bool {
		return e.Name == "Museum" &&
			e.Amount.Equal(decimal.RequireFromString("12.50")) &&
			e.Date.Equal(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))
	})).Return(&domain.Expense{
		ExpenseID: 11,
		JourneyID: 7,
		Name:      "Museum",
		Amount:    decimal.RequireFromString("12.50"),
		Date:      time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/journey/7/expense", `{"name":"Museum","amount":"12.50","date":"2024-06-02"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(11), resp.ExpenseID)
	suite.Equal(int64(7), resp.JourneyID)
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_InvalidBody() {
	suite.ownJourney()

	w := suite.do(http.MethodPost, "/api/journey/7/expense", `{"name":"Museum","amount":"12.50","date":"02/06/2024"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExpenseService.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestUpdateExpense_Absent() {
	suite.ownJourney()
	suite.mockExpenseService.On("GetExpenseByID", mock.Anything, int64(5)).
		Return(nil, apperrors.NewNotFoundError("expense not found")).Once()

	w := suite.do(http.MethodPut, "/api/journey/7/expense/5", `{"name":"Taxi","amount":"9","date":"2024-06-02"}`)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestUpdateExpense_Success() {
	suite.ownJourney()
	suite.mockExpenseService.On("GetExpenseByID", mock.Anything, int64(5)).
		Return(&domain.Expense{ExpenseID: 5, JourneyID: 7, Name: "Taxi"}, nil).Once()
	suite.mockExpenseService.On("UpdateExpense", mock.Anything, int64(5), mock.MatchedBy(func(e domain.Expense) bool {
		return e.Name == "Train"
	})).Return(&domain.Expense{ExpenseID: 5, JourneyID: 7, Name: "Train", Amount: decimal.NewFromInt(40)}, nil).Once()

	w := suite.do(http.MethodPut, "/api/journey/7/expense/5", `{"name":"Train","amount":40,"date":"2024-06-02"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"name":"Train"`)
}

func (suite *ExpenseHandlerTestSuite) TestDeleteExpense_NoContent() {
	suite.ownJourney()
	suite.mockExpenseService.On("GetExpenseByID", mock.Anything, int64(5)).
		Return(&domain.Expense{ExpenseID: 5, JourneyID: 7}, nil).Once()
	suite.mockExpenseService.On("DeleteExpense", mock.Anything, int64(5)).Return(true, nil).Once()

	w := suite.do(http.MethodDelete, "/api/journey/7/expense/5", "")

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestDeleteExpense_VanishedIsNotFound() {
	suite.ownJourney()
	suite.mockExpenseService.On("GetExpenseByID", mock.Anything, int64(5)).
		Return(&domain.Expense{ExpenseID: 5, JourneyID: 7}, nil).Once()
	suite.mockExpenseService.On("DeleteExpense", mock.Anything, int64(5)).Return(false, nil).Once()

	w := suite.do(http.MethodDelete, "/api/journey/7/expense/5", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestMalformedJourneyID() {
	w := suite.do(http.MethodGet, "/api/journey/abc/expense", "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestMissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/journey/7/expense", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestUnknownTokenSubject() {
	suite.token = generateTestToken("ghost")
	suite.mockUserService.On("GetUserByUsername", mock.Anything, "ghost").
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	w := suite.do(http.MethodGet, "/api/journey/7/expense", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestUnknownTokenSubject_LogsUsernameOnce() {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	suite.token = generateTestToken("ghost")
	suite.mockUserService.On("GetUserByUsername", mock.Anything, "ghost").
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	w := suite.do(http.MethodGet, "/api/journey/7/expense", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	var line string
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(l, "does not match any user") {
			line = l
		}
	}
	suite.Require().NotEmpty(line)
	suite.Equal(1, strings.Count(line, `"username"`))
}

func TestExpenseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}
