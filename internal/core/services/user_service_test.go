package services_test

import (
	"context"
	"testing"

	"github.com/barrique/barrique_backend/internal/apperrors"
	"github.com/barrique/barrique_backend/internal/core/domain"
	portssvc "github.com/barrique/barrique_backend/internal/core/ports/services"
	"github.com/barrique/barrique_backend/internal/core/services"
	"github.com/barrique/barrique_backend/internal/dto"
	"github.com/barrique/barrique_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	req := dto.CreateUserRequest{Username: "ana", Password: "s3cret!", Name: "Ana"}
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "ana" && u.PasswordHash != "s3cret!" && utils.CheckPasswordHash("s3cret!", u.PasswordHash)
	})).Return(&domain.User{UserID: 1, Username: "ana", Name: "Ana"}, nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1), user.UserID)
}

func (suite *UserServiceTestSuite) TestCreateUser_Duplicate() {
	suite.mockRepo.On("SaveUser", suite.ctx, mock.Anything).
		Return(nil, apperrors.NewConflictError("username ana already exists")).Once()

	user, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{Username: "ana", Password: "pw"})

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("right")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: 1, Username: "ana", PasswordHash: hash}

	suite.mockRepo.On("FindUserByUsername", suite.ctx, "ana").Return(stored, nil).Twice()
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "bob").Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	user, err := suite.service.AuthenticateUser(suite.ctx, "ana", "right")
	suite.NoError(err)
	suite.Equal(int64(1), user.UserID)

	_, err = suite.service.AuthenticateUser(suite.ctx, "ana", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(suite.ctx, "bob", "right")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
