package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/core/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/vastram/retail_pos_backend/internal/utils"
)

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateUserRequest{
		Username: "cashier1",
		Password: "s3cret-pass",
		Name:     "Asha",
		Role:     domain.RoleCashier,
	}

	var savedUsername, savedHash string
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User"), req.Username, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			savedUsername = args.String(2)
			savedHash = args.String(3)
		}).
		Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Name, user.Name)
	suite.Equal(domain.RoleCashier, user.Role)
	suite.Equal(creatorID, user.CreatedBy)
	suite.WithinDuration(time.Now(), user.CreatedAt, time.Second)

	suite.Equal(req.Username, savedUsername)
	suite.NotEqual(req.Password, savedHash)
	suite.True(utils.CheckPasswordHash(req.Password, savedHash))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Name: "Asha", Role: domain.RoleCashier}

	suite.mockRepo.On("FindUserByUsername", ctx, "cashier1").Return(user, hash, nil).Once()

	authed, err := suite.service.Authenticate(ctx, "cashier1", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, authed.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Name: "Asha", Role: domain.RoleCashier}

	suite.mockRepo.On("FindUserByUsername", ctx, "cashier1").Return(user, hash, nil).Once()

	authed, err := suite.service.Authenticate(ctx, "cashier1", "wrong-pass")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(authed)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUsername() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, "", apperrors.ErrNotFound).Once()

	// Unknown usernames fail the same way as wrong passwords.
	authed, err := suite.service.Authenticate(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(authed)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_Success() {
	ctx := context.Background()
	updaterID := uuid.NewString()
	existing := &domain.User{UserID: uuid.NewString(), Name: "Asha", Role: domain.RoleCashier}
	newRole := domain.RoleAdmin

	suite.mockRepo.On("FindUserByID", ctx, existing.UserID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.UpdateUser(ctx, existing.UserID, dto.UpdateUserRequest{Role: &newRole}, updaterID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, user.Role)
	suite.Equal(updaterID, user.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfRejected() {
	ctx := context.Background()
	userID := uuid.NewString()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkUserDeleted")
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	deleterID := uuid.NewString()

	suite.mockRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), deleterID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, deleterID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
