package service_test

import (
	"errors"
	"testing"
	"time"

	"orghub-backend/internal/auth"
	"orghub-backend/internal/database/models"
	apperrors "orghub-backend/internal/errors"
	"orghub-backend/internal/mocks"
	"orghub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for the auth service
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockUsers   *mocks.MockUserRepositoryInterface
	authService *service.AuthService
	hasher      *auth.PasswordHasher
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.hasher = auth.NewPasswordHasher(bcrypt.MinCost)

	tokens, err := auth.NewAuthService("test-secret", time.Hour)
	suite.Require().NoError(err)

	suite.authService = service.NewAuthService(suite.mockUsers, suite.hasher, tokens, validator.New())
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) TestRegisterSuccess() {
	req := &service.RegisterRequest{
		Email:    "alice@example.com",
		Password: "password123",
		Name:     "Alice",
	}

	suite.mockUsers.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		suite.Equal("alice@example.com", user.Email)
		suite.Equal("Alice", user.Name)
		suite.NotEqual("password123", user.PasswordHash, "password must be stored hashed")
		user.ID = uuid.New()
		return nil
	})

	resp, err := suite.authService.Register(req)

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("alice@example.com", resp.User.Email)
	suite.NotEmpty(resp.Token)
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	req := &service.RegisterRequest{
		Email:    "alice@example.com",
		Password: "password123",
		Name:     "Alice",
	}

	suite.mockUsers.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	resp, err := suite.authService.Register(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrEmailTaken)
}

func (suite *AuthServiceTestSuite) TestRegisterValidation() {
	testCases := []struct {
		name    string
		request *service.RegisterRequest
	}{
		{
			name:    "Missing email",
			request: &service.RegisterRequest{Password: "password123", Name: "Alice"},
		},
		{
			name:    "Invalid email",
			request: &service.RegisterRequest{Email: "not-an-email", Password: "password123", Name: "Alice"},
		},
		{
			name:    "Password too short",
			request: &service.RegisterRequest{Email: "alice@example.com", Password: "12345", Name: "Alice"},
		},
		{
			name:    "Missing name",
			request: &service.RegisterRequest{Email: "alice@example.com", Password: "password123"},
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			resp, err := suite.authService.Register(tc.request)
			suite.Nil(resp)
			suite.True(apperrors.IsValidation(err), "expected a validation error, got %v", err)
		})
	}
}

func (suite *AuthServiceTestSuite) TestLoginSuccess() {
	hash, err := suite.hasher.Hash("password123")
	suite.Require().NoError(err)

	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: hash,
	}

	suite.mockUsers.EXPECT().GetByEmail("alice@example.com").Return(user, nil)

	resp, err := suite.authService.Login(&service.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(user.ID, resp.User.ID)
	suite.NotEmpty(resp.Token)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	hash, err := suite.hasher.Hash("password123")
	suite.Require().NoError(err)

	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "alice@example.com",
		PasswordHash: hash,
	}

	suite.mockUsers.EXPECT().GetByEmail("alice@example.com").Return(user, nil)

	resp, err := suite.authService.Login(&service.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUsers.EXPECT().GetByEmail("ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.authService.Login(&service.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})

	suite.Nil(resp)
	// Indistinguishable from a wrong password so users cannot be enumerated.
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestProfileSuccess() {
	userID := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: userID},
		Email:     "alice@example.com",
		Name:      "Alice",
	}

	suite.mockUsers.EXPECT().GetByID(userID).Return(user, nil)

	resp, err := suite.authService.Profile(userID)

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(userID, resp.ID)
	suite.Equal("alice@example.com", resp.Email)
}

func (suite *AuthServiceTestSuite) TestProfileNotFound() {
	userID := uuid.New()

	suite.mockUsers.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.authService.Profile(userID)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *AuthServiceTestSuite) TestProfileRepositoryError() {
	userID := uuid.New()

	suite.mockUsers.EXPECT().GetByID(userID).Return(nil, errors.New("connection refused"))

	resp, err := suite.authService.Profile(userID)

	suite.Nil(resp)
	suite.Error(err)
	suite.NotErrorIs(err, apperrors.ErrUserNotFound)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
