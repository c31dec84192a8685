package auth_test

import (
	"net/http"
	"testing"
	"time"

	"orghub-backend/internal/auth"
	"orghub-backend/internal/database/models"
	"orghub-backend/internal/mocks"
	"orghub-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AuthMiddlewareTestSuite defines the test suite for the middleware chain
type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockMemberships *mocks.MockMembershipRepositoryInterface
	tokenService    *auth.AuthService
	middleware      *auth.AuthMiddleware
	http            *testutils.HTTPTestSuite
	user            *models.User
	token           string
}

// SetupTest sets up the test suite
func (suite *AuthMiddlewareTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberships = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)

	tokenService, err := auth.NewAuthService("test-secret", time.Hour)
	suite.Require().NoError(err)
	suite.tokenService = tokenService
	suite.middleware = auth.NewAuthMiddleware(tokenService, suite.mockMemberships)

	suite.http = testutils.SetupHTTPTest()

	suite.user = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "alice@example.com",
		Name:      "Alice",
	}
	suite.token, err = tokenService.GenerateJWT(suite.user)
	suite.Require().NoError(err)
}

// TearDownTest cleans up after each test
func (suite *AuthMiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuthNoToken() {
	suite.http.Router.GET("/protected", suite.middleware.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := suite.http.MakeRequest(http.MethodGet, "/protected", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "No token provided")
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuthMalformedHeader() {
	suite.http.Router.GET("/protected", suite.middleware.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Token " + suite.token,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "No token provided")
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuthInvalidToken() {
	suite.http.Router.GET("/protected", suite.middleware.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := suite.http.MakeAuthenticatedRequest(http.MethodGet, "/protected", "not-a-jwt", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Invalid or expired token")
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuthSetsContext() {
	suite.http.Router.GET("/protected", suite.middleware.RequireAuth(), func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		suite.True(ok)
		suite.Equal(suite.user.ID, userID)

		email, ok := auth.GetUserEmail(c)
		suite.True(ok)
		suite.Equal("alice@example.com", email)

		claims, ok := auth.GetAuthClaims(c)
		suite.True(ok)
		suite.Equal("alice@example.com", claims.Email)

		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	recorder := suite.http.MakeAuthenticatedRequest(http.MethodGet, "/protected", suite.token, nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
}

func (suite *AuthMiddlewareTestSuite) TestRequireMembershipInvalidOrganizationID() {
	suite.http.Router.GET("/orgs/:organizationId",
		suite.middleware.RequireAuth(),
		suite.middleware.RequireMembership(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	recorder := suite.http.MakeAuthenticatedRequest(http.MethodGet, "/orgs/not-a-uuid", suite.token, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

func (suite *AuthMiddlewareTestSuite) TestRequireMembershipNotAMember() {
	orgID := uuid.New()

	suite.mockMemberships.EXPECT().
		GetByUserAndOrganization(suite.user.ID, orgID).
		Return(nil, gorm.ErrRecordNotFound)

	suite.http.Router.GET("/orgs/:organizationId",
		suite.middleware.RequireAuth(),
		suite.middleware.RequireMembership(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	recorder := suite.http.MakeAuthenticatedRequest(http.MethodGet, "/orgs/"+orgID.String(), suite.token, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Access denied: Not a member of this organization")
}

func (suite *AuthMiddlewareTestSuite) TestRequireMembershipSetsContext() {
	orgID := uuid.New()

	suite.mockMemberships.EXPECT().
		GetByUserAndOrganization(suite.user.ID, orgID).
		Return(&models.Membership{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			UserID:         suite.user.ID,
			OrganizationID: orgID,
			Role:           models.RoleAdmin,
		}, nil)

	suite.http.Router.GET("/orgs/:organizationId",
		suite.middleware.RequireAuth(),
		suite.middleware.RequireMembership(),
		func(c *gin.Context) {
			resolvedOrg, ok := auth.GetOrganizationID(c)
			suite.True(ok)
			suite.Equal(orgID, resolvedOrg)

			role, ok := auth.GetRole(c)
			suite.True(ok)
			suite.Equal(models.RoleAdmin, role)

			c.JSON(http.StatusOK, gin.H{"success": true})
		},
	)

	recorder := suite.http.MakeAuthenticatedRequest(http.MethodGet, "/orgs/"+orgID.String(), suite.token, nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
}

func (suite *AuthMiddlewareTestSuite) TestRequireAdminRejectsMember() {
	orgID := uuid.New()

	suite.mockMemberships.EXPECT().
		GetByUserAndOrganization(suite.user.ID, orgID).
		Return(&models.Membership{
			UserID:         suite.user.ID,
			OrganizationID: orgID,
			Role:           models.RoleMember,
		}, nil)

	suite.http.Router.PUT("/orgs/:organizationId",
		suite.middleware.RequireAuth(),
		suite.middleware.RequireMembership(),
		suite.middleware.RequireAdmin(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	recorder := suite.http.MakeAuthenticatedRequest(http.MethodPut, "/orgs/"+orgID.String(), suite.token, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Access denied: Requires one of [OWNER, ADMIN] role")
}

func (suite *AuthMiddlewareTestSuite) TestRequireAdminAllowsAdmin() {
	orgID := uuid.New()

	suite.mockMemberships.EXPECT().
		GetByUserAndOrganization(suite.user.ID, orgID).
		Return(&models.Membership{
			UserID:         suite.user.ID,
			OrganizationID: orgID,
			Role:           models.RoleAdmin,
		}, nil)

	suite.http.Router.PUT("/orgs/:organizationId",
		suite.middleware.RequireAuth(),
		suite.middleware.RequireMembership(),
		suite.middleware.RequireAdmin(),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"success": true}) },
	)

	recorder := suite.http.MakeAuthenticatedRequest(http.MethodPut, "/orgs/"+orgID.String(), suite.token, nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
}

func (suite *AuthMiddlewareTestSuite) TestRequireOwnerRejectsAdmin() {
	orgID := uuid.New()

	suite.mockMemberships.EXPECT().
		GetByUserAndOrganization(suite.user.ID, orgID).
		Return(&models.Membership{
			UserID:         suite.user.ID,
			OrganizationID: orgID,
			Role:           models.RoleAdmin,
		}, nil)

	suite.http.Router.DELETE("/orgs/:organizationId",
		suite.middleware.RequireAuth(),
		suite.middleware.RequireMembership(),
		suite.middleware.RequireOwner(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	recorder := suite.http.MakeAuthenticatedRequest(http.MethodDelete, "/orgs/"+orgID.String(), suite.token, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Access denied: Requires one of [OWNER] role")
}

func (suite *AuthMiddlewareTestSuite) TestRequireOwnerAllowsOwner() {
	orgID := uuid.New()

	suite.mockMemberships.EXPECT().
		GetByUserAndOrganization(suite.user.ID, orgID).
		Return(&models.Membership{
			UserID:         suite.user.ID,
			OrganizationID: orgID,
			Role:           models.RoleOwner,
		}, nil)

	suite.http.Router.DELETE("/orgs/:organizationId",
		suite.middleware.RequireAuth(),
		suite.middleware.RequireMembership(),
		suite.middleware.RequireOwner(),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"success": true}) },
	)

	recorder := suite.http.MakeAuthenticatedRequest(http.MethodDelete, "/orgs/"+orgID.String(), suite.token, nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
}

// TestAuthMiddlewareTestSuite runs the test suite
func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
