package auth

import (
	"errors"
	"net/http"
	"strings"

	"orghub-backend/internal/database/models"
	apperrors "orghub-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipLookup is the minimal membership access the middleware needs.
type MembershipLookup interface {
	GetByUserAndOrganization(userID, organizationID uuid.UUID) (*models.Membership, error)
}

// AuthMiddleware provides the request gates: bearer authentication,
// membership resolution, and role enforcement. Each gate aborts the request
// on rejection, so later stages and the handler never run.
type AuthMiddleware struct {
	service     *AuthService
	memberships MembershipLookup
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, memberships MembershipLookup) *AuthMiddleware {
	return &AuthMiddleware{service: service, memberships: memberships}
}

// RequireAuth validates the bearer token and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": apperrors.ErrNoToken.Error(),
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": apperrors.ErrInvalidToken.Error(),
			})
			return
		}

		userID, err := claims.SubjectID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": apperrors.ErrInvalidToken.Error(),
			})
			return
		}

		// Set user context
		c.Set("user_id", userID)
		c.Set("email", claims.Email)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequireMembership resolves the caller's membership in the organization
// named by the :organizationId path parameter and attaches the role to the
// context. This is the boundary between "any authenticated user" and "a user
// entitled to act on this tenant".
func (m *AuthMiddleware) RequireMembership() gin.HandlerFunc {
	return func(c *gin.Context) {
		orgParam := c.Param("organizationId")
		if orgParam == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Organization ID is required",
			})
			return
		}

		organizationID, err := uuid.Parse(orgParam)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid organization ID",
			})
			return
		}

		// Requires RequireAuth to have run first.
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": apperrors.ErrNotAuthenticated.Error(),
			})
			return
		}

		membership, err := m.memberships.GetByUserAndOrganization(userID, organizationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"success": false,
					"message": apperrors.ErrNotAMember.Error(),
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Server error",
			})
			return
		}

		c.Set("organization_id", organizationID)
		c.Set("role", membership.Role)

		c.Next()
	}
}

// RequireRole rejects the request unless the context role is in the allowed
// set. The set is fixed per route at setup time.
func (m *AuthMiddleware) RequireRole(allowedRoles ...models.Role) gin.HandlerFunc {
	roleSet := make(map[models.Role]struct{}, len(allowedRoles))
	names := make([]string, 0, len(allowedRoles))
	for _, r := range allowedRoles {
		roleSet[r] = struct{}{}
		names = append(names, string(r))
	}
	allowed := strings.Join(names, ", ")

	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			// Requires RequireMembership to have run first.
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": apperrors.ErrRoleUndetermined.Error(),
			})
			return
		}

		if _, ok := roleSet[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Access denied: Requires one of [" + allowed + "] role",
			})
			return
		}

		c.Next()
	}
}

// RequireAdmin gates organization mutation and membership management.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(models.RoleOwner, models.RoleAdmin)
}

// RequireOwner gates organization deletion.
func (m *AuthMiddleware) RequireOwner() gin.HandlerFunc {
	return m.RequireRole(models.RoleOwner)
}

// GetUserID is a helper function to extract the authenticated user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmail is a helper function to extract the authenticated email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetOrganizationID is a helper function to extract the resolved organization from context
func GetOrganizationID(c *gin.Context) (uuid.UUID, bool) {
	orgID, exists := c.Get("organization_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := orgID.(uuid.UUID)
	return id, ok
}

// GetRole is a helper function to extract the resolved membership role from context
func GetRole(c *gin.Context) (models.Role, bool) {
	role, exists := c.Get("role")
	if !exists {
		return "", false
	}

	r, ok := role.(models.Role)
	return r, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
