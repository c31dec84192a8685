package handlers

import (
	"errors"
	"net/http"

	"orghub-backend/internal/auth"
	apperrors "orghub-backend/internal/errors"
	"orghub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for organization members
type MemberHandler struct {
	service service.MembershipServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service service.MembershipServiceInterface) *MemberHandler {
	return &MemberHandler{service: service}
}

// List handles GET /api/organizations/:organizationId/members
// @Summary List organization members
// @Tags members
// @Produce json
// @Param organizationId path string true "Organization ID"
// @Success 200 {object} Response{data=[]service.MembershipResponse} "Members"
// @Failure 403 {object} Response "Not a member"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /organizations/{organizationId}/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	orgID, ok := auth.GetOrganizationID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Organization ID is required")
		return
	}

	members, err := h.service.ListByOrganization(orgID)
	if err != nil {
		respondServerError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", gin.H{"members": members})
}

// Add handles POST /api/organizations/:organizationId/members
// @Summary Add a member
// @Description Add an existing user to the organization by email; requires ADMIN or OWNER
// @Tags members
// @Accept json
// @Produce json
// @Param organizationId path string true "Organization ID"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} Response{data=service.MembershipResponse} "Member added"
// @Failure 400 {object} Response "Invalid request body"
// @Failure 403 {object} Response "Insufficient role"
// @Failure 404 {object} Response "User not found"
// @Failure 409 {object} Response "Already a member"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /organizations/{organizationId}/members [post]
func (h *MemberHandler) Add(c *gin.Context) {
	orgID, ok := auth.GetOrganizationID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Organization ID is required")
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.service.Add(orgID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, apperrors.ErrAlreadyMember):
			respondError(c, http.StatusConflict, "User is already a member")
		default:
			respondServerError(c, err)
		}
		return
	}

	respondSuccess(c, http.StatusCreated, "Member added successfully", member)
}

// UpdateRole handles PUT /api/organizations/:organizationId/members/:memberId
// @Summary Change a member's role
// @Description Change a member's role; requires ADMIN or OWNER
// @Tags members
// @Accept json
// @Produce json
// @Param organizationId path string true "Organization ID"
// @Param memberId path string true "Membership ID"
// @Param member body service.UpdateMemberRoleRequest true "Role data"
// @Success 200 {object} Response{data=service.MembershipResponse} "Role updated"
// @Failure 400 {object} Response "Invalid request body"
// @Failure 403 {object} Response "Insufficient role"
// @Failure 404 {object} Response "Member not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /organizations/{organizationId}/members/{memberId} [put]
func (h *MemberHandler) UpdateRole(c *gin.Context) {
	orgID, ok := auth.GetOrganizationID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Organization ID is required")
		return
	}

	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid member ID")
		return
	}

	var req service.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.service.UpdateRole(orgID, memberID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrMembershipNotFound):
			respondError(c, http.StatusNotFound, "Member not found")
		default:
			respondServerError(c, err)
		}
		return
	}

	respondSuccess(c, http.StatusOK, "Member role updated successfully", member)
}

// Remove handles DELETE /api/organizations/:organizationId/members/:memberId
// @Summary Remove a member
// @Description Remove a member from the organization; requires ADMIN or OWNER
// @Tags members
// @Produce json
// @Param organizationId path string true "Organization ID"
// @Param memberId path string true "Membership ID"
// @Success 200 {object} Response "Member removed"
// @Failure 403 {object} Response "Insufficient role"
// @Failure 404 {object} Response "Member not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /organizations/{organizationId}/members/{memberId} [delete]
func (h *MemberHandler) Remove(c *gin.Context) {
	orgID, ok := auth.GetOrganizationID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Organization ID is required")
		return
	}

	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid member ID")
		return
	}

	if err := h.service.Remove(orgID, memberID); err != nil {
		if errors.Is(err, apperrors.ErrMembershipNotFound) {
			respondError(c, http.StatusNotFound, "Member not found")
			return
		}
		respondServerError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Member removed successfully", nil)
}
