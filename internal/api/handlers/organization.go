package handlers

import (
	"errors"
	"net/http"

	"orghub-backend/internal/auth"
	apperrors "orghub-backend/internal/errors"
	"orghub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// Create handles POST /api/organizations
// @Summary Create an organization
// @Description Create an organization; the caller becomes its OWNER
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} Response{data=service.OrganizationResponse} "Organization created"
// @Failure 400 {object} Response "Invalid request body"
// @Failure 401 {object} Response "Not authenticated"
// @Failure 409 {object} Response "Name already taken"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) Create(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	org, err := h.service.Create(userID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrSlugTaken):
			respondError(c, http.StatusConflict, "Organization with this name already exists")
		default:
			respondServerError(c, err)
		}
		return
	}

	respondSuccess(c, http.StatusCreated, "Organization created successfully", org)
}

// List handles GET /api/organizations
// @Summary List the caller's organizations
// @Description Return every organization the caller belongs to, with their role
// @Tags organizations
// @Produce json
// @Success 200 {object} Response{data=[]service.OrganizationWithRole} "Organizations"
// @Failure 401 {object} Response "Not authenticated"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) List(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	orgs, err := h.service.ListForUser(userID)
	if err != nil {
		respondServerError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", gin.H{"organizations": orgs})
}

// Get handles GET /api/organizations/:organizationId
// @Summary Get an organization
// @Description Return an organization with its members
// @Tags organizations
// @Produce json
// @Param organizationId path string true "Organization ID"
// @Success 200 {object} Response{data=service.OrganizationResponse} "Organization"
// @Failure 403 {object} Response "Not a member"
// @Failure 404 {object} Response "Organization not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /organizations/{organizationId} [get]
func (h *OrganizationHandler) Get(c *gin.Context) {
	orgID, ok := auth.GetOrganizationID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Organization ID is required")
		return
	}

	org, err := h.service.Get(orgID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			respondError(c, http.StatusNotFound, "Organization not found")
			return
		}
		respondServerError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", gin.H{"organization": org})
}

// Update handles PUT /api/organizations/:organizationId
// @Summary Rename an organization
// @Description Rename an organization; requires ADMIN or OWNER
// @Tags organizations
// @Accept json
// @Produce json
// @Param organizationId path string true "Organization ID"
// @Param organization body service.UpdateOrganizationRequest true "Organization data"
// @Success 200 {object} Response{data=service.OrganizationResponse} "Organization updated"
// @Failure 400 {object} Response "Invalid request body"
// @Failure 403 {object} Response "Insufficient role"
// @Failure 404 {object} Response "Organization not found"
// @Failure 409 {object} Response "Name already taken"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /organizations/{organizationId} [put]
func (h *OrganizationHandler) Update(c *gin.Context) {
	orgID, ok := auth.GetOrganizationID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Organization ID is required")
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	org, err := h.service.Update(orgID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrOrganizationNotFound):
			respondError(c, http.StatusNotFound, "Organization not found")
		case errors.Is(err, apperrors.ErrSlugTaken):
			respondError(c, http.StatusConflict, "Organization with this name already exists")
		default:
			respondServerError(c, err)
		}
		return
	}

	respondSuccess(c, http.StatusOK, "Organization updated successfully", org)
}

// Delete handles DELETE /api/organizations/:organizationId
// @Summary Delete an organization
// @Description Delete an organization and its memberships; requires OWNER
// @Tags organizations
// @Produce json
// @Param organizationId path string true "Organization ID"
// @Success 200 {object} Response "Organization deleted"
// @Failure 403 {object} Response "Insufficient role"
// @Failure 404 {object} Response "Organization not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /organizations/{organizationId} [delete]
func (h *OrganizationHandler) Delete(c *gin.Context) {
	orgID, ok := auth.GetOrganizationID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Organization ID is required")
		return
	}

	if err := h.service.Delete(orgID); err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			respondError(c, http.StatusNotFound, "Organization not found")
			return
		}
		respondServerError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Organization deleted successfully", nil)
}
