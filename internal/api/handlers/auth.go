package handlers

import (
	"errors"
	"net/http"

	"orghub-backend/internal/auth"
	apperrors "orghub-backend/internal/errors"
	"orghub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for registration, login, and profile
type AuthHandler struct {
	service service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register
// @Summary Register a new user
// @Description Create a user account and return the user with a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.RegisterRequest true "Registration data"
// @Success 201 {object} Response{data=service.AuthResponse} "User created"
// @Failure 400 {object} Response "Invalid request body"
// @Failure 409 {object} Response "Email already registered"
// @Failure 500 {object} Response "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrEmailTaken):
			respondError(c, http.StatusConflict, "User with this email already exists")
		default:
			respondServerError(c, err)
		}
		return
	}

	respondSuccess(c, http.StatusCreated, "User registered successfully", resp)
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Verify credentials and return the user with a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login data"
// @Success 200 {object} Response{data=service.AuthResponse} "Logged in"
// @Failure 400 {object} Response "Invalid request body"
// @Failure 401 {object} Response "Invalid credentials"
// @Failure 500 {object} Response "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			// Unknown email and wrong password answer identically.
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			respondServerError(c, err)
		}
		return
	}

	respondSuccess(c, http.StatusOK, "Logged in successfully", resp)
}

// Profile handles GET /api/auth/profile
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} Response{data=service.UserResponse} "Profile"
// @Failure 401 {object} Response "Not authenticated"
// @Failure 404 {object} Response "User not found"
// @Failure 500 {object} Response "Internal server error"
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.service.Profile(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondServerError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", gin.H{"user": user})
}
