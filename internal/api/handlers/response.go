package handlers

import (
	"net/http"

	"orghub-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Response is the uniform JSON envelope every endpoint returns
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

// respondServerError logs the cause and answers 500. Outside debug mode the
// body carries generic text only, so internals never leak to clients.
func respondServerError(c *gin.Context, err error) {
	logger.WithContext(c).WithField("path", c.FullPath()).Error("unhandled error: ", err)

	message := "Internal server error"
	if gin.Mode() == gin.DebugMode {
		message = err.Error()
	}
	respondError(c, http.StatusInternalServerError, message)
}
