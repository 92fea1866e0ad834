package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bookingms/booking-management-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
// Code is the stable machine-readable symbol; Message is for humans.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code.
// If it's not an AppError, it logs the error and defaults to 500.
func Error(c *gin.Context, logger *zap.Logger, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, ErrorResponse{Code: appErr.Code, Message: appErr.Message})
		return
	}

	if logger != nil {
		logger.Error("unexpected error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
}

// Message sends a plain JSON message body with the given status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
