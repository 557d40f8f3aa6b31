package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "budgetplan/internal/errors"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, apperrors.ErrUnauthorized
	}
	id, ok := userID.(uint)
	if !ok || id == 0 {
		return 0, apperrors.ErrUnauthorized
	}
	return id, nil
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// invalidInput wraps a binding error as an ErrInvalidInput carrying its message.
func invalidInput(err error) *apperrors.AppError {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError records err on the context and aborts. The ErrorHandler
// middleware renders it as the JSON error envelope once the handler returns.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
