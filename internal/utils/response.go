// internal/utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/digibay/digibay-backend/internal/apperrors"
)

// Every response carries "success" plus either the payload fields or a
// "message" string, matching the public API contract.

func SuccessResponse(c *gin.Context, payload gin.H) {
	respond(c, http.StatusOK, true, payload)
}

func CreatedResponse(c *gin.Context, payload gin.H) {
	respond(c, http.StatusCreated, true, payload)
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	respond(c, statusCode, false, gin.H{"message": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Not authorized"
	}
	ErrorResponse(c, http.StatusUnauthorized, message)
}

func ForbiddenResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

func InternalErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}

// ServiceErrorResponse maps the service error taxonomy onto status codes.
// Unexpected errors are logged and reported as a generic 500 so internal
// detail never leaks.
func ServiceErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		ForbiddenResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrUnauthenticated):
		UnauthorizedResponse(c, err.Error())
	default:
		logrus.WithError(err).Error("unhandled service error")
		InternalErrorResponse(c)
	}
}

func respond(c *gin.Context, statusCode int, success bool, payload gin.H) {
	body := gin.H{"success": success}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}
