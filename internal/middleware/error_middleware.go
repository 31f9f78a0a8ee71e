package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classify(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled API error")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func classify(err error) (int, *dto.ErrorDetail) {
	message := func(fallback string) string {
		if ce, ok := apperrors.AsCustomError(err); ok && ce.Message != "" {
			return ce.Message
		}
		return fallback
	}
	field := func() string {
		if ce, ok := apperrors.AsCustomError(err); ok {
			return ce.Field
		}
		return ""
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Validation failed")).WithField(field())
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Not found."))
	case errors.Is(err, apperrors.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, dto.NewErrorDetail(dto.ErrorCodeMethodNotAllowed, message("Method not allowed."))
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message("Authentication credentials were not provided."))
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token has expired.")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Given token not valid for any token type.")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "No active account found with the given credentials.")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message("Resource already exists")).WithField(field())
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// MethodNotAllowed answers writes against read-only resources
func MethodNotAllowed(c *gin.Context) {
	HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrMethodNotAllowed, "Method \""+c.Request.Method+"\" not allowed."))
}
