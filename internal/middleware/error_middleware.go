package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaganm/classpulse/internal/app/models/dto"
	"github.com/kaganm/classpulse/internal/pkg/apperrors"
	"github.com/kaganm/classpulse/internal/pkg/auth"
	"github.com/kaganm/classpulse/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Controllers call
// it with whatever their service returned; the mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classify(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Internal error")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

func classify(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "invalid credentials")

	case errors.Is(err, apperrors.ErrAccountNotActive):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeAccountNotActive, "account is not approved or email not verified")

	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "invalid or expired token")

	case errors.Is(err, apperrors.ErrNoToken):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeNoToken, "no token provided")

	case errors.Is(err, apperrors.ErrUserNoLongerValid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUserNoLongerValid, "user no longer valid")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, errMessage(err, "permission denied"))

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrEntryNotFound),
		errors.Is(err, apperrors.ErrEmailTokenNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, errMessage(err, "resource not found"))

	case errors.Is(err, apperrors.ErrDuplicateEntry),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrEmailAlreadyVerified),
		errors.Is(err, apperrors.ErrAccountNotPending),
		errors.Is(err, apperrors.ErrEmailNotVerified),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, errMessage(err, "conflict"))

	case errors.Is(err, apperrors.ErrEmailTokenExpired):
		return http.StatusGone, dto.NewErrorDetail(dto.ErrorCodeResourceGone, "verification token has expired")

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, errMessage(err, "bad request"))

	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "internal server error")
	}
}

// errMessage prefers the CustomError message when one wraps the sentinel
func errMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	if err != nil {
		return err.Error()
	}
	return fallback
}
