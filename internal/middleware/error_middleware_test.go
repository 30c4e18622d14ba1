package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kaganm/classpulse/internal/pkg/apperrors"
	"github.com/kaganm/classpulse/internal/pkg/auth"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"account not active", apperrors.ErrAccountNotActive, http.StatusForbidden},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"user no longer valid", apperrors.ErrUserNoLongerValid, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"wrapped forbidden", apperrors.NewForbiddenError("access to this student is not allowed"), http.StatusForbidden},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"entry not found", apperrors.ErrEntryNotFound, http.StatusNotFound},
		{"verification token not found", apperrors.ErrEmailTokenNotFound, http.StatusNotFound},
		{"duplicate entry", apperrors.ErrDuplicateEntry, http.StatusConflict},
		{"email already exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"already verified", apperrors.ErrEmailAlreadyVerified, http.StatusConflict},
		{"not pending", apperrors.NewCustomError(apperrors.ErrAccountNotPending, "account already has a final decision"), http.StatusConflict},
		{"expired verification token", apperrors.ErrEmailTokenExpired, http.StatusGone},
		{"bad request", apperrors.NewBadRequestError("invalid date"), http.StatusBadRequest},
		{"unknown error", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestHandleAPIErrorDoesNotLeakInternals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, errors.New("pq: connection refused on 10.0.0.5"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	body := w.Body.String()
	if want := "internal server error"; !strings.Contains(body, want) {
		t.Errorf("body %q does not contain %q", body, want)
	}
	if strings.Contains(body, "10.0.0.5") {
		t.Errorf("body leaks internal error detail: %q", body)
	}
}
