package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaganm/classpulse/internal/app/models"
	"github.com/kaganm/classpulse/internal/app/models/dto"
	"github.com/kaganm/classpulse/internal/pkg/apperrors"
	"github.com/kaganm/classpulse/internal/pkg/auth"
)

// Context keys set by Authenticate
const (
	ContextUserID   = "userID"
	ContextEmail    = "email"
	ContextUserName = "userName"
	ContextRoleType = "roleType"
)

// UserSource loads accounts for per-request re-validation
type UserSource interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// StudentSource loads students for ownership checks
type StudentSource interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// AuthMiddleware handles authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      UserSource
	students   StudentSource
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, users UserSource, students StudentSource) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
		students:   students,
	}
}

// Authenticate validates the bearer token and re-checks the account against
// the store on every request. A token that is still signed-valid stops
// working the moment its account is rejected or deleted.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeNoToken, "no token provided")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "invalid or expired token")
			return
		}

		user, err := m.users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeUserNoLongerValid, "user no longer valid")
				return
			}
			abortWithError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "internal server error")
			return
		}
		if !user.CanAuthenticate() {
			abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeUserNoLongerValid, "user no longer valid")
			return
		}

		// Role and name come from the store, not the token, so a role change
		// takes effect immediately
		c.Set(ContextUserID, user.ID)
		c.Set(ContextEmail, user.Email)
		c.Set(ContextUserName, user.Name)
		c.Set(ContextRoleType, user.Role)

		c.Next()
	}
}

// RequireRole allows only the listed roles past
func (m *AuthMiddleware) RequireRole(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRoleType)
		if !exists {
			abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeNoToken, "authentication required")
			return
		}

		current, ok := role.(models.RoleType)
		if !ok {
			abortWithError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "internal server error")
			return
		}

		for _, allowed := range roles {
			if current == allowed {
				c.Next()
				return
			}
		}

		abortWithError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "insufficient permissions for this operation")
	}
}

// RestrictParentToOwnChild blocks parents from touching students that are not
// theirs. The student ID is taken from the path (studentId, then id), then
// the JSON body, then the query string; a request that names no student
// passes through, list endpoints filter by parent in the query itself.
// Non-parent roles pass through untouched.
func (m *AuthMiddleware) RestrictParentToOwnChild() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRoleType)
		if roleType, ok := role.(models.RoleType); !ok || roleType != models.RoleParent {
			c.Next()
			return
		}

		studentID, found, err := extractStudentID(c)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "invalid student id")
			return
		}
		if !found {
			c.Next()
			return
		}

		student, err := m.students.GetByID(c.Request.Context(), studentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				abortWithError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "student not found")
				return
			}
			abortWithError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "internal server error")
			return
		}

		parentID, _ := c.Get(ContextUserID)
		parentIDInt, ok := parentID.(int64)
		if !ok || !student.OwnedBy(parentIDInt) {
			abortWithError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "access to this student is not allowed")
			return
		}

		c.Next()
	}
}

// extractStudentID finds the student ID a request refers to, if any
func extractStudentID(c *gin.Context) (int64, bool, error) {
	for _, param := range []string{"studentId", "id"} {
		if raw := c.Param(param); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return 0, false, err
			}
			return id, true, nil
		}
	}

	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return 0, false, err
		}
		// Restore the body so the handler can bind it afterwards
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		if len(raw) > 0 {
			var payload struct {
				StudentID int64 `json:"studentId"`
			}
			// A malformed body is the handler's problem, not ours
			if err := json.Unmarshal(raw, &payload); err == nil && payload.StudentID > 0 {
				return payload.StudentID, true, nil
			}
		}
	}

	if raw := c.Query("studentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, false, err
		}
		return id, true, nil
	}

	return 0, false, nil
}

func abortWithError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
