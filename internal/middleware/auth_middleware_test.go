package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaganm/classpulse/internal/app/models"
	"github.com/kaganm/classpulse/internal/pkg/apperrors"
	"github.com/kaganm/classpulse/internal/pkg/auth"
)

type stubUserSource struct {
	users map[int64]*models.User
}

func (s *stubUserSource) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

type stubStudentSource struct {
	students map[int64]*models.Student
}

func (s *stubStudentSource) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func newTestMiddleware(users *stubUserSource, students *stubStudentSource) (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "classpulse.test",
	})
	if users == nil {
		users = &stubUserSource{users: map[int64]*models.User{}}
	}
	if students == nil {
		students = &stubStudentSource{students: map[int64]*models.Student{}}
	}
	return NewAuthMiddleware(jwtService, users, students), jwtService
}

func activeUser(id int64, role models.RoleType) *models.User {
	return &models.User{
		ID:            id,
		Name:          "Test User",
		Email:         "user@school.org",
		Role:          role,
		Status:        models.StatusApproved,
		EmailVerified: true,
	}
}

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	teacher := activeUser(1, models.RoleTeacher)
	pending := activeUser(2, models.RoleParent)
	pending.Status = models.StatusPending
	pending.EmailVerified = false

	users := &stubUserSource{users: map[int64]*models.User{1: teacher, 2: pending}}
	m, jwtService := newTestMiddleware(users, nil)

	validToken, _, err := jwtService.GenerateToken(teacher)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	pendingToken, _, err := jwtService.GenerateToken(pending)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	deletedToken, _, err := jwtService.GenerateToken(activeUser(99, models.RoleTeacher))
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"missing bearer prefix", validToken, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"deleted account", "Bearer " + deletedToken, http.StatusUnauthorized},
		{"account no longer active", "Bearer " + pendingToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/protected", m.Authenticate(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestAuthenticateSetsContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	teacher := activeUser(7, models.RoleTeacher)
	users := &stubUserSource{users: map[int64]*models.User{7: teacher}}
	m, jwtService := newTestMiddleware(users, nil)

	token, _, err := jwtService.GenerateToken(teacher)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotID int64
	var gotRole models.RoleType
	router := gin.New()
	router.GET("/protected", m.Authenticate(), func(c *gin.Context) {
		gotID = c.GetInt64(ContextUserID)
		role, _ := c.Get(ContextRoleType)
		gotRole, _ = role.(models.RoleType)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if gotID != 7 {
		t.Errorf("context userID = %d, want 7", gotID)
	}
	if gotRole != models.RoleTeacher {
		t.Errorf("context roleType = %q, want TEACHER", gotRole)
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		role       models.RoleType
		allowed    []models.RoleType
		wantStatus int
	}{
		{"exact match", models.RoleAdmin, []models.RoleType{models.RoleAdmin}, http.StatusOK},
		{"one of several", models.RoleParent, []models.RoleType{models.RoleTeacher, models.RoleParent}, http.StatusOK},
		{"wrong role", models.RoleParent, []models.RoleType{models.RoleAdmin}, http.StatusForbidden},
		{"teacher blocked from admin", models.RoleTeacher, []models.RoleType{models.RoleAdmin}, http.StatusForbidden},
	}

	m, _ := newTestMiddleware(nil, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/guarded",
				func(c *gin.Context) { c.Set(ContextRoleType, tt.role) },
				m.RequireRole(tt.allowed...),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRoleWithoutAuthentication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m, _ := newTestMiddleware(nil, nil)
	router := gin.New()
	router.GET("/guarded", m.RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRestrictParentToOwnChild(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ownerID := int64(10)
	otherID := int64(11)
	students := &stubStudentSource{students: map[int64]*models.Student{
		100: {ID: 100, Name: "Owned Child", ParentID: &ownerID},
		200: {ID: 200, Name: "Someone Else's Child", ParentID: &otherID},
		300: {ID: 300, Name: "Unlinked Child"},
	}}
	m, _ := newTestMiddleware(nil, students)

	setParent := func(c *gin.Context) {
		c.Set(ContextUserID, ownerID)
		c.Set(ContextRoleType, models.RoleParent)
	}

	tests := []struct {
		name       string
		method     string
		path       string
		register   string
		body       string
		wantStatus int
	}{
		{"own child via path", http.MethodGet, "/students/100/progress", "/students/:studentId/progress", "", http.StatusOK},
		{"other child via path", http.MethodGet, "/students/200/progress", "/students/:studentId/progress", "", http.StatusForbidden},
		{"unlinked child via path", http.MethodGet, "/students/300/progress", "/students/:studentId/progress", "", http.StatusForbidden},
		{"missing child via path", http.MethodGet, "/students/999/progress", "/students/:studentId/progress", "", http.StatusNotFound},
		{"own child via id param", http.MethodGet, "/students/100", "/students/:id", "", http.StatusOK},
		{"own child via body", http.MethodPost, "/progress", "/progress", `{"studentId":100}`, http.StatusOK},
		{"other child via body", http.MethodPost, "/progress", "/progress", `{"studentId":200}`, http.StatusForbidden},
		{"own child via query", http.MethodGet, "/progress?studentId=100", "/progress", "", http.StatusOK},
		{"other child via query", http.MethodGet, "/progress?studentId=200", "/progress", "", http.StatusForbidden},
		{"no student named", http.MethodGet, "/progress", "/progress", "", http.StatusOK},
		{"non-numeric path id", http.MethodGet, "/students/abc/progress", "/students/:studentId/progress", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			handler := func(c *gin.Context) { c.Status(http.StatusOK) }
			router.Handle(tt.method, tt.register, setParent, m.RestrictParentToOwnChild(), handler)

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRestrictParentToOwnChildIgnoresOtherRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	students := &stubStudentSource{students: map[int64]*models.Student{}}
	m, _ := newTestMiddleware(nil, students)

	for _, role := range []models.RoleType{models.RoleTeacher, models.RoleAdmin} {
		router := gin.New()
		router.GET("/students/:studentId/progress",
			func(c *gin.Context) {
				c.Set(ContextUserID, int64(1))
				c.Set(ContextRoleType, role)
			},
			m.RestrictParentToOwnChild(),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/students/999/progress", nil))

		if w.Code != http.StatusOK {
			t.Errorf("role %s: status = %d, want 200", role, w.Code)
		}
	}
}

func TestRestrictParentRestoresBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ownerID := int64(10)
	students := &stubStudentSource{students: map[int64]*models.Student{
		100: {ID: 100, Name: "Owned Child", ParentID: &ownerID},
	}}
	m, _ := newTestMiddleware(nil, students)

	var gotBody struct {
		StudentID int64  `json:"studentId"`
		Note      string `json:"note"`
	}
	router := gin.New()
	router.POST("/progress",
		func(c *gin.Context) {
			c.Set(ContextUserID, ownerID)
			c.Set(ContextRoleType, models.RoleParent)
		},
		m.RestrictParentToOwnChild(),
		func(c *gin.Context) {
			if err := c.ShouldBindJSON(&gotBody); err != nil {
				c.Status(http.StatusBadRequest)
				return
			}
			c.Status(http.StatusOK)
		},
	)

	req := httptest.NewRequest(http.MethodPost, "/progress", strings.NewReader(`{"studentId":100,"note":"still here"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotBody.Note != "still here" {
		t.Errorf("handler read note %q, want %q", gotBody.Note, "still here")
	}
}
