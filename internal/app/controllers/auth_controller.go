package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kaganm/classpulse/internal/app/models/dto"
	"github.com/kaganm/classpulse/internal/app/services"
	"github.com/kaganm/classpulse/internal/middleware"
)

// AuthController handles signup, login and email verification endpoints
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates a user and returns a session token
// @Summary Log in
// @Description Authenticates by email, password and role and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// SignupTeacher registers a new teacher account pending admin approval
// @Summary Sign up as a teacher
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup details"
// @Success 201 {object} dto.APIResponse{data=dto.SignupResponse}
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/signup/teacher [post]
func (c *AuthController) SignupTeacher(ctx *gin.Context) {
	c.signup(ctx, c.authService.SignupTeacher)
}

// SignupParent registers a new parent account pending admin approval
// @Summary Sign up as a parent
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup details"
// @Success 201 {object} dto.APIResponse{data=dto.SignupResponse}
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/signup/parent [post]
func (c *AuthController) SignupParent(ctx *gin.Context) {
	c.signup(ctx, c.authService.SignupParent)
}

func (c *AuthController) signup(ctx *gin.Context, fn func(context.Context, *dto.SignupRequest) (*dto.SignupResponse, error)) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := fn(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// VerifyEmail consumes a verification token from a mailed link
// @Summary Verify email address
// @Tags auth
// @Produce json
// @Param token path string true "Verification token"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 410 {object} dto.ErrorResponse
// @Router /auth/verify-email/{token} [get]
func (c *AuthController) VerifyEmail(ctx *gin.Context) {
	token := ctx.Param("token")

	if err := c.authService.VerifyEmail(ctx.Request.Context(), token); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Email verified. Your account is awaiting admin approval."))
}

// GetProfile returns the authenticated account
// @Summary Get own profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Router /profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	userID := ctx.GetInt64(middleware.ContextUserID)

	resp, err := c.authService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
