package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kaganm/classpulse/internal/app/models/dto"
	"github.com/kaganm/classpulse/internal/app/services"
	"github.com/kaganm/classpulse/internal/middleware"
)

// AdminController handles account approval endpoints
type AdminController struct {
	adminService *services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// GetPendingUsers lists accounts awaiting an approval decision
// @Summary List pending accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PendingUsersResponse}
// @Router /admin/pending [get]
func (c *AdminController) GetPendingUsers(ctx *gin.Context) {
	resp, err := c.adminService.GetPendingUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Approve approves a pending account
// @Summary Approve a pending account
// @Description The account must have a verified email; approval is final
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApprovalRequest true "Account to approve"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 409 {object} dto.ErrorResponse
// @Router /admin/approve [post]
func (c *AdminController) Approve(ctx *gin.Context) {
	var req dto.ApprovalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.adminService.Approve(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Reject rejects a pending account
// @Summary Reject a pending account
// @Description Rejection is final; the account can never log in
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApprovalRequest true "Account to reject"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 409 {object} dto.ErrorResponse
// @Router /admin/reject [post]
func (c *AdminController) Reject(ctx *gin.Context) {
	var req dto.ApprovalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.adminService.Reject(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
