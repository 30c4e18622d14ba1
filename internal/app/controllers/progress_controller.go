package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kaganm/classpulse/internal/app/models"
	"github.com/kaganm/classpulse/internal/app/models/dto"
	"github.com/kaganm/classpulse/internal/app/services"
	"github.com/kaganm/classpulse/internal/middleware"
)

// ProgressController handles daily progress endpoints
type ProgressController struct {
	progressService *services.ProgressService
	logger          zerolog.Logger
}

// NewProgressController creates a new ProgressController
func NewProgressController(progressService *services.ProgressService, logger zerolog.Logger) *ProgressController {
	return &ProgressController{
		progressService: progressService,
		logger:          logger,
	}
}

// GetByStudent lists a student's daily progress entries
// @Summary List daily progress for a student
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param date query string false "Filter to a single date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.DailyProgress}
// @Failure 404 {object} dto.ErrorResponse
// @Router /progress/student/{studentId} [get]
func (c *ProgressController) GetByStudent(ctx *gin.Context) {
	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	entries, err := c.progressService.GetByStudent(ctx.Request.Context(), studentID, ctx.Query("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if entries == nil {
		entries = []models.DailyProgress{}
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entries))
}

// Create records a daily progress entry
// @Summary Record daily progress
// @Description One entry per student per date; a second attempt returns 409
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDailyProgressRequest true "Progress entry"
// @Success 201 {object} dto.APIResponse{data=models.DailyProgress}
// @Failure 409 {object} dto.ErrorResponse
// @Router /progress [post]
func (c *ProgressController) Create(ctx *gin.Context) {
	var req dto.CreateDailyProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	entry, err := c.progressService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(entry))
}

// Update modifies an existing progress entry
// @Summary Update a daily progress entry
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param request body dto.UpdateDailyProgressRequest true "Updated entry"
// @Success 200 {object} dto.APIResponse{data=models.DailyProgress}
// @Failure 404 {object} dto.ErrorResponse
// @Router /progress/{id} [put]
func (c *ProgressController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateDailyProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	entry, err := c.progressService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entry))
}
