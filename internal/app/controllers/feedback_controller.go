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

// FeedbackController handles weekly feedback endpoints
type FeedbackController struct {
	feedbackService *services.FeedbackService
	logger          zerolog.Logger
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService *services.FeedbackService, logger zerolog.Logger) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// GetByStudent lists a student's weekly feedback entries
// @Summary List weekly feedback for a student
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param weekStart query string false "Filter to a single week (Sunday, YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.WeeklyFeedback}
// @Failure 404 {object} dto.ErrorResponse
// @Router /feedback/student/{studentId} [get]
func (c *FeedbackController) GetByStudent(ctx *gin.Context) {
	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	entries, err := c.feedbackService.GetByStudent(ctx.Request.Context(), studentID, ctx.Query("weekStart"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if entries == nil {
		entries = []models.WeeklyFeedback{}
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entries))
}

// Create records weekly feedback
// @Summary Record weekly feedback
// @Description One entry per student per week; the week runs Sunday through Thursday
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateWeeklyFeedbackRequest true "Feedback entry"
// @Success 201 {object} dto.APIResponse{data=models.WeeklyFeedback}
// @Failure 409 {object} dto.ErrorResponse
// @Router /feedback [post]
func (c *FeedbackController) Create(ctx *gin.Context) {
	var req dto.CreateWeeklyFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	entry, err := c.feedbackService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(entry))
}

// Update modifies an existing feedback entry
// @Summary Update a weekly feedback entry
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param request body dto.UpdateWeeklyFeedbackRequest true "Updated entry"
// @Success 200 {object} dto.APIResponse{data=models.WeeklyFeedback}
// @Failure 404 {object} dto.ErrorResponse
// @Router /feedback/{id} [put]
func (c *FeedbackController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateWeeklyFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	entry, err := c.feedbackService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entry))
}
