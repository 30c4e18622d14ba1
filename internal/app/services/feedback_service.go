package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaganm/classpulse/internal/app/models"
	"github.com/kaganm/classpulse/internal/app/models/dto"
	"github.com/kaganm/classpulse/internal/app/repositories"
	"github.com/kaganm/classpulse/internal/pkg/apperrors"
	"github.com/kaganm/classpulse/internal/pkg/helpers"
)

// FeedbackService handles weekly feedback entries
type FeedbackService struct {
	feedbackRepo *repositories.WeeklyFeedbackRepository
	studentRepo  *repositories.StudentRepository
	logger       zerolog.Logger
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(
	feedbackRepo *repositories.WeeklyFeedbackRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		studentRepo:  studentRepo,
		logger:       logger,
	}
}

// Create records weekly feedback for a student. The week start must be a
// Sunday; the week end (Thursday) is derived here, never taken from the
// request. A second entry for the same student and week surfaces as
// ErrDuplicateEntry from the repository.
func (s *FeedbackService) Create(ctx context.Context, req *dto.CreateWeeklyFeedbackRequest) (*models.WeeklyFeedback, error) {
	weekStart, err := helpers.ParseDate(req.WeekStart)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if err := helpers.ValidateWeekStart(weekStart); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	entry := &models.WeeklyFeedback{
		StudentID:     req.StudentID,
		WeekStart:     weekStart,
		WeekEnd:       helpers.WeekEnd(weekStart),
		Summary:       req.Summary,
		Strengths:     req.Strengths,
		Improvements:  req.Improvements,
		TeacherNotes:  req.TeacherNotes,
		NextWeekFocus: req.NextWeekFocus,
	}
	if err := s.feedbackRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", entry.StudentID).Str("weekStart", req.WeekStart).Msg("Weekly feedback recorded")
	return entry, nil
}

// GetByStudent lists a student's feedback entries, optionally filtered to a
// single week start given as YYYY-MM-DD
func (s *FeedbackService) GetByStudent(ctx context.Context, studentID int64, weekStart string) ([]models.WeeklyFeedback, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	var filter *time.Time
	if weekStart != "" {
		parsed, err := helpers.ParseDate(weekStart)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		filter = &parsed
	}

	return s.feedbackRepo.GetByStudent(ctx, studentID, filter)
}

// Update changes the content of an existing feedback entry. The student and
// week key stay fixed.
func (s *FeedbackService) Update(ctx context.Context, id int64, req *dto.UpdateWeeklyFeedbackRequest) (*models.WeeklyFeedback, error) {
	entry, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Summary = req.Summary
	entry.Strengths = req.Strengths
	entry.Improvements = req.Improvements
	entry.TeacherNotes = req.TeacherNotes
	entry.NextWeekFocus = req.NextWeekFocus

	if err := s.feedbackRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
