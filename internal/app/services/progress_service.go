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

// ProgressService handles daily progress entries
type ProgressService struct {
	progressRepo *repositories.DailyProgressRepository
	studentRepo  *repositories.StudentRepository
	logger       zerolog.Logger
}

// NewProgressService creates a new ProgressService
func NewProgressService(
	progressRepo *repositories.DailyProgressRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		studentRepo:  studentRepo,
		logger:       logger,
	}
}

// Create records a daily progress entry for a student. A second entry for the
// same student and date surfaces as ErrDuplicateEntry from the repository.
func (s *ProgressService) Create(ctx context.Context, req *dto.CreateDailyProgressRequest) (*models.DailyProgress, error) {
	entryDate, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if !req.Attendance.Valid() {
		return nil, apperrors.NewBadRequestError("attendance must be PRESENT, ABSENT or LATE")
	}

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	entry := &models.DailyProgress{
		StudentID:  req.StudentID,
		EntryDate:  entryDate,
		Attendance: req.Attendance,
		Activities: dto.ToActivities(req.Activities),
	}
	if err := s.progressRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", entry.StudentID).Str("date", req.Date).Msg("Daily progress recorded")
	return entry, nil
}

// GetByStudent lists a student's entries, optionally filtered to a single
// date given as YYYY-MM-DD
func (s *ProgressService) GetByStudent(ctx context.Context, studentID int64, date string) ([]models.DailyProgress, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	var filter *time.Time
	if date != "" {
		parsed, err := helpers.ParseDate(date)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		filter = &parsed
	}

	return s.progressRepo.GetByStudent(ctx, studentID, filter)
}

// Update changes the attendance and activities of an existing entry
func (s *ProgressService) Update(ctx context.Context, id int64, req *dto.UpdateDailyProgressRequest) (*models.DailyProgress, error) {
	if !req.Attendance.Valid() {
		return nil, apperrors.NewBadRequestError("attendance must be PRESENT, ABSENT or LATE")
	}

	entry, err := s.progressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Attendance = req.Attendance
	entry.Activities = dto.ToActivities(req.Activities)

	if err := s.progressRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
