package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/kaganm/classpulse/internal/app/models"
	"github.com/kaganm/classpulse/internal/app/models/dto"
	"github.com/kaganm/classpulse/internal/app/repositories"
	"github.com/kaganm/classpulse/internal/pkg/apperrors"
)

// StudentService handles student roster operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// ListForRole returns the students visible to the caller. Teachers and admins
// see the full roster; parents only ever get their own children, filtered in
// the query itself rather than after the fact.
func (s *StudentService) ListForRole(ctx context.Context, userID int64, role models.RoleType) ([]models.Student, error) {
	if role == models.RoleParent {
		return s.studentRepo.GetByParentID(ctx, userID)
	}
	return s.studentRepo.GetAll(ctx)
}

// GetByID retrieves a single student
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// Create adds a student to the roster. A linked parent must be an existing
// parent account.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := s.checkParent(ctx, req.ParentID); err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:     req.Name,
		Grade:    req.Grade,
		ParentID: req.ParentID,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Msg("Student created")
	return student, nil
}

// Update modifies a student's name, grade or parent link
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkParent(ctx, req.ParentID); err != nil {
		return nil, err
	}

	student.Name = req.Name
	student.Grade = req.Grade
	student.ParentID = req.ParentID

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) checkParent(ctx context.Context, parentID *int64) error {
	if parentID == nil {
		return nil
	}
	parent, err := s.userRepo.GetByID(ctx, *parentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.NewBadRequestError("parent account not found")
		}
		return err
	}
	if parent.Role != models.RoleParent {
		return apperrors.NewBadRequestError("linked account is not a parent")
	}
	return nil
}
