package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kaganm/classpulse/internal/app/models"
	"github.com/kaganm/classpulse/internal/app/models/dto"
	"github.com/kaganm/classpulse/internal/app/repositories"
	"github.com/kaganm/classpulse/internal/pkg/apperrors"
	"github.com/kaganm/classpulse/internal/pkg/email"
)

// AdminService handles approval decisions on pending accounts
type AdminService struct {
	userRepo *repositories.UserRepository
	emailSvc email.Service
	logger   zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo *repositories.UserRepository,
	emailSvc email.Service,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		userRepo: userRepo,
		emailSvc: emailSvc,
		logger:   logger,
	}
}

// GetPendingUsers lists teacher and parent accounts awaiting a decision
func (s *AdminService) GetPendingUsers(ctx context.Context) (*dto.PendingUsersResponse, error) {
	users, err := s.userRepo.GetPendingUsers(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.PendingUsersResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Total: len(users),
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewUserResponse(&users[i]))
	}
	return resp, nil
}

// Approve moves a pending account to APPROVED. The account must have a
// verified email first; APPROVED is terminal.
func (s *AdminService) Approve(ctx context.Context, req *dto.ApprovalRequest) (*dto.UserResponse, error) {
	user, err := s.pendingUser(ctx, req)
	if err != nil {
		return nil, err
	}
	if !user.EmailVerified {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailNotVerified, "account cannot be approved before email verification")
	}

	if err := s.userRepo.UpdateStatus(ctx, user.ID, models.StatusApproved); err != nil {
		return nil, err
	}
	user.Status = models.StatusApproved

	go func() {
		if err := s.emailSvc.SendApprovalEmail(user.Email, user.Name); err != nil {
			s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to send approval email")
		}
	}()

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("Account approved")

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Reject moves a pending account to REJECTED. REJECTED is terminal; there is
// no path back, the person has to sign up again with a different email.
func (s *AdminService) Reject(ctx context.Context, req *dto.ApprovalRequest) (*dto.UserResponse, error) {
	user, err := s.pendingUser(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateStatus(ctx, user.ID, models.StatusRejected); err != nil {
		return nil, err
	}
	user.Status = models.StatusRejected

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("Account rejected")

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *AdminService) pendingUser(ctx context.Context, req *dto.ApprovalRequest) (*models.User, error) {
	if req.Role != models.RoleTeacher && req.Role != models.RoleParent {
		return nil, apperrors.NewBadRequestError("only teacher and parent accounts need approval")
	}

	user, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if user.Role != req.Role {
		return nil, apperrors.ErrUserNotFound
	}
	if user.Status != models.StatusPending {
		return nil, apperrors.NewCustomError(apperrors.ErrAccountNotPending, "account already has a final decision")
	}
	return user, nil
}
