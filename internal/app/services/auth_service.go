package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaganm/classpulse/internal/app/models"
	"github.com/kaganm/classpulse/internal/app/models/dto"
	"github.com/kaganm/classpulse/internal/app/repositories"
	"github.com/kaganm/classpulse/internal/pkg/apperrors"
	"github.com/kaganm/classpulse/internal/pkg/auth"
	"github.com/kaganm/classpulse/internal/pkg/email"
)

// VerificationTokenTTL is how long an email verification link stays usable.
const VerificationTokenTTL = 24 * time.Hour

// AuthService handles signup, login and email verification
type AuthService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.VerificationTokenRepository
	jwtService *auth.JWTService
	emailSvc   email.Service
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.VerificationTokenRepository,
	jwtService *auth.JWTService,
	emailSvc email.Service,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		emailSvc:   emailSvc,
		logger:     logger,
	}
}

// Login authenticates an account by email, password and role and returns a
// signed session token. Unknown email, wrong role and wrong password all
// return ErrInvalidCredentials so the response does not reveal which part
// failed. An account that exists but is not yet usable returns
// ErrAccountNotActive instead.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if !req.Role.Valid() {
		return nil, apperrors.NewBadRequestError("unknown role")
	}

	user, err := s.userRepo.GetByEmailAndRole(ctx, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.CanAuthenticate() {
		return nil, apperrors.ErrAccountNotActive
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds, the timestamp is advisory
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login timestamp")
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.NewUserResponse(user),
	}, nil
}

// SignupTeacher registers a pending teacher account
func (s *AuthService) SignupTeacher(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	return s.signup(ctx, req, models.RoleTeacher)
}

// SignupParent registers a pending parent account
func (s *AuthService) SignupParent(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	return s.signup(ctx, req, models.RoleParent)
}

func (s *AuthService) signup(ctx context.Context, req *dto.SignupRequest, role models.RoleType) (*dto.SignupResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
		Status:   models.StatusPending,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := email.GenerateVerificationToken()
	if err != nil {
		return nil, err
	}
	if err := s.tokenRepo.CreateToken(ctx, user.ID, token, time.Now().Add(VerificationTokenTTL)); err != nil {
		return nil, err
	}

	// Fire and forget, signup never fails because the mail server is down
	go func() {
		if err := s.emailSvc.SendVerificationEmail(user.Email, user.Name, token); err != nil {
			s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to send verification email")
		}
	}()

	s.logger.Info().Int64("userId", user.ID).Str("role", string(role)).Msg("New signup pending approval")

	return &dto.SignupResponse{
		UserID:  user.ID,
		Status:  string(models.StatusPending),
		Message: "Signup received. Verify your email, then wait for admin approval.",
	}, nil
}

// VerifyEmail consumes a verification token and marks the owning account's
// email as verified. Expired tokens are deleted on sight.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	userID, expiryDate, err := s.tokenRepo.GetTokenInfo(ctx, token)
	if err != nil {
		return err
	}

	if time.Now().After(expiryDate) {
		if delErr := s.tokenRepo.DeleteToken(ctx, token); delErr != nil {
			s.logger.Warn().Err(delErr).Msg("Failed to delete expired verification token")
		}
		return apperrors.ErrEmailTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return apperrors.ErrEmailAlreadyVerified
	}

	if err := s.userRepo.MarkEmailVerified(ctx, userID); err != nil {
		return err
	}
	if err := s.tokenRepo.DeleteTokensByUserID(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", userID).Msg("Failed to clean up verification tokens")
	}

	s.logger.Info().Int64("userId", userID).Msg("Email verified")
	return nil
}

// GetProfile returns the current account
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}
