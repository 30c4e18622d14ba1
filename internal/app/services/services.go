package services

import (
	"github.com/rs/zerolog"

	"github.com/kaganm/classpulse/internal/app/repositories"
	"github.com/kaganm/classpulse/internal/pkg/auth"
	"github.com/kaganm/classpulse/internal/pkg/email"
)

// Services holds all the service instances
type Services struct {
	AuthService     *AuthService
	StudentService  *StudentService
	ProgressService *ProgressService
	FeedbackService *FeedbackService
	AdminService    *AdminService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	emailSvc email.Service,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService:     NewAuthService(repos.UserRepository, repos.VerificationTokenRepository, jwtService, emailSvc, logger),
		StudentService:  NewStudentService(repos.StudentRepository, repos.UserRepository, logger),
		ProgressService: NewProgressService(repos.DailyProgressRepository, repos.StudentRepository, logger),
		FeedbackService: NewFeedbackService(repos.WeeklyFeedbackRepository, repos.StudentRepository, logger),
		AdminService:    NewAdminService(repos.UserRepository, emailSvc, logger),
	}
}
