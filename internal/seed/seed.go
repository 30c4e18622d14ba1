package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kaganm/classpulse/internal/app/models"
	"github.com/kaganm/classpulse/internal/app/repositories"
	"github.com/kaganm/classpulse/internal/config"
	"github.com/kaganm/classpulse/internal/pkg/auth"
)

// CreateDefaultData ensures the default admin account exists. Admins never go
// through signup, so the seeded account is created APPROVED with a verified
// email.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return err
	}
	if exists {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Admin account already exists, skipping seed")
		return nil
	}

	if cfg.Admin.Password == "" {
		return errors.New("admin password is empty, cannot seed admin account")
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:          cfg.Admin.Name,
		Email:         cfg.Admin.Email,
		Password:      hashed,
		Role:          models.RoleAdmin,
		Status:        models.StatusApproved,
		EmailVerified: true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Int64("adminId", admin.ID).Str("email", admin.Email).Msg("Default admin account created")
	return nil
}
