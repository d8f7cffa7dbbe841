package seed

import (
	"context"

	"github.com/rs/zerolog"

	appModels "github.com/dayotunde25/bsf/internal/app/models"
	appRepos "github.com/dayotunde25/bsf/internal/app/repositories"
	"github.com/dayotunde25/bsf/internal/config"
	"github.com/dayotunde25/bsf/internal/db"
	"github.com/dayotunde25/bsf/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account if it does not exist.
// Runs after migrations on every startup; an existing admin is left untouched.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(database)

	lgr.Info().Msg("Checking/Creating default admin account...")

	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Default admin already present")
		return nil
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Creating default admin user...")

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Email:                cfg.Admin.Email,
		Password:             hashedPassword,
		FirstName:            cfg.Admin.FirstName,
		LastName:             cfg.Admin.LastName,
		Role:                 appModels.RoleAdmin,
		CanPostAnnouncements: true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return err
	}

	lgr.Info().Int64("userID", admin.ID).Msg("Default admin user created")
	return nil
}
