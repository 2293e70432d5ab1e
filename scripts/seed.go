// Package scripts provides database seeding for initial data.
//
// Seeds work like migrations: each one is recorded in the seeds table after
// it succeeds and is skipped on later starts.
package scripts

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/auth"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/config"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/database"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/repository"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// Profile of the seeded administrator. Only email, password and phone are configurable.
const (
	adminFirstName   = "Site"
	adminLastName    = "Admin"
	adminPhone       = "0500000000"
	adminCountry     = "Israel"
	adminCity        = "Tel Aviv"
	adminStreet      = "Rothschild"
	adminHouseNumber = 1
	adminZip         = "0"
)

// Seeder handles database seeding.
type Seeder struct {
	db          *database.Pool
	users       repository.UserRepository
	settings    config.SeedSettings
	passwordCfg *auth.PasswordConfig
}

// NewSeeder creates a new seeder.
//
// Parameters:
//   - db: A database connection pool to use for seeding
//   - settings: Which seeds run and the admin credentials
//   - passwordCfg: Hashing parameters for the admin password
//
// Returns:
//   - *Seeder: A configured seeder
func NewSeeder(db *database.Pool, settings config.SeedSettings, passwordCfg *auth.PasswordConfig) *Seeder {
	if passwordCfg == nil {
		passwordCfg = auth.DefaultPasswordConfig()
	}
	return &Seeder{
		db:          db,
		users:       repository.NewUserRepository(db),
		settings:    settings,
		passwordCfg: passwordCfg,
	}
}

// SeedDatabase runs every seed that hasn't been executed yet.
// It does nothing when seeding is disabled.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//
// Returns:
//   - error: Any error encountered during seeding, nil if successful
func (s *Seeder) SeedDatabase(ctx context.Context) error {
	if !s.settings.Enabled {
		log.Debug().Msg("Database seeding disabled")
		return nil
	}

	log.Info().Msg("Seeding database")
	startTime := time.Now()

	if err := s.createSeedsTable(ctx); err != nil {
		return fmt.Errorf("failed to create seeds table: %w", err)
	}

	executedSeeds, err := s.getExecutedSeeds(ctx)
	if err != nil {
		return fmt.Errorf("failed to get executed seeds: %w", err)
	}

	seeds := []struct {
		Name     string
		SeedFunc func(ctx context.Context) error
	}{
		{"admin_account", s.seedAdmin},
	}

	for _, seed := range seeds {
		if executedSeeds[seed.Name] {
			log.Debug().Str("seed", seed.Name).Msg("Seed already executed")
			continue
		}

		log.Info().Str("seed", seed.Name).Msg("Running seed")
		if err := seed.SeedFunc(ctx); err != nil {
			return fmt.Errorf("seed %s failed: %w", seed.Name, err)
		}
		if err := s.recordSeed(ctx, seed.Name); err != nil {
			return err
		}
	}

	log.Info().
		Dur("duration", time.Since(startTime)).
		Msg("Database seeding completed")

	return nil
}

// createSeedsTable creates the seeds table if it doesn't exist.
func (s *Seeder) createSeedsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS seeds (
			name VARCHAR(255) PRIMARY KEY,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// getExecutedSeeds returns the names of the recorded seeds.
func (s *Seeder) getExecutedSeeds(ctx context.Context) (map[string]bool, error) {
	query := `SELECT name FROM seeds`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	seeds := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		seeds[name] = true
	}

	return seeds, rows.Err()
}

func (s *Seeder) recordSeed(ctx context.Context, name string) error {
	query := s.db.Rebind(`INSERT INTO seeds (name) VALUES ($1)`)
	if _, err := s.db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("failed to record seed: %w", err)
	}
	return nil
}

// seedAdmin creates the configured administrator account. An existing
// account with the same email counts as already seeded.
func (s *Seeder) seedAdmin(ctx context.Context) error {
	phone := s.settings.AdminPhone
	if phone != "" && !utils.IsIsraeliPhone(phone) {
		log.Warn().
			Str("phone", phone).
			Msg("Configured admin phone is not a valid mobile number, using the default")
		phone = ""
	}
	if phone == "" {
		phone = adminPhone
	}
	houseNumber := adminHouseNumber

	user := models.NewUser(&models.UserRegistration{
		Name:  models.Name{First: adminFirstName, Last: adminLastName},
		Email: s.settings.AdminEmail,
		Phone: phone,
		Address: models.Address{
			Country:     adminCountry,
			City:        adminCity,
			Street:      adminStreet,
			HouseNumber: &houseNumber,
			Zip:         adminZip,
		},
	})
	user.IsAdmin = true
	user.IsBusiness = true

	hash, salt, err := auth.HashPassword(s.settings.AdminPassword, s.passwordCfg)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	user.PasswordHash = hash
	user.Salt = salt

	if err := s.users.Create(ctx, user); err != nil {
		if utils.IsDuplicateError(err) {
			log.Warn().
				Str("email", utils.MaskEmail(user.Email)).
				Msg("Admin account already exists, skipping")
			return nil
		}
		return err
	}

	log.Info().
		Str("user_id", user.ID).
		Str("email", utils.MaskEmail(user.Email)).
		Msg("Admin account seeded")

	return nil
}
