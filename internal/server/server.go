// Package server provides the HTTP server of the BizCards API.
// It wires configuration, storage, services and handlers together and
// manages the server lifecycle.
//
// Initialization order: database, auth providers, repositories, services,
// handlers, routes. Every dependency is built here and passed explicitly.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/auth"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/config"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/database"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/handlers"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/middleware"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/repository"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/service"
	"github.com/yasinhessnawi1/BizCards_Backend/migrations"
	"github.com/yasinhessnawi1/BizCards_Backend/scripts"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	// UserHandler manages registration, login and user administration
	UserHandler *handlers.UserHandler

	// CardHandler manages business cards and likes
	CardHandler *handlers.CardHandler
}

// AuthProviders contains all authentication providers for the application.
type AuthProviders struct {
	// JWTService handles JWT token generation and validation
	JWTService *auth.JWTService

	// PasswordCfg contains password hashing configuration
	PasswordCfg *auth.PasswordConfig
}

// Repositories holds the data access layer.
type Repositories struct {
	Users repository.UserRepository
	Cards repository.CardRepository
}

// Services holds the business logic layer.
type Services struct {
	Auth  *service.AuthService
	Users *service.UserService
	Cards *service.CardService
}

// Server represents the API server.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Db provides database access
	Db *database.Pool

	// health is pinged by GET /health
	health DBHealthChecker

	// router handles HTTP routing
	router chi.Router

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	authProviders *AuthProviders
	repositories  *Repositories
	services      *Services
	metrics       *middleware.Metrics

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components.
//
// Parameters:
//   - cfg: Application configuration including database, server, and auth settings
//
// Returns:
//   - A fully initialized Server instance ready to start
//   - An error if initialization of any component fails
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	if err := s.setupDatabase(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	s.setupRepositories()

	if err := s.setupComponents(); err != nil {
		s.Db.Close()
		return nil, err
	}

	return s, nil
}

// setupComponents builds everything above the repositories.
func (s *Server) setupComponents() error {
	if s.repositories == nil {
		return errors.New("repositories not initialized")
	}

	s.setupAuthProviders()

	if err := s.setupServices(); err != nil {
		return fmt.Errorf("failed to set up services: %w", err)
	}

	s.setupHandlers()

	if s.health == nil && s.Db != nil {
		s.health = s.Db
	}
	if s.metrics == nil {
		s.metrics = middleware.NewMetrics(prometheus.NewRegistry())
	}

	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         s.Config.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  s.Config.Server.ReadTimeout,
		WriteTimeout: s.Config.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return nil
}

// setupDatabase connects to the database, bootstraps the schema and seeds
// the admin account.
func (s *Server) setupDatabase(ctx context.Context) error {
	db, err := database.Connect(ctx, s.Config)
	if err != nil {
		return err
	}

	s.Db = db

	if err := migrations.NewMigrator(db).RunMigrations(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	seeder := scripts.NewSeeder(db, s.Config.Seed, auth.PasswordConfigFrom(s.Config.PasswordHash))
	if err := seeder.SeedDatabase(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to seed database: %w", err)
	}

	return nil
}

func (s *Server) setupAuthProviders() {
	s.authProviders = &AuthProviders{
		JWTService:  auth.NewJWTService(&s.Config.JWT),
		PasswordCfg: auth.PasswordConfigFrom(s.Config.PasswordHash),
	}
}

func (s *Server) setupRepositories() {
	s.repositories = &Repositories{
		Users: repository.NewUserRepository(s.Db),
		Cards: repository.NewCardRepository(s.Db),
	}
}

func (s *Server) setupServices() error {
	if s.authProviders == nil || s.authProviders.JWTService == nil {
		return errors.New("JWT service not initialized")
	}

	s.services = &Services{
		Auth: service.NewAuthService(
			s.repositories.Users,
			s.authProviders.JWTService,
			s.authProviders.PasswordCfg,
			s.Config.Security,
		),
		Users: service.NewUserService(s.repositories.Users, s.authProviders.PasswordCfg),
		Cards: service.NewCardService(s.repositories.Cards, service.NewBizNumberGenerator()),
	}

	return nil
}

func (s *Server) setupHandlers() {
	s.Handlers = &Handlers{
		UserHandler: handlers.NewUserHandler(s.services.Auth, s.services.Users),
		CardHandler: handlers.NewCardHandler(s.services.Cards),
	}
}

// Start starts the HTTP server and blocks until it fails or a shutdown
// signal (SIGINT, SIGTERM) arrives, then shuts down gracefully.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Str("environment", s.Config.App.Environment).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown waits for in-flight requests and closes the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")

	s.Db.Close()

	return nil
}
