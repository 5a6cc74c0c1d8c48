package main

import (
	api "profile-backend/cmd/api"
	"profile-backend/internal/profile/record"
	"profile-backend/internal/profile/repository"
	"profile-backend/internal/profile/schema"
	"profile-backend/internal/profile/usecase"
	"profile-backend/pkg/config"
	"profile-backend/pkg/database"
	"profile-backend/pkg/log"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger := log.New(cfg.Environment)

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Migrate database schemas
	if err := db.AutoMigrate(&record.User{}, &record.Device{}, &record.Session{}); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Generate the record schemas once, before any request is served. The
	// registry is read-only from here on.
	registry := schema.NewRegistry()
	if err := schema.RegisterProfileSchemas(registry); err != nil {
		logger.Fatal().Err(err).Msg("failed to generate record schemas")
	}
	logger.Info().Strs("schemas", registry.Names()).Msg("record schemas generated")

	// Initialize repositories (dependency injection)
	userRepo := repository.NewUserRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Initialize services
	userService := usecase.NewUserService(userRepo, sessionRepo, cfg)
	deviceService := usecase.NewDeviceService(deviceRepo)
	sessionService := usecase.NewSessionService(sessionRepo)

	// Initialize HTTP handler
	handler, err := api.NewHandler(userService, deviceService, sessionService, registry, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize handler")
	}

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
