package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/api"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/config"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/logger"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/picklist"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/repository/postgres"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/service"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/tba"
)

func main() {
	// Best effort; production sets real env vars
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Setup(cfg.Environment)

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Initialize repositories and the pick-list file store
	repos := postgres.NewRepositories(db)

	files, err := picklist.NewFileStore(cfg.PickListDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open pick list store")
	}

	// The schedule provider is optional; without an auth key the backend
	// serves training data only.
	var schedule service.ScheduleProvider
	if cfg.TBAAuthKey != "" {
		schedule = tba.NewClient(cfg.TBABaseURL, cfg.TBAAuthKey)
	}

	// Initialize services and router
	services := service.NewServices(repos, files, schedule)
	router := api.NewRouter(services, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
