package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/api/handlers"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/config"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
	}).Handler)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	scanHandler := handlers.NewScanHandler(services.Ingest)
	teamHandler := handlers.NewTeamHandler(services.Team, services.Stats)
	strategyHandler := handlers.NewStrategyHandler(services.Stats, services.PickList)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/scanner", func(r chi.Router) {
			r.Post("/scans", scanHandler.Submit)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.List)
			r.Route("/{teamNumber}", func(r chi.Router) {
				r.Get("/", teamHandler.Get)
				r.Post("/pit", teamHandler.UpdatePit)
				r.Post("/human-player", teamHandler.AddHumanPlayer)
				r.Get("/path", teamHandler.GetPath)
				r.Get("/stats", teamHandler.Stats)
			})
		})

		r.Route("/strategy", func(r chi.Router) {
			r.Get("/rankings", strategyHandler.Rankings)
			r.Get("/dashboard", strategyHandler.Dashboard)
			r.Get("/picklist", strategyHandler.PollPickList)
			r.Post("/picklist", strategyHandler.SavePickList)
		})
	})

	return r
}
