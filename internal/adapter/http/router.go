package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tobostore/Catatan-Keuangan/internal/adapter/http/handler"
	"github.com/tobostore/Catatan-Keuangan/internal/adapter/http/middleware"
	"github.com/tobostore/Catatan-Keuangan/internal/infrastructure/auth"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TransactionHandler *handler.TransactionHandler
	AccountHandler     *handler.AccountHandler
	ReportHandler      *handler.ReportHandler
	AuthHandler        *handler.AuthHandler
	HealthHandler      *handler.HealthHandler
	Sessions           *auth.SessionManager
	IdempotencyStore   middleware.IdempotencyStore
	IdempotencyTTL     time.Duration
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	requireAuth := middleware.AuthMiddleware(cfg.Sessions)

	// Session endpoints
	r.Route("/api", func(r chi.Router) {
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/logout", cfg.AuthHandler.Logout)
		r.With(requireAuth).Get("/me", cfg.AuthHandler.Me)
	})

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(requireAuth)

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Create)
			r.Get("/", cfg.TransactionHandler.List)
			r.Put("/{id}", cfg.TransactionHandler.Update)
			r.Delete("/{id}", cfg.TransactionHandler.Delete)
		})

		// Accounts
		r.Get("/accounts", cfg.AccountHandler.List)

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/summary", cfg.ReportHandler.Summary)
			r.Get("/monthly", cfg.ReportHandler.Monthly)
			r.Get("/accounts", cfg.ReportHandler.Accounts)
		})
	})

	return r
}
