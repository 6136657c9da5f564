package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/smallbatch-apps/cashfloat/internal/adapter/http/handler"
	"github.com/smallbatch-apps/cashfloat/internal/adapter/http/middleware"
	"github.com/smallbatch-apps/cashfloat/internal/domain"
	"github.com/smallbatch-apps/cashfloat/internal/infrastructure/auth"
	"github.com/smallbatch-apps/cashfloat/internal/infrastructure/metrics"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	EntryHandler          *handler.EntryHandler
	ExpenseHandler        *handler.ExpenseHandler
	LedgerHandler         *handler.LedgerHandler
	ReconciliationHandler *handler.ReconciliationHandler
	SettingsHandler       *handler.SettingsHandler
	POSFlowHandler        *handler.POSFlowHandler
	AuditHandler          *handler.AuditHandler
	HealthHandler         *handler.HealthHandler

	Logger           zerolog.Logger
	Metrics          *metrics.Metrics
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration

	// JWTManager enables per-request auth. When nil every request runs
	// as the static admin user.
	JWTManager *auth.JWTManager
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.JWTManager != nil {
			r.Use(middleware.Auth(cfg.JWTManager))
		} else {
			r.Use(middleware.StaticUser(&domain.User{
				ID:   "system",
				Name: "System",
				Role: domain.RoleAdmin,
			}))
		}

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotency := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotency.Wrap)
		}

		// Cash entries
		r.Route("/entries", func(r chi.Router) {
			r.Post("/cash-in", cfg.EntryHandler.RecordCashIn)
			r.Post("/", cfg.EntryHandler.Record)
			r.Get("/", cfg.EntryHandler.List)
			r.Get("/{id}", cfg.EntryHandler.Get)
			r.Patch("/{id}", cfg.EntryHandler.Patch)
			r.Delete("/{id}", cfg.EntryHandler.Delete)
		})

		// Expenses
		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", cfg.ExpenseHandler.Create)
			r.Get("/", cfg.ExpenseHandler.List)
			r.Get("/{id}", cfg.ExpenseHandler.Get)
			r.Patch("/{id}", cfg.ExpenseHandler.Patch)
			r.Post("/{id}/reimbursed", cfg.ExpenseHandler.SetReimbursed)
			r.Delete("/{id}", cfg.ExpenseHandler.Delete)
			r.Get("/{id}/receipt", cfg.ExpenseHandler.Receipt)
		})

		// Views
		r.Get("/ledger", cfg.LedgerHandler.GetLedger)
		r.Get("/summary", cfg.LedgerHandler.GetSummary)

		// Reconciliations
		r.Route("/reconciliations", func(r chi.Router) {
			r.Post("/", cfg.ReconciliationHandler.Create)
			r.Get("/", cfg.ReconciliationHandler.List)
			r.Get("/latest", cfg.ReconciliationHandler.Latest)
		})

		// Settings
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", cfg.SettingsHandler.Get)
			r.Put("/", cfg.SettingsHandler.Save)
		})

		// POS cash-in wizard
		r.Route("/pos/flows", func(r chi.Router) {
			r.Post("/", cfg.POSFlowHandler.Start)
			r.Get("/{id}", cfg.POSFlowHandler.Get)
			r.Post("/{id}/advance", cfg.POSFlowHandler.Advance)
			r.Post("/{id}/cancel", cfg.POSFlowHandler.Cancel)
		})

		// Audit trail, admin only
		r.Route("/audit-logs", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/", cfg.AuditHandler.List)
		})
	})

	return r
}
