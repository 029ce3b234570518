package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lendora/loanflow/internal/http/handlers"
	httpmiddleware "github.com/lendora/loanflow/internal/http/middleware"
	"github.com/lendora/loanflow/internal/leads"
	"github.com/lendora/loanflow/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger       *logging.Logger
	ChatHandler  *handlers.ChatHandler
	LeadsHandler *leads.Handler

	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// ChatRatePerSecond caps per-IP chat traffic; zero disables the
	// limiter (tests, local dev).
	ChatRatePerSecond float64
	ChatBurst         int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.ChatHandler != nil {
			chat := api.With()
			if cfg.ChatRatePerSecond > 0 {
				burst := cfg.ChatBurst
				if burst <= 0 {
					burst = 10
				}
				chat = api.With(httpmiddleware.RateLimit(cfg.ChatRatePerSecond, burst))
			}
			chat.Post("/chat", cfg.ChatHandler.HandleChat)
		}
		if cfg.LeadsHandler != nil {
			api.Get("/leads", cfg.LeadsHandler.ListLeads)
			api.Get("/leads/{id}", cfg.LeadsHandler.GetLead)
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
