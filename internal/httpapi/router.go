// Package httpapi wires the HTTP surface of the contas service.
// It keeps handlers thin, delegating the file rules to the service layer.
package httpapi

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tinoosan/contas/internal/service/account"
	"github.com/tinoosan/contas/internal/service/journal"
)

// Options configures the non-API parts of the server.
type Options struct {
	// PublicDir is served at / when set; Index is its landing page.
	PublicDir string
	Index     string
	// MaxBodyBytes caps request bodies; zero means defaultMaxBody.
	MaxBodyBytes int64
	// Ready is consulted by /readyz.
	Ready []ReadyChecker
}

const defaultMaxBody = 100 << 10

// Server wires handlers and middleware using Chi.
type Server struct {
	accountSvc account.Service
	journalSvc journal.Service
	opts       Options
	log        *slog.Logger
	rt         *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
// The logger is used by request logging, panic recovery and error reporting.
func New(accountSvc account.Service, journalSvc journal.Service, opts Options, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBody
	}
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)

	s := &Server{accountSvc: accountSvc, journalSvc: journalSvc, opts: opts, rt: r, log: logger}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the API endpoints and attaches per-route middleware.
func (s *Server) routes() {
	s.rt.Route("/api", func(r chi.Router) {
		r.Use(limitBody(s.opts.MaxBodyBytes))
		// Accounts. The static /contas/saldo route wins over /contas/{codigo}.
		r.Get("/contas", s.listAccounts)
		r.With(s.validatePostAccount()).Post("/contas", s.postAccount)
		r.With(s.validateSetBalance()).Put("/contas/saldo", s.setBalance)
		r.With(s.validateSetDescription()).Put("/contas/{codigo}", s.setDescription)
		r.Delete("/contas/{codigo}", s.deleteAccount)
		// Statement
		r.With(s.validateListMovements()).Get("/extrato", s.listMovements)
		r.With(s.validatePostMovement()).Post("/extrato", s.postMovement)
		r.Delete("/extrato/{id}", s.deleteMovement)
	})
	// Health and metrics
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Handle("/metrics", metricsHandler())
	if s.opts.PublicDir != "" {
		s.rt.Get("/", s.index)
		s.rt.Handle("/*", staticHandler(s.opts.PublicDir))
	}
}
