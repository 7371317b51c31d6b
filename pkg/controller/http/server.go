package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/a11y-lab/statements/pkg/usecase"
	"github.com/a11y-lab/statements/pkg/utils/logging"
	"github.com/a11y-lab/statements/pkg/utils/safe"
)

type Server struct {
	router   *chi.Mux
	uc       *usecase.UseCases
	renderer *Renderer

	statementDefaults StatementDefaults
}

// StatementDefaults carries the configured organisation-wide statement
// defaults shown on the settings page
type StatementDefaults struct {
	Organisation     string
	ContactEmail     string
	ConformanceLevel string
	WCAGVersion      string
}

type Options func(*Server)

// WithStatementDefaults sets the configured statement defaults
func WithStatementDefaults(defaults StatementDefaults) Options {
	return func(s *Server) {
		s.statementDefaults = defaults
	}
}

func New(uc *usecase.UseCases, opts ...Options) (*Server, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	s := &Server{
		router:   r,
		uc:       uc,
		renderer: renderer,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthzHandler)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", authLoginHandler(uc.Auth))
		r.Get("/callback", authCallbackHandler(uc.Auth))
		r.Get("/logout", authLogoutHandler(uc.Auth))
	})

	// Landing page serves both signed-in and anonymous visitors
	r.Group(func(r chi.Router) {
		r.Use(optionalAuthMiddleware(uc.Auth))
		r.Get("/", s.homeHandler)
	})

	// All record pages require a session
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware(uc.Auth))
		r.Use(csrfMiddleware)

		r.Get("/dashboard", s.dashboardHandler)
		r.Get("/settings", s.settingsHandler)

		r.Route("/services", func(r chi.Router) {
			r.Get("/", s.servicesIndexHandler)
			r.Get("/details/{id}", s.servicesDetailsHandler)
			r.Get("/create", s.servicesCreateFormHandler)
			r.Post("/create", s.servicesCreateHandler)
			r.Get("/edit/{id}", s.servicesEditFormHandler)
			r.Post("/edit/{id}", s.servicesEditHandler)
			r.Get("/delete/{id}", s.servicesDeleteFormHandler)
			r.Post("/delete/{id}", s.servicesDeleteHandler)
		})

		r.Route("/issues", func(r chi.Router) {
			r.Get("/", s.issuesIndexHandler)
			r.Get("/details/{id}", s.issuesDetailsHandler)
			r.Get("/create", s.issuesCreateFormHandler)
			r.Post("/create", s.issuesCreateHandler)
			r.Get("/edit/{id}", s.issuesEditFormHandler)
			r.Post("/edit/{id}", s.issuesEditHandler)
			r.Get("/delete/{id}", s.issuesDeleteFormHandler)
			r.Post("/delete/{id}", s.issuesDeleteHandler)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		s.renderer.NotFound(w, req, s.pageData(req, "Not found"))
	})

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	safe.Write(r.Context(), w, []byte("OK"))
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
