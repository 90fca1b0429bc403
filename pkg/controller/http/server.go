package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/uncal-lab/flowcanvas/pkg/usecase"
	"github.com/uncal-lab/flowcanvas/pkg/utils/logging"
)

type Server struct {
	router     *chi.Mux
	uc         *usecase.UseCases
	authSecret []byte
}

type Options func(*Server)

// WithAuthSecret enables bearer-token authentication for the API routes.
// Tokens are HS256 JWTs signed with the secret.
func WithAuthSecret(secret []byte) Options {
	return func(s *Server) {
		s.authSecret = secret
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		if len(s.authSecret) > 0 {
			r.Use(authMiddleware(s.authSecret))
		}

		r.Route("/components", func(r chi.Router) {
			r.Get("/", listComponentTypesHandler(uc))
			r.Post("/", createComponentTypeHandler(uc))
			r.Delete("/{typeID}", deleteComponentTypeHandler(uc))
		})

		r.Route("/projects/files/{fileID}", func(r chi.Router) {
			r.Get("/canvas", getCanvasHandler(uc))
			r.Put("/", putCanvasHandler(uc))
			r.Post("/save-scenario", saveScenarioHandler(uc))
			r.Get("/executions", listExecutionsHandler(uc))
		})

		r.Route("/workspace", func(r chi.Router) {
			r.Get("/", getWorkspaceHandler(uc))
			r.Put("/", putWorkspaceHandler(uc))
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
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
