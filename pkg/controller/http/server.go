package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prato-lab/prato/pkg/domain/model/whatsapp"
	"github.com/prato-lab/prato/pkg/usecase"
	"github.com/prato-lab/prato/pkg/utils/logging"
)

// WebhookUseCase is the surface the webhook controller needs from the
// use case layer.
type WebhookUseCase interface {
	ProcessTurn(ctx context.Context, msg *whatsapp.Message) (string, error)
}

type Server struct {
	router   *chi.Mux
	uc       WebhookUseCase
	messages *usecase.Messages
}

type Options func(*Server)

// WithMessages overrides the canned texts used for controller-level
// replies (unrecognized payloads and turn failures).
func WithMessages(m *usecase.Messages) Options {
	return func(s *Server) {
		s.messages = m
	}
}

func New(uc WebhookUseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:   r,
		uc:       uc,
		messages: usecase.DefaultMessages(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Post("/hooks/whatsapp", s.handleWebhook)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck
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
