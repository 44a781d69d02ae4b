package account

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/petpal/petpal/handler"
	"github.com/petpal/petpal/pkg/binder"
	"github.com/petpal/petpal/pkg/logger"
	"github.com/petpal/petpal/pkg/session"
	"github.com/petpal/petpal/svc/auth"
)

// Service serves the account endpoints on top of *auth.Service.
type Service struct {
	auth         *auth.Service
	transport    session.Transport
	log          *slog.Logger
	errorHandler handler.ErrorHandler
	limit        func(http.Handler) http.Handler
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRateLimit guards the endpoints that accept credentials or mint reset
// tokens: register, login, forgot and reset-password.
func WithRateLimit(mw func(http.Handler) http.Handler) Option {
	return func(s *Service) {
		s.limit = mw
	}
}

func NewService(authSvc *auth.Service, transport session.Transport, opts ...Option) *Service {
	s := &Service{
		auth:      authSvc,
		transport: transport,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.errorHandler = handler.NewErrorHandler(s.log.With(logger.Component("account")), ErrorMapper)
	return s
}

// Routes registers the account endpoints on r.
func (s *Service) Routes(r chi.Router) {
	requireAuth := auth.RequireAuth(s.auth, s.transport)

	limited := r
	if s.limit != nil {
		limited = r.With(s.limit)
	}
	limited.Post("/auth/register", wrap(s, s.register))
	limited.Post("/auth/login", wrap(s, s.login))
	limited.Post("/auth/forgot", wrap(s, s.forgot))
	limited.Post("/auth/reset-password", wrap(s, s.resetPassword))

	r.Post("/auth/logout", handler.Wrap(s.logout, handler.WithErrorHandler(s.errorHandler)))

	r.With(requireAuth).Get("/me", handler.Wrap(s.me, handler.WithErrorHandler(s.errorHandler)))
	r.With(requireAuth).Post("/auth/change-password", wrap(s, s.changePassword))
	r.With(requireAuth).Post("/auth/update-profile", wrap(s, s.updateProfile))
}

// Handle returns a standalone router with the account endpoints.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(handler.MethodNotAllowed)
	r.NotFound(handler.NotFound)
	s.Routes(r)
	return r
}

func wrap[R any](s *Service, h handler.HandlerFunc[R]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinder(binder.JSON()),
		handler.WithErrorHandler(s.errorHandler),
	)
}
