package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/petpal/petpal/handler"
	"github.com/petpal/petpal/modules/account"
	"github.com/petpal/petpal/modules/catalog"
	"github.com/petpal/petpal/pkg/clientip"
	"github.com/petpal/petpal/pkg/httpserver"
	"github.com/petpal/petpal/pkg/requestid"
)

type routerDeps struct {
	log       *slog.Logger
	clientIP  *clientip.Resolver
	accounts  *account.Service
	catalog   *catalog.Service
	readiness []func(context.Context) error
}

func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	if deps.clientIP != nil {
		r.Use(deps.clientIP.Middleware)
	}
	r.Use(middleware.Recoverer)
	r.MethodNotAllowed(handler.MethodNotAllowed)
	r.NotFound(handler.NotFound)

	r.Get("/health/live", httpserver.HealthCheckHandler(deps.log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(deps.log, deps.readiness...))

	r.Route("/api", func(api chi.Router) {
		deps.accounts.Routes(api)
		deps.catalog.Routes(api)
	})

	return r
}
