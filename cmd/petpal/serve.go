package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/petpal/petpal/db/migrations"
	"github.com/petpal/petpal/modules/account"
	"github.com/petpal/petpal/modules/catalog"
	"github.com/petpal/petpal/pkg/clientip"
	"github.com/petpal/petpal/pkg/cookie"
	"github.com/petpal/petpal/pkg/email"
	"github.com/petpal/petpal/pkg/httpserver"
	"github.com/petpal/petpal/pkg/logger"
	"github.com/petpal/petpal/pkg/pg"
	"github.com/petpal/petpal/pkg/ratelimiter"
	"github.com/petpal/petpal/pkg/redis"
	"github.com/petpal/petpal/pkg/session"
	"github.com/petpal/petpal/svc/auth"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API",
		Flags: []cli.Flag{
			envFileFlag(),
			&cli.BoolFlag{
				Name:    "migrate",
				Usage:   "apply pending migrations before serving",
				EnvVars: []string{"PETPAL_AUTO_MIGRATE"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c.StringSlice("env-file"))
			if err != nil {
				return err
			}
			log := newLogger(cfg)
			return serve(c.Context, cfg, log, c.Bool("migrate"))
		},
	}
}

type stores struct {
	users   auth.Storage
	catalog catalog.Storage
	limits  ratelimiter.Store
	checks  []func(context.Context) error
	closers []func()
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func openStores(ctx context.Context, cfg appConfig, log *slog.Logger, migrate bool) (*stores, error) {
	st := &stores{}
	fail := func(err error) (*stores, error) {
		st.close()
		return nil, err
	}

	if cfg.DB.Enabled() {
		pool, err := pg.Connect(ctx, cfg.DB)
		if err != nil {
			return fail(err)
		}
		st.closers = append(st.closers, pool.Close)
		if migrate {
			if err := pg.Migrate(ctx, pool, migrations.FS, cfg.DB, log); err != nil {
				return fail(err)
			}
		}
		st.users = auth.NewPostgresStorage(pool)
		st.catalog = catalog.NewPostgresStorage(pool)
		st.checks = append(st.checks, pg.Healthcheck(pool))
	} else {
		log.WarnContext(ctx, "DATABASE_URL is not set, using in-memory storage")
		st.users = auth.NewMemoryStorage()
		st.catalog = catalog.NewMemoryStorage()
	}

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return fail(err)
		}
		st.closers = append(st.closers, func() { _ = client.Close() })
		st.limits = ratelimiter.NewRedisStore(client)
		st.checks = append(st.checks, redis.Healthcheck(client))
	} else {
		mem := ratelimiter.NewMemoryStore()
		st.closers = append(st.closers, mem.Close)
		st.limits = mem
	}

	return st, nil
}

func serve(ctx context.Context, cfg appConfig, log *slog.Logger, migrate bool) error {
	st, err := openStores(ctx, cfg, log, migrate)
	if err != nil {
		return err
	}
	defer st.close()

	mailer, err := email.NewFromConfig(cfg.Email)
	if err != nil {
		return fmt.Errorf("mail sender: %w", err)
	}

	authSvc, err := auth.NewService(cfg.Auth, st.users, mailer, auth.WithLogger(log))
	if err != nil {
		return err
	}

	limiter, err := ratelimiter.NewBucket(st.limits, cfg.AuthRateLimit)
	if err != nil {
		return err
	}

	transport := session.NewCompositeTransport(
		session.NewCookieTransport(cookie.NewFromConfig(cfg.Cookie), auth.SessionCookieName),
		session.NewHeaderTransport("Authorization"),
	)

	router := newRouter(routerDeps{
		log:      log,
		clientIP: clientip.NewFromConfig(cfg.ClientIP),
		accounts: account.NewService(authSvc, transport,
			account.WithLogger(log),
			account.WithRateLimit(ratelimiter.Middleware(limiter,
				ratelimiter.Composite(ratelimiter.ByIP(), ratelimiter.ByPath()))),
		),
		catalog: catalog.NewService(st.catalog, auth.RequireAuth(authSvc, transport),
			catalog.WithLogger(log)),
		readiness: st.checks,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log.With(logger.Component("http"))))
	return srv.Run(ctx, router)
}
