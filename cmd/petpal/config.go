package main

import (
	"log/slog"

	"github.com/petpal/petpal/pkg/clientip"
	"github.com/petpal/petpal/pkg/config"
	"github.com/petpal/petpal/pkg/cookie"
	"github.com/petpal/petpal/pkg/email"
	"github.com/petpal/petpal/pkg/httpserver"
	"github.com/petpal/petpal/pkg/logger"
	"github.com/petpal/petpal/pkg/pg"
	"github.com/petpal/petpal/pkg/ratelimiter"
	"github.com/petpal/petpal/pkg/redis"
	"github.com/petpal/petpal/pkg/requestid"
	"github.com/petpal/petpal/svc/auth"
)

type appConfig struct {
	Service string `env:"SERVICE_NAME" envDefault:"petpal"`

	Auth     auth.Config
	Cookie   cookie.Config
	Email    email.Config
	DB       pg.Config
	Redis    redis.Config
	HTTP     httpserver.Config
	ClientIP clientip.Config

	// AuthRateLimit bounds credential endpoints per client IP and path.
	AuthRateLimit ratelimiter.Config `envPrefix:"AUTH_RATE_LIMIT_"`
}

func loadConfig(envFiles []string) (appConfig, error) {
	var cfg appConfig
	err := config.Load(&cfg, config.WithEnvFiles(envFiles...))
	return cfg, err
}

func newLogger(cfg appConfig) *slog.Logger {
	log := logger.New(
		logger.WithEnvironment(cfg.Auth.AppEnv, cfg.Service),
		logger.WithContextExtractors(requestid.LogExtractor()),
	)
	logger.SetAsDefault(log)
	return log
}
