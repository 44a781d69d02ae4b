package auth

import (
	"strings"
	"time"
)

// DevSecret signs tokens when no secret is configured outside production.
const DevSecret = "dev_jwt_secret"

const (
	EnvProduction = "production"

	defaultBaseURL = "http://localhost:3000"
)

type Config struct {
	JWTSecret      string `env:"JWT_SECRET"`
	NextAuthSecret string `env:"NEXTAUTH_SECRET"`
	AppEnv         string `env:"APP_ENV" envDefault:"development"`

	// AppBaseURL prefixes reset links. NEXTAUTH_URL and FRONTEND_URL are
	// accepted as fallbacks.
	AppBaseURL  string `env:"APP_BASE_URL"`
	NextAuthURL string `env:"NEXTAUTH_URL"`
	FrontendURL string `env:"FRONTEND_URL"`

	BcryptCost    int           `env:"BCRYPT_COST" envDefault:"10"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"1h"`
}

func (c Config) IsProduction() bool {
	return c.AppEnv == EnvProduction || c.AppEnv == "prod"
}

// ResolveSecret returns JWT_SECRET, then NEXTAUTH_SECRET, then DevSecret.
// insecure is true when DevSecret is used. In production the fallback is
// refused with ErrInsecureSecret.
func (c Config) ResolveSecret() (secret string, insecure bool, err error) {
	switch {
	case c.JWTSecret != "":
		return c.JWTSecret, false, nil
	case c.NextAuthSecret != "":
		return c.NextAuthSecret, false, nil
	case c.IsProduction():
		return "", true, ErrInsecureSecret
	default:
		return DevSecret, true, nil
	}
}

// BaseURL returns the application URL used in emailed links, without a trailing slash.
func (c Config) BaseURL() string {
	for _, u := range []string{c.AppBaseURL, c.NextAuthURL, c.FrontendURL} {
		if u != "" {
			return strings.TrimRight(u, "/")
		}
	}
	return defaultBaseURL
}

func (c Config) withDefaults() Config {
	if c.BcryptCost == 0 {
		c.BcryptCost = 10
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = 7 * 24 * time.Hour
	}
	if c.ResetTokenTTL <= 0 {
		c.ResetTokenTTL = time.Hour
	}
	return c
}
