package cookie

// Config holds cookie defaults loaded from the environment. Path and SameSite
// are not configurable; callers pin them per cookie with WithPath and WithSameSite.
type Config struct {
	Domain string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure bool   `env:"COOKIE_SECURE" envDefault:"false"`
}

// NewFromConfig creates a Manager from cfg. Zero values keep the package defaults.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, 2+len(opts))

	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(true))
	}

	return New(append(configOpts, opts...)...)
}
