// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// an optional .env file is read once per process, then the environment is
// parsed into any struct annotated with `env` tags.
//
//	type DatabaseConfig struct {
//	    URL string `env:"DATABASE_URL"`
//	}
//
//	var db DatabaseConfig
//	if err := config.Load(&db); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Tests can bypass the process environment entirely with WithEnvironment.
//
// Sentinel errors (compare with errors.Is):
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile: an explicit dotenv file passed via WithEnvFiles failed to load.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
package config
