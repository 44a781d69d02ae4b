// Package pg connects to PostgreSQL with pgx and applies goose migrations.
//
// Connect builds a pgxpool.Pool from Config and pings it with retries.
// Migrate bridges the pool to database/sql and runs goose against an fs.FS,
// usually the embedded db/migrations directory. Healthcheck adapts a pool into
// a readiness probe.
//
// Error helpers (IsNotFoundError, IsDuplicateKeyError) let stores translate
// driver errors into domain errors without importing pgconn.
package pg
