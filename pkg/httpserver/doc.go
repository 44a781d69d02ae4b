// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM is received,
// then calls http.Server.Shutdown with the configured deadline.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// HealthCheckHandler turns dependency checks (for example pg.Healthcheck) into
// liveness and readiness endpoints.
package httpserver
