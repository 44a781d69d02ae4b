// Package logger builds *slog.Logger instances for PetPal services.
//
// New applies functional options (format, level, static attributes) and wraps
// the resulting handler in LogHandlerDecorator, which pulls request-scoped
// values such as the request id out of context.Context on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, "petpal"),
//	    logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	log.InfoContext(ctx, "user logged in", logger.UserID(id))
//
// Attribute helpers (Error, UserID, RequestID, Component) keep key names
// consistent across packages.
package logger
