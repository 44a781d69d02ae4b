package handler

import (
	"errors"
	"log/slog"

	"github.com/petpal/petpal/pkg/binder"
	"github.com/petpal/petpal/pkg/logger"
)

// ErrorMapper translates domain errors into HTTPError. It returns false for
// errors it does not recognise.
type ErrorMapper func(err error) (HTTPError, bool)

// NewErrorHandler returns an ErrorHandler that writes {"error": message}.
//
// Resolution order: mappers, then an HTTPError found in the chain, then binder
// failures (400 "Invalid request body"). Anything else is logged and answered
// with 500 "Server error". A nil log discards records.
func NewErrorHandler(log *slog.Logger, mappers ...ErrorMapper) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx Context, err error) {
		httpErr := resolve(err, mappers)
		if httpErr.Code >= 500 {
			log.ErrorContext(ctx, "request failed",
				logger.Error(err),
				slog.String("method", ctx.Request().Method),
				slog.String("path", ctx.Request().URL.Path),
			)
		}
		WriteError(ctx.ResponseWriter(), httpErr.Code, httpErr.Message)
	}
}

func resolve(err error, mappers []ErrorMapper) HTTPError {
	for _, m := range mappers {
		if httpErr, ok := m(err); ok {
			return httpErr
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	if errors.Is(err, binder.ErrFailedToParseJSON) || errors.Is(err, binder.ErrUnsupportedMediaType) {
		return ErrInvalidRequestBody
	}

	return ErrServer
}
