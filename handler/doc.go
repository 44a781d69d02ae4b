// Package handler adapts typed request handlers to net/http.
//
// Wrap binds the request into R, calls the HandlerFunc and renders the
// returned Response. Any error (binding, handler or rendering) goes through a
// single ErrorHandler which writes the uniform body {"error": "<message>"}.
//
// Domain packages plug their error taxonomy in with an ErrorMapper:
//
//	eh := handler.NewErrorHandler(log, func(err error) (handler.HTTPError, bool) {
//		if errors.Is(err, auth.ErrInvalidCredentials) {
//			return handler.NewHTTPError(http.StatusBadRequest, "Invalid credentials"), true
//		}
//		return handler.HTTPError{}, false
//	})
package handler
