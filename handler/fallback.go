package handler

import "net/http"

// MethodNotAllowed answers 405 {"error":"Method not allowed"}. Install it with
// chi.Router.MethodNotAllowed.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, ErrMethodNotAllowed.Code, ErrMethodNotAllowed.Message)
}

// NotFound answers 404 {"error":"Not found"}.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, ErrNotFound.Code, ErrNotFound.Message)
}
