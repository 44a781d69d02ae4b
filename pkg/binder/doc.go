// Package binder decodes HTTP request bodies into typed request structs.
//
//	http.Handle("/auth/login", handler.Wrap(login, handler.WithBinder[LoginRequest](binder.JSON())))
package binder
