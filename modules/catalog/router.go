package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/petpal/petpal/handler"
	"github.com/petpal/petpal/pkg/binder"
)

// Routes registers the catalog endpoints on r.
func (s *Service) Routes(r chi.Router) {
	eh := handler.NewErrorHandler(s.log, ErrorMapper)
	opts := []handler.WrapOption{handler.WithErrorHandler(eh)}
	create := append([]handler.WrapOption{handler.WithBinder(binder.JSON())}, opts...)

	r.Get("/pets", handler.Wrap(list(s.ListPets), opts...))
	r.With(s.guard).Post("/pets", handler.Wrap(created(s.CreatePet), create...))

	r.Get("/medical-records", handler.Wrap(list(s.ListMedicalRecords), opts...))
	r.With(s.guard).Post("/medical-records", handler.Wrap(created(s.CreateMedicalRecord), create...))

	r.Get("/posts", handler.Wrap(list(s.ListPosts), opts...))
	r.With(s.guard).Post("/posts", handler.Wrap(created(s.CreatePost), create...))

	r.Get("/alerts", handler.Wrap(list(s.ListAlerts), opts...))
	r.With(s.guard).Post("/alerts", handler.Wrap(created(s.CreateAlert), create...))

	r.Get("/adoptions", handler.Wrap(list(s.ListAdoptions), opts...))
	r.With(s.guard).Post("/adoptions", handler.Wrap(created(s.CreateAdoption), create...))
}

// Handle returns a standalone router with the catalog endpoints.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(handler.MethodNotAllowed)
	r.NotFound(handler.NotFound)
	s.Routes(r)
	return r
}

func list[T any](fetch func(context.Context) ([]T, error)) handler.HandlerFunc[struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		items, err := fetch(ctx)
		if err != nil {
			return handler.Error(err)
		}
		return handler.JSON(items)
	}
}

func created[T any](create func(context.Context, T) (*T, error)) handler.HandlerFunc[T] {
	return func(ctx handler.Context, req T) handler.Response {
		item, err := create(ctx, req)
		if err != nil {
			return handler.Error(err)
		}
		return handler.JSON(item, handler.WithStatus(http.StatusCreated))
	}
}
