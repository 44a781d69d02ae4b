package catalog_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"

	"github.com/petpal/petpal/modules/catalog"
	"github.com/petpal/petpal/pkg/session"
	"github.com/petpal/petpal/svc/auth"
)

const validToken = "valid-session"

type stubVerifier struct{}

func (stubVerifier) VerifySession(tok string) (*auth.SessionClaims, error) {
	if tok != validToken {
		return nil, errors.New("bad token")
	}
	return &auth.SessionClaims{ID: "00000000-0000-0000-0000-000000000001", Email: "ann@petpal.test"}, nil
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time {
	c.now = c.now.Add(time.Minute)
	return c.now
}

func newCatalog(t *testing.T) http.Handler {
	t.Helper()
	guard := auth.RequireAuth(stubVerifier{}, session.NewHeaderTransport("Authorization"))
	c := &clock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	return catalog.NewService(catalog.NewMemoryStorage(), guard, catalog.WithClock(c.Now)).Handle()
}

func TestWritesRequireSession(t *testing.T) {
	t.Parallel()
	h := newCatalog(t)

	for _, path := range []string{"/pets", "/medical-records", "/posts", "/alerts", "/adoptions"} {
		apitest.New().
			Handler(h).
			Post(path).
			JSON(`{}`).
			Expect(t).
			Status(http.StatusUnauthorized).
			Body(`{"error":"Unauthorized"}`).
			End()

		apitest.New().
			Handler(h).
			Post(path).
			Header("Authorization", "Bearer forged").
			JSON(`{}`).
			Expect(t).
			Status(http.StatusUnauthorized).
			End()

		apitest.New().
			Handler(h).
			Get(path).
			Expect(t).
			Status(http.StatusOK).
			Body(`[]`).
			End()
	}
}

func TestPetsWithMedicalRecords(t *testing.T) {
	t.Parallel()
	h := newCatalog(t)

	res := apitest.New().
		Handler(h).
		Post("/pets").
		Header("Authorization", "Bearer "+validToken).
		JSON(`{"name":"Bella","species":"Dog","breed":"Labrador Retriever","age":4,"neutered":true,"weightKg":28.5}`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal("$.name", "Bella")).
		Assert(jsonpath.Equal("$.status", "available")).
		Assert(jsonpath.Present("$.id")).
		End()

	var pet catalog.Pet
	res.JSON(&pet)

	apitest.New().
		Handler(h).
		Post("/medical-records").
		Header("Authorization", "Bearer "+validToken).
		JSON(map[string]any{"petId": pet.ID, "description": "Annual vaccination", "vetName": "Happy Paws Clinic"}).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal("$.petId", pet.ID.String())).
		End()

	apitest.New().
		Handler(h).
		Get("/pets").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 1)).
		Assert(jsonpath.Len("$[0].medicalRecords", 1)).
		Assert(jsonpath.Equal("$[0].medicalRecords[0].vetName", "Happy Paws Clinic")).
		End()
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()
	h := newCatalog(t)

	tests := []struct {
		path string
		body string
		want string
	}{
		{"/pets", `{"name":"Bella"}`, `{"error":"Missing name or species"}`},
		{"/pets", `{"name":"Bella","species":"Dog","status":"lost"}`, `{"error":"Invalid status"}`},
		{"/medical-records", `{"description":"x"}`, `{"error":"Missing petId or description"}`},
		{"/medical-records", `{"petId":"6f1c1a52-8d1e-4c61-9a39-3f0b9c0a1b2c","description":"x"}`, `{"error":"Unknown pet"}`},
		{"/posts", `{"title":"Hello"}`, `{"error":"Missing title or content"}`},
		{"/alerts", `{"location":"Park"}`, `{"error":"Missing title"}`},
		{"/adoptions", `{"requester":"Ann"}`, `{"error":"Missing petId or requester"}`},
		{"/adoptions", `{"petId":"not-a-uuid","requester":"Ann"}`, `{"error":"Invalid request body"}`},
	}
	for _, tt := range tests {
		t.Run(tt.path+" "+tt.body, func(t *testing.T) {
			apitest.New().
				Handler(h).
				Post(tt.path).
				Header("Authorization", "Bearer "+validToken).
				JSON(tt.body).
				Expect(t).
				Status(http.StatusBadRequest).
				Body(tt.want).
				End()
		})
	}
}

func TestListsNewestFirst(t *testing.T) {
	t.Parallel()
	h := newCatalog(t)

	for _, title := range []string{"first", "second", "third"} {
		apitest.New().
			Handler(h).
			Post("/posts").
			Header("Authorization", "Bearer "+validToken).
			JSON(map[string]string{"title": title, "content": "body", "author": "Ann"}).
			Expect(t).
			Status(http.StatusCreated).
			End()

		apitest.New().
			Handler(h).
			Post("/alerts").
			Header("Authorization", "Bearer "+validToken).
			JSON(map[string]string{"title": title, "location": "Park"}).
			Expect(t).
			Status(http.StatusCreated).
			Assert(jsonpath.Equal("$.resolved", false)).
			End()
	}

	for _, path := range []string{"/posts", "/alerts"} {
		apitest.New().
			Handler(h).
			Get(path).
			Expect(t).
			Status(http.StatusOK).
			Assert(jsonpath.Len("$", 3)).
			Assert(jsonpath.Equal("$[0].title", "third")).
			Assert(jsonpath.Equal("$[2].title", "first")).
			End()
	}
}

func TestAdoptions(t *testing.T) {
	t.Parallel()
	h := newCatalog(t)

	res := apitest.New().
		Handler(h).
		Post("/pets").
		Header("Authorization", "Bearer "+validToken).
		JSON(`{"name":"Mittens","species":"Cat"}`).
		Expect(t).
		Status(http.StatusCreated).
		End()
	var pet catalog.Pet
	res.JSON(&pet)

	apitest.New().
		Handler(h).
		Post("/adoptions").
		Header("Authorization", "Bearer "+validToken).
		JSON(map[string]any{"petId": pet.ID, "requester": "Ann", "message": "We have a garden"}).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal("$.status", "pending")).
		Assert(jsonpath.Equal("$.requester", "Ann")).
		End()

	apitest.New().
		Handler(h).
		Get("/adoptions").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 1)).
		End()

	apitest.New().
		Handler(h).
		Put("/adoptions").
		Expect(t).
		Status(http.StatusMethodNotAllowed).
		Body(`{"error":"Method not allowed"}`).
		End()
}
