package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petpal/petpal/pkg/binder"
)

type loginRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
}

func request(body, contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	t.Run("decodes body", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		require.NoError(t, bind(request(`{"email":"a@b.c","password":"pw","name":"Ann"}`, "application/json; charset=utf-8"), &req))
		assert.Equal(t, "a@b.c", req.Email)
		assert.Equal(t, "pw", req.Password)
		require.NotNil(t, req.Name)
		assert.Equal(t, "Ann", *req.Name)
	})

	t.Run("missing content type is accepted", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		require.NoError(t, bind(request(`{"email":"a@b.c"}`, ""), &req))
		assert.Equal(t, "a@b.c", req.Email)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		require.NoError(t, bind(request(`{"email":"a@b.c","extra":1}`, "application/json"), &req))
		assert.Equal(t, "a@b.c", req.Email)
	})

	t.Run("empty body leaves zero value", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		require.NoError(t, bind(request("  ", "application/json"), &req))
		assert.Empty(t, req.Email)
		assert.Nil(t, req.Name)
	})

	t.Run("wrong media type", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		err := bind(request("email=a", "application/x-www-form-urlencoded"), &req)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		err := bind(request(`{"email":`, "application/json"), &req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		err := bind(request(`{"email":"a"}{"email":"b"}`, "application/json"), &req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("oversized body", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		big := `{"email":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`
		err := bind(request(big, "application/json"), &req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})
}
