package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petpal/petpal/pkg/clientip"
)

func TestResolver_IP(t *testing.T) {
	t.Parallel()

	trusting := clientip.New(clientip.WithTrustedHeaders("cf-connecting-ip", "X-Forwarded-For", " "))
	direct := clientip.New()

	tests := []struct {
		name     string
		resolver *clientip.Resolver
		remote   string
		headers  map[string]string
		want     string
	}{
		{"remote addr with port", direct, "192.0.2.10:4321", nil, "192.0.2.10"},
		{"remote addr ipv6", direct, "[2001:db8::1]:443", nil, "2001:db8::1"},
		{"remote addr without port", direct, "192.0.2.10", nil, "192.0.2.10"},
		{"untrusted header ignored", direct, "192.0.2.10:1", map[string]string{"X-Forwarded-For": "203.0.113.5"}, "192.0.2.10"},
		{"first trusted header wins", trusting, "192.0.2.10:1", map[string]string{
			"CF-Connecting-IP": "198.51.100.7",
			"X-Forwarded-For":  "203.0.113.5",
		}, "198.51.100.7"},
		{"forwarded for first valid entry", trusting, "192.0.2.10:1", map[string]string{"X-Forwarded-For": "garbage, 203.0.113.5, 10.0.0.1"}, "203.0.113.5"},
		{"invalid header falls through", trusting, "192.0.2.10:1", map[string]string{"CF-Connecting-IP": "not-an-ip"}, "192.0.2.10"},
		{"nothing valid", direct, "pipe", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, tt.resolver.IP(req))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.NewFromConfig(clientip.Config{TrustedHeaders: []string{"X-Real-IP"}}).Middleware(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = clientip.GetIPFromContext(r.Context())
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "198.51.100.9")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "198.51.100.9", got)
	assert.Empty(t, clientip.GetIPFromContext(req.Context()))
}
