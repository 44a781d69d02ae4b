package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Config lists the proxy headers to trust, comma separated.
type Config struct {
	TrustedHeaders []string `env:"TRUSTED_PROXY_HEADERS" envSeparator:","`
}

// Resolver extracts client IPs using an ordered list of trusted headers.
type Resolver struct {
	headers []string
}

type Option func(*Resolver)

// WithTrustedHeaders appends headers consulted before RemoteAddr.
func WithTrustedHeaders(headers ...string) Option {
	return func(r *Resolver) {
		for _, h := range headers {
			if h = strings.TrimSpace(h); h != "" {
				r.headers = append(r.headers, http.CanonicalHeaderKey(h))
			}
		}
	}
}

func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func NewFromConfig(cfg Config) *Resolver {
	return New(WithTrustedHeaders(cfg.TrustedHeaders...))
}

// IP returns the normalized client address or "" if none is valid.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		if h == "X-Forwarded-For" {
			for ip := range strings.SplitSeq(value, ",") {
				if parsed := parseIP(ip); parsed != "" {
					return parsed
				}
			}
			continue
		}
		if parsed := parseIP(value); parsed != "" {
			return parsed
		}
	}
	return GetIP(r)
}

// GetIP returns the TCP peer address of r, ignoring forwarding headers.
func GetIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
