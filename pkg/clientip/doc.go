// Package clientip resolves the originating client address of a request.
//
// Forwarding headers are trivially spoofed by clients, so by default only the
// TCP peer (RemoteAddr) is used. Deployments behind a proxy list the headers
// their proxy sets, in priority order:
//
//	ips := clientip.New(clientip.WithTrustedHeaders("CF-Connecting-IP", "X-Forwarded-For"))
//	r.Use(ips.Middleware)
//
//	// later, in a handler or middleware
//	ip := clientip.GetIPFromContext(r.Context())
//
// For X-Forwarded-For the first valid address in the list is used. Invalid
// values are skipped and resolution falls through to the next header.
package clientip
