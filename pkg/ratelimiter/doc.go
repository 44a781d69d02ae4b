// Package ratelimiter implements token bucket rate limiting with pluggable
// storage.
//
// A Bucket holds Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request consumes one token; a negative remainder means
// the request is denied. State lives in a Store: MemoryStore for a single
// process, RedisStore when several instances share limits.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     1,
//		RefillInterval: 6 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.Composite(
//		ratelimiter.ByIP(),
//		ratelimiter.ByPath(),
//	))).Post("/auth/login", login)
//
// Middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response and answers denied requests with
// 429 {"error":"Too many requests"} plus Retry-After.
package ratelimiter
