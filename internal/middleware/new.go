package middleware

import (
	"time"

	"dothis/pkg/log"
)

// RateLimitConfig bounds requests per client.
type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
	TTL            time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the HTTP middleware set. A non-positive RequestsPerMin disables rate limiting.
func New(l log.Logger, rl RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if rl.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rl)
	}
	return mw
}
