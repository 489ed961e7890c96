package middleware

import (
	"time"

	"task-prioritizer/pkg/log"
)

// RequestRecorder receives one observation per served request.
type RequestRecorder interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// CORSConfig lists the origins allowed to call the API. "*" allows any origin.
type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig enables a per-client token bucket.
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Recorder  RequestRecorder
}

type Middleware struct {
	l        log.Logger
	cors     CORSConfig
	limiter  *rateLimiter
	recorder RequestRecorder
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:        l,
		cors:     cfg.CORS,
		recorder: cfg.Recorder,
	}
	if cfg.RateLimit.Enabled {
		mw.limiter = newRateLimiter(cfg.RateLimit.RequestsPerMin)
	}
	return mw
}
