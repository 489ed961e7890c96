package httpserver

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"task-prioritizer/internal/middleware"
	"task-prioritizer/internal/prioritize/usecase"
	"task-prioritizer/pkg/datemath"
	"task-prioritizer/pkg/log"
	"task-prioritizer/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	draining        atomic.Bool

	// Cross-cutting
	metrics    *metrics.Metrics
	middleware middleware.Config

	// Prioritize domain
	dateMath *datemath.Parser
	scoring  usecase.Config
	clock    func() time.Time
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Metrics   *metrics.Metrics
	CORS      middleware.CORSConfig
	RateLimit middleware.RateLimitConfig

	// Prioritize domain
	DateMath *datemath.Parser
	Scoring  usecase.Config
	Clock    func() time.Time // nil means time.Now
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		metrics:         cfg.Metrics,
		middleware: middleware.Config{
			CORS:      cfg.CORS,
			RateLimit: cfg.RateLimit,
		},
		dateMath: cfg.DateMath,
		scoring:  cfg.Scoring,
		clock:    cfg.Clock,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.metrics != nil {
		srv.middleware.Recorder = srv.metrics
	}

	if err := srv.mapHandlers(context.Background()); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.dateMath == nil {
		return errors.New("date math parser is required")
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	return nil
}
