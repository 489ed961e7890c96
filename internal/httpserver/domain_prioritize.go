package httpserver

import (
	"context"

	"task-prioritizer/internal/middleware"
	prioritizeHTTP "task-prioritizer/internal/prioritize/delivery/http"
	prioritizeUC "task-prioritizer/internal/prioritize/usecase"
)

// setupPrioritizeDomain initializes the prioritize domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, ...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h, mw.RateLimit())
func (srv *HTTPServer) setupPrioritizeDomain(ctx context.Context, mw middleware.Middleware) error {
	// 1. UseCase
	var recorder prioritizeUC.Recorder
	if srv.metrics != nil {
		recorder = srv.metrics
	}
	uc := prioritizeUC.New(srv.l, srv.dateMath, recorder, srv.scoring)
	if srv.clock != nil {
		uc.SetClock(srv.clock)
	}

	// 2. HTTP Handler
	h := prioritizeHTTP.New(srv.l, uc)

	// 3. Routes: /tasks/* and /api/tasks/*
	prioritizeHTTP.RegisterRoutes(srv.gin.Group(""), h, mw.RateLimit())
	prioritizeHTTP.RegisterRoutes(srv.gin.Group("/api"), h, mw.RateLimit())

	srv.l.Infof(ctx, "Prioritize domain registered")
	return nil
}
