package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-prioritizer/internal/middleware"
	"task-prioritizer/internal/model"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.middleware)

	srv.registerMiddlewares(ctx, mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(ctx, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(ctx context.Context, mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.AccessLog())
	srv.gin.Use(mw.Metrics())
	srv.gin.Use(mw.CORS())

	if model.IsProduction(srv.environment) {
		srv.l.Infof(ctx, "CORS mode: production, allowed origins: %v", srv.middleware.CORS.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, allowed origins: %v", srv.environment, srv.middleware.CORS.AllowedOrigins)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes(ctx context.Context, mw middleware.Middleware) error {
	if err := srv.setupPrioritizeDomain(ctx, mw); err != nil {
		return err
	}
	return nil
}
