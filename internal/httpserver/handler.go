package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vif/internal/middleware"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	srv.registerMiddlewares(ctx)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(ctx); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(ctx context.Context) {
	srv.gin.Use(gin.Recovery())
	srv.l.Infof(ctx, "HTTP middlewares registered, environment: %s", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(ctx context.Context) error {
	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.rateLimit)

	if err := srv.setupTodoDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
