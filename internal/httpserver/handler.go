package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"easynote/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.cfg)

	api := srv.gin.Group("/api")

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes(api)
	srv.registerDomainRoutes(api, mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw *middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	srv.l.Infof(ctx, "CORS origins: %v", srv.cfg.CORS.AllowedOrigins)
}

func (srv *HTTPServer) registerSystemRoutes(api *gin.RouterGroup) {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	api.GET("/info", srv.apiInfo)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain under /api.
func (srv *HTTPServer) registerDomainRoutes(api *gin.RouterGroup, mw *middleware.Middleware) {
	ctx := context.Background()

	srv.setupUserDomain(ctx, api, mw)
	srv.setupTaskDomain(ctx, api, mw)
	srv.setupAIDomain(ctx, api, mw)
}
