package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	aiHTTP "easynote/internal/ai/delivery/http"
	aiUC "easynote/internal/ai/usecase"
	"easynote/internal/middleware"
	taskHTTP "easynote/internal/task/delivery/http"
	taskRepo "easynote/internal/task/repository/sqlite"
	taskUC "easynote/internal/task/usecase"
	userHTTP "easynote/internal/user/delivery/http"
	userRepo "easynote/internal/user/repository/sqlite"
	userUC "easynote/internal/user/usecase"
)

// setupUserDomain initializes the user domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw *middleware.Middleware) {
	repo := userRepo.New(srv.db, srv.l)
	uc := userUC.New(srv.l, repo, srv.jwtManager)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
}

func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw *middleware.Middleware) {
	repo := taskRepo.New(srv.db, srv.l)
	uc := taskUC.New(srv.l, repo)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
}

func (srv *HTTPServer) setupAIDomain(ctx context.Context, api *gin.RouterGroup, mw *middleware.Middleware) {
	uc := aiUC.New(srv.l, srv.resolver)
	h := aiHTTP.New(srv.l, uc)
	aiHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "AI domain registered")
}
