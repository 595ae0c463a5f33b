package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"vif/internal/middleware"
	"vif/internal/resolver"
	todoHTTP "vif/internal/todo/delivery/http"
	todoFileRepo "vif/internal/todo/repository/file"
	todoStore "vif/internal/todo/store"
	todoUC "vif/internal/todo/usecase"
)

// setupTodoDomain initializes the todo domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(...)
//  2. Create UseCase:      uc := mydomainUC.New(...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository and store
	repo, err := todoFileRepo.New(srv.l, srv.storagePath)
	if err != nil {
		return err
	}
	store, err := todoStore.New(ctx, srv.l, repo)
	if err != nil {
		return err
	}

	// 2. Resolver and UseCase
	res := resolver.New(srv.l, srv.llm, resolver.Config{DefaultTimezone: srv.timezone})
	uc := todoUC.New(srv.l, res, store, srv.speech, srv.calendar, srv.timezone)

	// 3. HTTP Handler
	h := todoHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/todos and /api/v1/speech
	todoHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Todo domain registered")
	return nil
}
