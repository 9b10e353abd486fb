package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"dothis/internal/middleware"
	taskHTTP "dothis/internal/task/delivery/http"
	taskRepo "dothis/internal/task/repository/sqlite"
	taskUC "dothis/internal/task/usecase"
	"dothis/pkg/datemath"
)

// setupTaskDomain wires repository, use case and handler for tasks, then
// registers /api/v1/parse, /api/v1/recurrence/preview and /api/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	if err := taskRepo.Migrate(ctx, srv.db); err != nil {
		return err
	}
	repo := taskRepo.New(srv.db, srv.l, srv.location)

	// 2. UseCase
	dates := datemath.NewParserIn(srv.location)
	uc := taskUC.New(srv.l, repo, srv.extractor(), srv.calendar, srv.calendarID, dates, srv.clock, srv.previewLimit)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc, dates, srv.clock)

	// 4. Routes
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered (calendar sync: %v)", srv.calendar != nil)
	return nil
}
