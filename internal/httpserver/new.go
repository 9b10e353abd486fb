package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"dothis/internal/middleware"
	"dothis/pkg/datemath"
	"dothis/pkg/gcalendar"
	"dothis/pkg/log"
	"dothis/pkg/nlparse"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   middleware.RateLimitConfig

	// Task domain
	db           *sql.DB
	location     *time.Location
	clock        datemath.Clock
	calendar     gcalendar.Calendar
	calendarID   string
	previewLimit int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   middleware.RateLimitConfig

	// Task domain
	DB           *sql.DB
	Location     *time.Location
	Clock        datemath.Clock     // optional, defaults to the system clock
	Calendar     gcalendar.Calendar // optional
	CalendarID   string
	PreviewLimit int
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		rateLimit:    cfg.RateLimit,
		db:           cfg.DB,
		location:     cfg.Location,
		clock:        cfg.Clock,
		calendar:     cfg.Calendar,
		calendarID:   cfg.CalendarID,
		previewLimit: cfg.PreviewLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.location == nil {
		srv.location = time.Local
	}
	if srv.clock == nil {
		srv.clock = datemath.SystemClock
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv HTTPServer) extractor() *nlparse.Extractor {
	return nlparse.New(nlparse.WithClock(srv.clock), nlparse.WithLocation(srv.location))
}
