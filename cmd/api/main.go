package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dothis/config"
	_ "dothis/docs" // Swagger docs
	"dothis/internal/httpserver"
	"dothis/internal/middleware"
	"dothis/pkg/gcalendar"
	"dothis/pkg/log"
	"dothis/pkg/sqlite"
)

// @title       dothis API
// @description Natural-language task capture with recurring schedules and optional Google Calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting dothis API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	loc := cfg.Parser.Location()
	logger.Infof(ctx, "Parser timezone: %s", loc)

	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database %s: %v", cfg.Storage.SQLitePath, err)
	}
	defer db.Close()

	// 4. Google Calendar client (optional)
	var calendar gcalendar.Calendar
	if cfg.GoogleCalendar.Enabled() {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `dothis gcal-auth` to generate a token for OAuth desktop credentials")
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			MaxClients:     cfg.RateLimit.MaxClients,
			TTL:            cfg.RateLimit.TTL,
		},
		DB:           db,
		Location:     loc,
		Calendar:     calendar,
		CalendarID:   cfg.GoogleCalendar.CalendarID,
		PreviewLimit: cfg.Recurrence.PreviewLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
