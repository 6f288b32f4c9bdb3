package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"planit-api/core/cache"
	"planit-api/core/config"
	"planit-api/core/constants"
	"planit-api/core/database"
	"planit-api/core/logger"
	"planit-api/core/middleware"
	"planit-api/core/tasks"
	"planit-api/modules/activity"
	"planit-api/modules/auth"
	"planit-api/modules/goal"
	"planit-api/modules/inbox"
	"planit-api/modules/notification"
	"planit-api/modules/scheduling"
	"planit-api/modules/team"
	"planit-api/pkg/metrics"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots the HTTP server and the background worker, blocks until a
// shutdown signal arrives, then drains both.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	c, err := cache.InitCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer c.Close()

	taskClient := tasks.InitClient(cfg.Redis)
	defer taskClient.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", metrics.Handler())

	mw := middleware.New(cfg.JWT.Secret, c)

	authService := auth.Init(e, &db, c, mw)
	scheduling.Init(e, &db, mw)
	activity.Init(e, &db, mw)
	goal.Init(e, &db, mw)
	team.Init(e, &db, mw)
	notificationService := notification.Init(e, &db, mw)
	inbox.Init(e, authService, mw)

	worker := tasks.NewServer(cfg.Redis)
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeMeetingNotify, notificationService.HandleMeetingNotify)

	go func() {
		if err := worker.Run(mux); err != nil {
			logger.Error("Server:Worker:Error:", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()

	worker.Shutdown()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
