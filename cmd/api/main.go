// @title           NeoSearch API
// @version         2.0
// @description     Bookmark management with repository feeds and unified search.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apolzek/neosearch/internal/app"
	"github.com/apolzek/neosearch/internal/config"
	"github.com/apolzek/neosearch/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.New(cfg.App.LogLevel, cfg.App.Env == "dev")
	defer func() { _ = zl.Sync() }()
	zl.Info("config loaded, connecting to DB and Redis")

	application, err := app.New(cfg, zl)
	if err != nil {
		zl.Fatal("app init", zap.Error(err))
	}
	zl.Info("app ready, starting HTTP server")
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		zl.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zl.Fatal("shutdown", zap.Error(err))
	}

	if err := application.Close(ctx); err != nil {
		zl.Fatal("close", zap.Error(err))
	}
}
