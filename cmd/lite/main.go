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

	"github.com/apolzek/neosearch/internal/feed"
	"github.com/apolzek/neosearch/internal/lite"
	"github.com/apolzek/neosearch/internal/logger"
	"github.com/apolzek/neosearch/internal/mw"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"
)

type liteConfig struct {
	Env         string        `env:"APP_ENV" env-default:"dev"`
	LogLevel    string        `env:"LOG_LEVEL" env-default:"info"`
	Port        string        `env:"HTTP_PORT" env-default:"8080"`
	ConfigPath  string        `env:"CONFIG_FILE_PATH" env-default:"config.yaml"`
	FeedTimeout time.Duration `env:"FEED_TIMEOUT" env-default:"10s"`
}

func main() {
	var cfg liteConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.New(cfg.LogLevel, cfg.Env == "dev")
	defer func() { _ = zl.Sync() }()

	store := lite.NewFileStore(cfg.ConfigPath)
	fetcher := feed.NewFetcher(cfg.FeedTimeout)
	searcher := lite.NewSearcher(store, fetcher, zl)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(mw.RateLimit(mw.RateLimitConfig{Burst: 30, RefillPerMin: 30}))
	lite.NewHandler(store, searcher).Register(r)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		zl.Info("lite server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zl.Fatal("shutdown", zap.Error(err))
	}
}
