package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/propfin/affordability/internal/cache"
	"github.com/propfin/affordability/internal/server"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

func buildLogger(level, format string) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json", "":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	return zapConfig.Build()
}

func buildCache(logger *zap.Logger, cfg server.CacheConfig) cache.Cache {
	switch cfg.Backend {
	case "redis":
		r := cache.NewRedis(cfg.RedisAddr)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := r.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, falling back to in-memory cache",
				zap.String("op", "main"),
				zap.String("addr", cfg.RedisAddr),
				zap.Error(err),
			)
			return cache.NewMemory()
		}
		return r
	case "memory":
		return cache.NewMemory()
	default:
		return nil
	}
}

func main() {
	configLocation := flag.String("config", "", "path to server configuration file")
	addressFlag := flag.String("address", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}

	level := cfg.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}
	logger, err := buildLogger(level, cfg.Logging.Format)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	address := cfg.Address
	if *addressFlag != "" {
		address = *addressFlag
	}

	opts := server.Options{
		MaxBodySize: cfg.BodySizeBytes(),
		Version:     version,
		Cache:       buildCache(logger, cfg.Cache),
	}
	if cfg.Cache.TTLSeconds > 0 {
		opts.CacheTTL = time.Duration(cfg.Cache.TTLSeconds) * time.Second
	}

	if cfg.RateLimit.Enabled {
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		if window <= 0 {
			window = time.Minute
		}
		capacity := cfg.RateLimit.Capacity
		if capacity <= 0 {
			capacity = 60
		}
		limiter := server.NewRateLimiter(capacity, window)
		defer limiter.Stop()
		opts.RateLimiter = limiter
	}

	handler := server.NewHandler(logger, opts)

	srv := &http.Server{
		Addr:         address,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting affordability server",
			zap.String("op", "main"),
			zap.String("address", address),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	case <-quit:
		logger.Info("shutting down server",
			zap.String("op", "main"),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	logger.Info("server exited",
		zap.String("op", "main"),
	)
}
