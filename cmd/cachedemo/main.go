package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/lrucache/pkg/cache"
	"github.com/dmitrymomot/lrucache/pkg/config"
	"github.com/dmitrymomot/lrucache/pkg/logger"
	"github.com/dmitrymomot/lrucache/pkg/requestid"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var app appConfig
	config.MustLoad(&app)

	log := logger.New(
		logger.WithEnvironment(app.Env, "cachedemo"),
		logger.WithLevelName(app.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	var cc cache.Config
	if err := config.Load(&cc); err != nil {
		log.Error("failed to load cache config", logger.Error(err))
		os.Exit(1)
	}

	if err := run(ctx, log, cc); err != nil {
		log.Error("demo failed", logger.Error(err))
		os.Exit(1)
	}
	log.Info("demo finished", slog.String("env", app.Env))
}
