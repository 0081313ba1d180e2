package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/picks-fixtures-service/internal/config"
	"github.com/preston-bernstein/picks-fixtures-service/internal/logging"
	"github.com/preston-bernstein/picks-fixtures-service/internal/server"
)

const (
	appName    = "picks-fixtures-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	envErr := godotenv.Load()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: appName,
		Version: appVersion,
	})
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logging.Warn(logger, "failed to load .env", "error", envErr)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error(logger, "invalid configuration", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
	return 0
}
