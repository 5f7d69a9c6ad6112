package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"habit-tracker-go/internal/app"
	"habit-tracker-go/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	log, closeLog := logger.NewFromEnv()
	defer func() {
		_ = closeLog()
	}()
	log.Info("app: starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(log)
	if err != nil {
		log.Critical("app: init failed", "err", err)
		return 1
	}

	if err := application.Run(ctx); err != nil {
		log.Critical("app: stopped with error", "err", err)
		return 1
	}

	log.Info("app: stopped")
	return 0
}
