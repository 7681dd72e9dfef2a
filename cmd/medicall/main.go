package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/medicall/medicall-go/internal/logging"
	"github.com/medicall/medicall-go/internal/medicall"
	"github.com/medicall/medicall-go/internal/prometheus"
	"go.uber.org/zap"
)

func main() {
	go prometheus.Run()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, err := medicall.NewApp()
	if err != nil {
		logging.Logger.Fatal("failed to create medicall app", zap.String("error", err.Error()))
	}

	err = app.Run(ctx)
	if err != nil {
		panic(err)
	}
}
