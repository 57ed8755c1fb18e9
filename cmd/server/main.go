package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"museum-api/internal/bootstrap"
	httptransport "museum-api/internal/transport/http"
)

func main() {
	ctx := context.Background()

	app, err := bootstrap.New(ctx)
	if err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			app.Logger.Error("close resources failed", "error", err)
		}
	}()

	router, err := httptransport.NewRouter(app)
	if err != nil {
		app.Logger.Error("build router failed", "error", err)
		return
	}
	server := &http.Server{
		Addr:              app.Config.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		app.Logger.Info("server starting", "addr", server.Addr, "env", app.Config.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	waitForShutdown(app.Logger, server, serveErr)
}

func waitForShutdown(logger *slog.Logger, server *http.Server, serveErr <-chan error) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err, ok := <-serveErr:
		if ok {
			logger.Error("server failed", "error", err)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
}
