package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codingthings-com/finfeed/app/api"
	"github.com/codingthings-com/finfeed/app/cfg"
	"github.com/codingthings-com/finfeed/app/export"
	"github.com/codingthings-com/finfeed/app/feed"
	"github.com/codingthings-com/finfeed/app/sources"
)

func main() {
	godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting FinFeed server", "version", appCfg.Version)

	fetcher := feed.NewFetcher(feed.Options{
		Timeout:    time.Duration(appCfg.Timeout) * time.Second,
		MaxRetries: appCfg.MaxRetries,
		RetryDelay: time.Duration(appCfg.RetryDelay) * time.Millisecond,
		Backoff:    appCfg.Backoff,
		UserAgent:  appCfg.UserAgent,
	})
	parser := feed.NewParser()

	registry := sources.Builtin(fetcher, parser)
	if err := sources.LoadDir(registry, appCfg.SourcesDir, fetcher, parser); err != nil {
		slog.Error("Failed to load source definitions", "dir", appCfg.SourcesDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Source catalog ready", "sources", registry.Count())

	writer := export.NewWriter(appCfg.ExportDir)
	handler := api.NewHandler(registry, fetcher, feed.NewContentExtractor(), writer)
	server := api.NewServer(handler)

	// WriteTimeout must outlast a full retry cycle against a slow upstream
	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Shutdown complete")
}
