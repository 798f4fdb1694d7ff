package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"mess-bill/internal/config"
	"mess-bill/internal/gateway"
	"mess-bill/internal/httpapi"
	"mess-bill/internal/metrics"
	"mess-bill/internal/session"
	"mess-bill/internal/usecase"
	"mess-bill/pkg/logging"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	config.LoadEnvFile()
	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	uc := usecase.NewMessBillUseCase(gateway.NewFileInvoiceRepository()).WithRecorder(m)
	api := httpapi.NewServer(uc, session.NewStore(cfg.SessionTTL, cfg.MaxSessions), cfg, metrics.Handler(reg))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Starting mess bill server", "port", cfg.Port, "rounding", cfg.Rounding())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}
	slog.Info("Server stopped gracefully")
}
