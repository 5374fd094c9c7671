package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/VoidMesh/worldstream/internal/api"
	"github.com/VoidMesh/worldstream/internal/config"
	"github.com/VoidMesh/worldstream/internal/logging"
	"github.com/VoidMesh/worldstream/internal/world"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", "error", err)
	}

	// Setup logging
	closeLog, err := setupLogging(cfg.Logging)
	if err != nil {
		log.Fatal("Failed to configure logging", "error", err)
	}
	defer closeLog()
	logger := logging.WithFields("service", "worldstream-server")
	logger.Debug("Configuration loaded", "server_port", cfg.Server.Port, "log_level", cfg.Logging.Level, "frame_interval", cfg.Server.FrameInterval)

	// Build the world
	logger.Debug("Initializing world runtime")
	runtime, err := world.New(cfg.Streaming, logger)
	if err != nil {
		logger.Fatal("Failed to initialize world runtime", "error", err)
	}

	// Start the frame loop
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frameDone := make(chan struct{})
	go func() {
		defer close(frameDone)
		runtime.Run(ctx, cfg.Server.FrameInterval)
	}()
	logger.Debug("Frame loop started")

	// Initialize API handlers
	handler := api.NewHandler(runtime, logger)
	router := api.SetupRoutes(handler)
	logger.Debug("API routes configured")

	// Create HTTP server
	logger.Debug("Creating HTTP server", "port", cfg.Server.Port, "read_timeout", cfg.Server.ReadTimeout, "write_timeout", cfg.Server.WriteTimeout, "idle_timeout", cfg.Server.IdleTimeout)
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting worldstream server", "port", cfg.Server.Port, "seed", runtime.Seed)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
		logger.Debug("Server stopped listening")
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("Shutting down server...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	} else {
		logger.Debug("Server shutdown completed gracefully")
	}

	// Stop the frame loop; it unloads every chunk on the way out.
	cancel()
	select {
	case <-frameDone:
	case <-shutdownCtx.Done():
		logger.Warn("Frame loop did not stop before the shutdown deadline")
	}

	logger.Info("Server exited", "entities_left", runtime.World.Total())
}

func setupLogging(cfg config.LoggingConfig) (func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return closeFn, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logging.Configure(w, logging.ParseLevel(cfg.Level))
	return closeFn, nil
}
