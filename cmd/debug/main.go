package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/VoidMesh/worldstream/cmd/debug/models"
	"github.com/VoidMesh/worldstream/internal/config"
	"github.com/VoidMesh/worldstream/internal/logging"
	"github.com/VoidMesh/worldstream/internal/world"
)

func main() {
	startView := flag.String("view", "map", "Starting view (map, stats)")
	logLevel := flag.String("log", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "debug.log", "File the debugger logs to while it owns the terminal")
	seed := flag.Int64("seed", 0, "World seed, 0 picks one from the clock")
	frame := flag.Duration("frame", 50*time.Millisecond, "Frame interval")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Streaming.Seed = *seed
	}

	// The TUI owns stdout, so logs go to a file
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}
	defer f.Close()
	logger := logging.Configure(f, logging.ParseLevel(*logLevel))
	log.SetDefault(logger)

	runtime, err := world.New(cfg.Streaming, logger)
	if err != nil {
		logger.Fatal("Failed to initialize world runtime", "error", err)
	}

	app := models.NewApp(runtime, *frame, *startView)
	program := tea.NewProgram(app, tea.WithAltScreen())

	logger.Info("Starting stream debugger", "seed", runtime.Seed, "start_view", *startView)

	if _, err := program.Run(); err != nil {
		logger.Fatal("Error running debug tool", "error", err)
	}
	runtime.Reset()
}
