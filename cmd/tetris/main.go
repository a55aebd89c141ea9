package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amalg/go-tetris/internal/game"
	"github.com/amalg/go-tetris/internal/ui"
)

func main() {
	defaults := game.DefaultConfig()
	seed := flag.Uint64("seed", 0, "Piece sequence seed (0 picks one from the clock)")
	gravity := flag.Duration("gravity", defaults.GravityInterval, "Time between gravity ticks")
	frame := flag.Duration("frame", defaults.FrameInterval, "Time between frames")
	preview := flag.Int("preview", defaults.PreviewCount, "Number of upcoming pieces to show")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	flag.Parse()

	// Redirect log output before the engine starts; anything written to
	// stderr corrupts Bubbletea's terminal rendering.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	config, err := buildConfig(defaults, *seed, *gravity, *frame, *preview)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		os.Exit(2)
	}

	engine := game.NewEngine(config)
	frames := make(chan game.Snapshot, 1)
	engine.OnFrame(ui.FrameSink(frames))
	go func() {
		engine.Run()
		close(frames)
	}()

	// Handle OS signals for clean shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		engine.Stop()
		os.Exit(0)
	}()

	model := ui.NewModel(engine, frames, ui.DefaultKeyMap())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		engine.Stop()
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	engine.Stop()
	fmt.Printf("Seed %d, %d lines cleared\n", config.Seed, engine.Snapshot().Lines)
}

// buildConfig validates the command-line overrides.
func buildConfig(config game.GameConfig, seed uint64, gravity, frame time.Duration, preview int) (game.GameConfig, error) {
	if gravity <= 0 {
		return config, fmt.Errorf("gravity interval must be positive, got %s", gravity)
	}
	if frame <= 0 {
		return config, fmt.Errorf("frame interval must be positive, got %s", frame)
	}
	if preview < 0 || preview > game.BagSize {
		return config, fmt.Errorf("preview must be between 0 and %d, got %d", game.BagSize, preview)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	config.Seed = seed
	config.GravityInterval = gravity
	config.FrameInterval = frame
	config.PreviewCount = preview
	return config, nil
}
