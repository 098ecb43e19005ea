package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/synapta/lumen/audio"
	"github.com/synapta/lumen/config"
	"github.com/synapta/lumen/content"
	"github.com/synapta/lumen/engine"
	"github.com/synapta/lumen/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogPath)

	site, err := content.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load site content: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// Non-fatal, the page runs without sound
	player, err := audio.NewPlayer(cfg.Audio)
	if err != nil {
		logger.Printf("audio initialization failed: %v", err)
	}

	clock := engine.NewMonotonicTimeProvider()
	page := ui.NewPage(screen, site, cfg, clock, player, logger)

	defer func() {
		page.Close()
		player.Close()
		screen.Fini()
	}()

	engine.NewLoop(screen, clock, cfg.FPS).Run(page)
}

// newLogger appends to the configured file, or discards when unset.
// The terminal UI owns stdout, so there is no console fallback.
func newLogger(path string) *log.Logger {
	if path == "" {
		return log.New(io.Discard, "", 0)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(f, "lumen ", log.LstdFlags)
}
