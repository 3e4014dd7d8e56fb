package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ztype/internal/config"
	"github.com/vovakirdan/tui-ztype/internal/core"
	"github.com/vovakirdan/tui-ztype/internal/games/ztype"
	"github.com/vovakirdan/tui-ztype/internal/platform/tui"
	"github.com/vovakirdan/tui-ztype/internal/registry"
	"github.com/vovakirdan/tui-ztype/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play ZType",
	Long: `Start a game of ZType.

Controls:
  a-z        - Type (the first letter picks a word, the rest finish it)
  Esc        - Pause / resume
  Enter      - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Ctrl+C     - Quit

Examples:
  ztype play
  ztype play --seed 42
  ztype play --fps 20
  ztype play --config ./my-ztype.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogPath, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := config.LoadZType(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source)

	ztype.SetConfig(cfg)
	ztype.SetLogger(logger.WithPrefix(gameID + "/game"))

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := cfg.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// The game still works without a score database
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		store = nil
	}

	runErr := tui.Run(game, store, runtime, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
