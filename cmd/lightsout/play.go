package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lightsout/internal/config"
	"github.com/vovakirdan/tui-lightsout/internal/core"
	"github.com/vovakirdan/tui-lightsout/internal/game"
	"github.com/vovakirdan/tui-lightsout/internal/lightsout"
	"github.com/vovakirdan/tui-lightsout/internal/platform/tui"
	"github.com/vovakirdan/tui-lightsout/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play the puzzle",
	Long: `Start a puzzle at the given difficulty, or open the interactive
difficulty picker when no difficulty is given.

Controls:
  Arrows/WASD - Move the cursor
  Space/Enter - Press the switch under the cursor
  T           - Toggle the hint overlay
  N           - New puzzle
  R           - Restart (after clearing)
  B/Esc       - Back to menu
  Q/Ctrl+C    - Quit

Examples:
  lightsout play
  lightsout play easy
  lightsout play hard --seed 42
  lightsout play normal --config ./my-difficulties.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	catalog := cfg.Catalog()

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtimeCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if len(args) == 1 {
		diff, ok := lightsout.Lookup(catalog, args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'lightsout list' to see available difficulties.")
			os.Exit(1)
		}

		if err := tui.Run(game.New(diff), store, runtimeCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Menu loop: picker -> game -> picker
	for {
		menuResult, err := tui.RunMenu(catalog, store, runtimeCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		runtimeCfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(catalog, store, runtimeCfg.ScreenW, runtimeCfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		diff, ok := lightsout.Lookup(catalog, menuResult.DifficultyID)
		if !ok {
			break
		}

		// Fresh scramble for each round unless a fixed seed was requested
		if flagSeed == 0 {
			runtimeCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game.New(diff), store, runtimeCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
