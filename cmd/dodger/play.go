package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/games/dodger"
	"github.com/vovakirdan/dodger/internal/platform/tui"
	"github.com/vovakirdan/dodger/internal/platform/window"
	"github.com/vovakirdan/dodger/internal/registry"
)

const (
	rendererTUI    = "tui"
	rendererWindow = "window"
	defaultGame    = "dodger"
)

var (
	flagWidth  int
	flagHeight int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: dodger).

Controls:
  Arrows/WASD - Move
  Space       - Fire
  Enter       - Restart (after game over)
  P           - Pause
  Q/Ctrl+C    - Quit (Esc also quits in the window)

Examples:
  dodger play
  dodger play dodger --renderer window --width 1024 --height 768
  dodger play --config ./my-dodger.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 800, "Window width in pixels (window renderer)")
	playCmd.Flags().IntVar(&flagHeight, "height", 600, "Window height in pixels (window renderer)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'dodger list' to see available games)", gameID)
	}

	cfg, err := config.LoadDodger(flagConfig)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	dodger.SetConfig(cfg)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	out, closeLog, err := openLogOutput(flagRenderer, flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		return err
	}
	logger = logger.With("run", uuid.NewString())

	switch flagRenderer {
	case rendererTUI:
		cols, rows := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			cols, rows = w, h
		}
		if err := tui.Run(game, cols, rows, tui.Options{
			TickRate: flagFPS,
			Seed:     flagSeed,
			Logger:   logger,
		}); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil

	case rendererWindow:
		if err := window.Run(game, window.Options{
			Width:    flagWidth,
			Height:   flagHeight,
			TickRate: flagFPS,
			Seed:     flagSeed,
			Logger:   logger,
		}); err != nil {
			return fmt.Errorf("window: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown renderer %q (want %q or %q)", flagRenderer, rendererTUI, rendererWindow)
	}
}
