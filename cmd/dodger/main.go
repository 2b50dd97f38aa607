// dodger is a small realtime arcade shooter for the terminal or a desktop window.
//
// Usage:
//
//	dodger                   - Play in the terminal
//	dodger play [game]       - Play a game (default: dodger)
//	dodger list              - List available games
//	dodger config            - Print the effective config
//
// Global flags:
//
//	--renderer <tui|window> - Where to play (default: tui)
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Load a YAML or TOML config file
//	--log-level <level>     - debug, info, warn, error (default: info)
//	--log-file <path>       - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/dodger/internal/games/dodger"
)

var (
	// Global flags
	flagRenderer string
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Dodger - shoot the falling squares before they land",
	Long: `Dodger is a small realtime arcade game. Move your square, shoot the
enemies falling from the top, and do not let any of them reach the bottom.

Available commands:
  play     - Play a game (the default when no command is given)
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  dodger
  dodger play --renderer window
  dodger play --seed 42 --log-file dodger.log
  dodger config --format toml > ~/.arcade/configs/dodger.toml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPlay(cmd, nil)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagRenderer, "renderer", rendererTUI, "Renderer: tui or window")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (tui logs are discarded otherwise)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
