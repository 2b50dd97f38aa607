package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodger/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would start with, after applying the
config file search order:

  --config path
  ~/.arcade/configs/dodger.{yaml,toml}
  ./configs/dodger.{yaml,toml}
  built-in defaults

Examples:
  dodger config
  dodger config --format toml
  dodger config --config ./my-dodger.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", config.FormatYAML, "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadDodger(flagConfig)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := config.EncodeDodger(cfg, flagFormat)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
