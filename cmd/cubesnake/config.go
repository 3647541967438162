package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubesnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a new game would start with, as YAML.

The file search order is --config, ~/.cubesnake/configs/cubesnake.yaml,
./configs/cubesnake.yaml, then the built-in defaults. The output is a
complete file and can be saved and edited.

Examples:
  cubesnake config > ~/.cubesnake/configs/cubesnake.yaml
  cubesnake config --preset hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
