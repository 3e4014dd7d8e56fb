package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-ztype/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Resolves the configuration the same way "play" does and prints it as
YAML, preceded by the file it came from. The output is a valid config file.

Examples:
  ztype config
  ztype config > ~/.arcade/configs/ztype.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.LoadZType(flagConfig)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}

	fmt.Printf("# source: %s\n", source)
	fmt.Print(string(out))
	return nil
}
