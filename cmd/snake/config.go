package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The file is looked up in this order:
  1. --config <path>
  2. ~/.snake/configs/snake.yaml
  3. ./configs/snake.yaml
  4. built-in defaults

--difficulty is applied on top. The output is a valid config file.

Examples:
  snake config > ~/.snake/configs/snake.yaml
  snake config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		newLogger().Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		newLogger().Error("could not encode configuration", "error", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
