package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/space-shooter/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the other commands would use, after the
search order and the global flags were applied.

Search order:
  --config <path>, ~/.shooter/configs/shooter.yaml, ./configs/shooter.yaml,
  then the built-in defaults.

Examples:
  shooter config
  shooter config --defaults > ~/.shooter/configs/shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults file instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fatalf("%v", err)
		}
		return
	}

	cfg := loadConfig()
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fatalf("encoding config: %v", err)
	}
	if err := enc.Close(); err != nil {
		fatalf("%v", err)
	}
}
