package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbor-ui/arbor/internal/config"
	"github.com/arbor-ui/arbor/internal/log"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:   "arbor",
		Short: "Typed view trees for Go render targets",
		Long: `Arbor renders typed view trees into any backend that can
create and rearrange nodes: an HTML encoder, an in-memory document,
or a live UI layer.

The CLI encodes trees to markup and benchmarks the diff engine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to arbor.toml (default: ./arbor.toml)")

	rootCmd.AddCommand(
		renderCmd(&cfgPath),
		benchCmd(&cfgPath),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config for a command and applies its log
// level.
func loadConfig(cfgPath string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cfgPath != "" {
		cfg, err = config.LoadFile(cfgPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}
	log.SetLevelName(cfg.Log.Level)
	return cfg, nil
}
