package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/synapticlabs/synaptic/internal/config"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "synaptic",
	Short: "Chat with LLM providers from the terminal",
	Long: `Synaptic is a thin client over LLM provider APIs with conversation
memory and automatic tool execution. Configuration comes from the
environment (and an optional .env file); see internal/config for the
full list of SYNAPTIC_* variables.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// loadConfig parses the environment and wires the global logger, honoring the
// --debug flag over the environment setting.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Debug = true
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))
	slog.SetDefault(logger)

	return cfg, nil
}
