// Package config loads CLI configuration from the environment, with optional
// .env file support.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the synaptic CLI. Values come from the
// environment; a .env file in the working directory is loaded first when
// present. Provider API keys are not part of this struct, the adapters read
// them from their own environment variables (OPENAI_API_KEY, GEMINI_API_KEY,
// DEEPSEEK_API_KEY).
type Config struct {
	// Provider selects the vendor adapter: openai, gemini, or deepseek.
	Provider string `env:"SYNAPTIC_PROVIDER" envDefault:"openai"`

	// Model is the vendor model identifier; empty means the adapter default.
	Model string `env:"SYNAPTIC_MODEL"`

	// Temperature is the sampling temperature.
	Temperature float64 `env:"SYNAPTIC_TEMPERATURE" envDefault:"0.8"`

	// MaxTokens caps the completion length.
	MaxTokens int `env:"SYNAPTIC_MAX_TOKENS" envDefault:"1024"`

	// HistorySize is the conversation window capacity.
	HistorySize int `env:"SYNAPTIC_HISTORY_SIZE" envDefault:"32"`

	// Autorun executes requested tool calls automatically.
	Autorun bool `env:"SYNAPTIC_AUTORUN" envDefault:"true"`

	// Automem records prompts and responses in the history automatically.
	Automem bool `env:"SYNAPTIC_AUTOMEM" envDefault:"true"`

	// Tools names the built-in tools to register, comma-separated.
	Tools []string `env:"SYNAPTIC_TOOLS" envSeparator:","`

	// Blacklist names tools that must never run.
	Blacklist []string `env:"SYNAPTIC_BLACKLIST" envSeparator:","`

	// Instructions is a standing system prompt.
	Instructions string `env:"SYNAPTIC_INSTRUCTIONS"`

	// Timeout is the per-request deadline.
	Timeout time.Duration `env:"SYNAPTIC_TIMEOUT" envDefault:"60s"`

	// MaxRetries caps retry attempts for transient provider errors.
	MaxRetries int `env:"SYNAPTIC_MAX_RETRIES" envDefault:"3"`

	// Debug enables debug-level logging.
	Debug bool `env:"SYNAPTIC_DEBUG" envDefault:"false"`
}

// Load reads a .env file when one exists, then parses the environment.
func Load() (*Config, error) {
	// Missing .env is fine; only a parse failure is an error.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.HistorySize < 1 {
		return nil, fmt.Errorf("history size must be positive, got %d", cfg.HistorySize)
	}
	return cfg, nil
}

// LogLevel returns the slog level implied by the Debug flag.
func (c *Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
