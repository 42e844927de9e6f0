package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/synapticlabs/synaptic/core/memory"
	"github.com/synapticlabs/synaptic/core/model"
	"github.com/synapticlabs/synaptic/core/model/middleware"
	"github.com/synapticlabs/synaptic/internal/config"
	tools "github.com/synapticlabs/synaptic/providers/tool"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Starts a read-eval-print loop against the configured provider. The
conversation history is kept for the lifetime of the session.

Commands inside the session:
  /clear  empty the conversation history
  /exit   leave the session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		m, err := buildModel(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		fmt.Printf("synaptic chat (%s", cfg.Provider)
		if cfg.Model != "" {
			fmt.Printf("/%s", cfg.Model)
		}
		fmt.Println(") ready, /exit to quit")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				fmt.Println()
				return scanner.Err()
			}

			line := strings.TrimSpace(scanner.Text())
			switch {
			case line == "":
				continue
			case line == "/exit":
				return nil
			case line == "/clear":
				m.History().Clear()
				fmt.Println("history cleared")
				continue
			}

			response, err := m.Invoke(ctx, line)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}

			printResponse(response)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// buildModel assembles a model from the CLI configuration, with timeout,
// retry, and logging middleware applied in that order.
func buildModel(cfg *config.Config) (*model.Model, error) {
	registered, err := tools.Resolve(cfg.Tools...)
	if err != nil {
		return nil, err
	}

	history, err := memory.NewHistory(cfg.HistorySize)
	if err != nil {
		return nil, err
	}

	logLevel := middleware.LogLevelMinimal
	if cfg.Debug {
		logLevel = middleware.LogLevelVerbose
	}

	return model.New(model.Config{
		Provider:     model.Provider(cfg.Provider),
		Name:         cfg.Model,
		Temperature:  &cfg.Temperature,
		MaxTokens:    cfg.MaxTokens,
		Tools:        registered,
		History:      history,
		Autorun:      cfg.Autorun,
		Automem:      cfg.Automem,
		Blacklist:    cfg.Blacklist,
		Instructions: cfg.Instructions,
		Middlewares: []model.Middleware{
			middleware.NewTimeoutMiddleware(cfg.Timeout),
			middleware.NewRetryMiddleware(middleware.RetryConfig{MaxRetries: cfg.MaxRetries}),
			middleware.NewLoggingMiddleware(slog.Default(), logLevel),
		},
	})
}

func printResponse(response *memory.ResponseMem) {
	if response.Message != "" {
		fmt.Println(response.Message)
	}
	for _, result := range response.ToolResults {
		if result.Failed() {
			fmt.Printf("[%s] error: %s\n", result.Name, result.Err)
			continue
		}
		fmt.Printf("[%s] %v\n", result.Name, result.Value)
	}
}
