package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/synapticlabs/synaptic/core/memory"
	"github.com/synapticlabs/synaptic/core/model"
	"github.com/synapticlabs/synaptic/internal/utils"
	"github.com/synapticlabs/synaptic/providers/ai"
)

// LogLevel controls how much detail the logging middleware emits per request.
type LogLevel int

const (
	// LogLevelMinimal logs only the model name, total duration, and token
	// counts. Use this when you want lightweight audit trails without noise.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard logs everything in Minimal plus the history size and
	// the number of tools advertised and tool calls returned. This is the
	// recommended default for most applications.
	LogLevelStandard

	// LogLevelVerbose logs everything in Standard plus the prompt and the
	// response message, each truncated to 500 characters.
	//
	// WARNING: DO NOT use LogLevelVerbose in production. It will log raw
	// prompt and response text, which may contain sensitive user data,
	// secrets, or PII. It is intended solely for local debugging and
	// development.
	LogLevelVerbose
)

// truncateLen is the maximum content length included in verbose log output.
const truncateLen = 500

// NewLoggingMiddleware creates a middleware that emits structured slog
// entries before and after every adapter call.
//
// The logger parameter must not be nil. Use slog.Default() if you have not
// configured a custom logger.
func NewLoggingMiddleware(logger *slog.Logger, level LogLevel) model.Middleware {
	return func(next model.InvokeFunc) model.InvokeFunc {
		return func(ctx context.Context, request ai.Request) (*memory.ResponseMem, error) {
			logger.InfoContext(ctx, "llm invoke",
				buildRequestAttrs(request, level)...,
			)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "llm invoke failed",
					slog.String("model", request.Model),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			logger.InfoContext(ctx, "llm invoke completed",
				buildResponseAttrs(request.Model, response, elapsed, level)...,
			)

			return response, nil
		}
	}
}

// buildRequestAttrs returns slog attributes for an outgoing request, expanding
// detail according to the requested verbosity level.
func buildRequestAttrs(request ai.Request, level LogLevel) []any {
	attrs := []any{
		slog.String("model", request.Model),
	}

	if level >= LogLevelStandard {
		historyLen := 0
		if request.History != nil {
			historyLen = request.History.Len()
		}
		attrs = append(attrs,
			slog.Int("history_entries", historyLen),
			slog.Int("tools", len(request.Tools)),
		)
	}

	if level >= LogLevelVerbose {
		attrs = append(attrs,
			slog.String("role", string(request.Role)),
			slog.String("prompt", utils.Truncate(request.Prompt, truncateLen)),
		)
	}

	return attrs
}

// buildResponseAttrs returns slog attributes for a completed response,
// expanding detail according to the requested verbosity level.
func buildResponseAttrs(model string, response *memory.ResponseMem, elapsed time.Duration, level LogLevel) []any {
	attrs := []any{
		slog.String("model", model),
		slog.Duration("duration", elapsed),
	}

	if response.Usage != nil {
		attrs = append(attrs,
			slog.Int("prompt_tokens", response.Usage.PromptTokens),
			slog.Int("completion_tokens", response.Usage.CompletionTokens),
			slog.Int("total_tokens", response.Usage.TotalTokens),
		)
	}

	if level >= LogLevelStandard {
		attrs = append(attrs, slog.Int("tool_calls", len(response.ToolCalls)))
	}

	if level >= LogLevelVerbose && response.Message != "" {
		attrs = append(attrs,
			slog.String("response", utils.Truncate(response.Message, truncateLen)),
		)
	}

	return attrs
}
