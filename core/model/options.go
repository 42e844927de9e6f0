package model

import (
	"log/slog"
	"net/http"

	"github.com/synapticlabs/synaptic/core/memory"
	"github.com/synapticlabs/synaptic/core/tool"
	"github.com/synapticlabs/synaptic/providers/ai"
)

// Config carries everything needed to build a Model. Only Provider and Name
// are required in the common case; APIKey may be omitted when the adapter can
// read it from the environment, or when a custom Adapter is supplied.
type Config struct {
	// Provider selects the backing vendor adapter. Ignored when Adapter is set.
	Provider Provider

	// Name is the vendor model identifier, e.g. "gpt-4o-mini".
	Name string

	// APIKey authenticates against the provider. When empty the adapter falls
	// back to its environment variable.
	APIKey string

	// Temperature is the sampling temperature. Nil means the default of 0.8.
	Temperature *float64

	// MaxTokens caps the completion length. Zero means the default of 1024.
	MaxTokens int

	// Tools are bound at construction time. More can be added later with
	// BindTools.
	Tools []*tool.Tool

	// History is the conversation window. A fresh History with the default
	// capacity is created when nil.
	History *memory.History

	// Autorun makes Invoke execute requested tool calls before returning.
	Autorun bool

	// Automem makes Invoke record the prompt and the response in History.
	Automem bool

	// Blacklist names tools that must never run, even when requested by the
	// model and present in the registry.
	Blacklist []string

	// Instructions is a standing system prompt sent with every request.
	Instructions string

	// ResponseFormat constrains the model to structured JSON output.
	ResponseFormat *ai.ResponseFormat

	// Options are provider-specific parameters passed through verbatim on
	// every request. Per-call options override these.
	Options map[string]any

	// Middlewares wrap every adapter invocation, outermost first.
	Middlewares []Middleware

	// Adapter overrides the provider switch entirely. Useful for custom
	// deployments and for tests.
	Adapter ai.Adapter

	// HTTPClient replaces the adapter's default HTTP client.
	HTTPClient *http.Client

	// Logger receives model-level events (tool execution, memory writes).
	// Defaults to slog.Default.
	Logger *slog.Logger
}

type invokeSettings struct {
	autorun *bool
	automem *bool
	role    memory.Role
	options map[string]any
}

// InvokeOption adjusts a single Invoke call without changing the model's
// configured behavior.
type InvokeOption func(*invokeSettings)

// WithAutorun overrides the model's autorun setting for one call.
func WithAutorun(autorun bool) InvokeOption {
	return func(s *invokeSettings) {
		s.autorun = &autorun
	}
}

// WithAutomem overrides the model's automem setting for one call.
func WithAutomem(automem bool) InvokeOption {
	return func(s *invokeSettings) {
		s.automem = &automem
	}
}

// WithRole sends the prompt under the given role instead of memory.User.
func WithRole(role memory.Role) InvokeOption {
	return func(s *invokeSettings) {
		s.role = role
	}
}

// WithProviderOptions merges provider-specific parameters into the request,
// overriding any configured defaults with the same keys.
func WithProviderOptions(options map[string]any) InvokeOption {
	return func(s *invokeSettings) {
		if s.options == nil {
			s.options = make(map[string]any, len(options))
		}
		for k, v := range options {
			s.options[k] = v
		}
	}
}
