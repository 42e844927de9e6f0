package model

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/synapticlabs/synaptic/core/memory"
	"github.com/synapticlabs/synaptic/core/tool"
	"github.com/synapticlabs/synaptic/internal/utils"
	"github.com/synapticlabs/synaptic/providers/ai"
)

const (
	// DefaultTemperature is the sampling temperature applied when the
	// configuration leaves it unset.
	DefaultTemperature = 0.8

	// DefaultMaxTokens is the completion cap applied when the configuration
	// leaves it unset.
	DefaultMaxTokens = 1024
)

// Model is the single user-facing façade over a provider adapter: it owns the
// conversation History, the registered tools, the generation settings, and the
// autorun/automem behavior toggles. Construct one with [New] and drive it with
// [Model.Invoke].
//
// A Model is not safe for concurrent use: it owns a mutable History.
type Model struct {
	provider       Provider
	name           string
	temperature    *float64
	maxTokens      int
	tools          []*tool.Tool
	history        *memory.History
	autorun        bool
	automem        bool
	blacklist      map[string]struct{}
	instructions   string
	responseFormat *ai.ResponseFormat
	options        map[string]any
	invoke         InvokeFunc
	logger         *slog.Logger
}

// New validates the configuration and builds a ready-to-use Model. The zero
// values of Temperature and MaxTokens are replaced with [DefaultTemperature]
// and [DefaultMaxTokens]; a nil History becomes a fresh one with
// [memory.DefaultCapacity]; histories are never shared implicitly between
// models.
//
// Unless a custom Adapter is supplied, the provider must be known and an API
// key must be available, either in the configuration or in the provider's
// environment variable.
func New(config Config) (*Model, error) {
	adapter := config.Adapter
	if adapter == nil {
		if config.APIKey == "" && os.Getenv(config.Provider.apiKeyEnv()) == "" {
			return nil, fmt.Errorf("provider %q: API key is required", config.Provider)
		}
		var err error
		adapter, err = newAdapter(config.Provider, config.APIKey, config.HTTPClient)
		if err != nil {
			return nil, err
		}
	}

	if config.MaxTokens < 0 {
		return nil, fmt.Errorf("max tokens must be non-negative, got %d", config.MaxTokens)
	}
	if config.ResponseFormat != nil && config.ResponseFormat.Schema == nil {
		return nil, fmt.Errorf("response format requires a schema")
	}

	temperature := config.Temperature
	if temperature == nil {
		temperature = utils.Ptr(DefaultTemperature)
	}
	maxTokens := config.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	history := config.History
	if history == nil {
		var err error
		history, err = memory.NewHistory(memory.DefaultCapacity)
		if err != nil {
			return nil, err
		}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	blacklist := make(map[string]struct{}, len(config.Blacklist))
	for _, name := range config.Blacklist {
		blacklist[name] = struct{}{}
	}

	m := &Model{
		provider:       config.Provider,
		name:           config.Name,
		temperature:    temperature,
		maxTokens:      maxTokens,
		history:        history,
		autorun:        config.Autorun,
		automem:        config.Automem,
		blacklist:      blacklist,
		instructions:   config.Instructions,
		responseFormat: config.ResponseFormat,
		options:        config.Options,
		invoke:         buildChain(adapter, config.Middlewares),
		logger:         logger,
	}
	m.BindTools(config.Tools...)
	return m, nil
}

// BindTools registers additional tools. Registration is additive and duplicate
// names are allowed; when a duplicate exists, the last-registered tool is the
// one that executes.
func (m *Model) BindTools(tools ...*tool.Tool) {
	m.tools = append(m.tools, tools...)
}

// Tools returns the registered tools in registration order.
func (m *Model) Tools() []*tool.Tool {
	out := make([]*tool.Tool, len(m.tools))
	copy(out, m.tools)
	return out
}

// History returns the model's conversation history.
func (m *Model) History() *memory.History {
	return m.history
}

// Invoke sends prompt to the provider and returns the normalized response.
//
// The prompt is attributed to the user role unless [WithRole] says otherwise.
// When autorun is in effect and the response requests tool calls, the calls
// are executed via [Model.RunTools] and their results attached to the
// response before it is returned. When automem is in effect, the prompt turn
// and then the response are appended to History, so the response is always
// the most recent entry.
//
// Adapter errors propagate unmodified; retry and timeout policy belong to
// middleware, not here. On error nothing is written to History.
func (m *Model) Invoke(ctx context.Context, prompt string, opts ...InvokeOption) (*memory.ResponseMem, error) {
	settings := invokeSettings{role: memory.RoleUser}
	for _, opt := range opts {
		opt(&settings)
	}
	if !settings.role.Valid() {
		return nil, fmt.Errorf("invalid role %q", settings.role)
	}

	response, err := m.invoke(ctx, ai.Request{
		Model:   m.name,
		Prompt:  prompt,
		Role:    settings.role,
		History: m.history,
		Tools:   m.tools,
		Generation: &ai.GenerationConfig{
			Temperature: m.temperature,
			MaxTokens:   m.maxTokens,
		},
		Instructions:   m.instructions,
		ResponseFormat: m.responseFormat,
		Options:        m.callOptions(settings.options),
	})
	if err != nil {
		return nil, err
	}

	autorun := m.autorun
	if settings.autorun != nil {
		autorun = *settings.autorun
	}
	if autorun && len(response.ToolCalls) > 0 {
		response.ToolResults = m.RunTools(ctx, response.ToolCalls)
	}

	automem := m.automem
	if settings.automem != nil {
		automem = *settings.automem
	}
	if automem {
		m.history.Add(memory.New(prompt, settings.role))
		m.history.Add(response)
	}

	return response, nil
}

// RunTools executes the given calls against the registered tools and returns
// one result per call, in call order. Nothing escapes: an unknown name yields
// a "Tool not registered" failure, a blacklisted name a "Tool blacklisted"
// failure, and an execution error or panic is captured as the result's error
// message. Lookup is by name over the registration list, so for duplicate
// names the last-registered tool wins.
func (m *Model) RunTools(ctx context.Context, calls []tool.Call) []tool.Result {
	registry := make(map[string]*tool.Tool, len(m.tools))
	for _, t := range m.tools {
		registry[t.Name] = t
	}

	results := make([]tool.Result, 0, len(calls))
	for _, call := range calls {
		result := m.runTool(ctx, registry, call)
		if result.Failed() {
			m.logger.Warn("tool call failed", "tool", call.Name, "error", result.Err)
		} else {
			m.logger.Debug("tool call succeeded", "tool", call.Name)
		}
		results = append(results, result)
	}
	return results
}

func (m *Model) runTool(ctx context.Context, registry map[string]*tool.Tool, call tool.Call) (result tool.Result) {
	t, ok := registry[call.Name]
	if !ok {
		return tool.Failure(call.Name, "Tool not registered")
	}
	if _, banned := m.blacklist[call.Name]; banned {
		return tool.Failure(call.Name, "Tool blacklisted")
	}

	defer func() {
		if r := recover(); r != nil {
			result = tool.Failure(call.Name, fmt.Sprintf("tool panicked: %v", r))
		}
	}()

	value, err := t.Run(ctx, call.Args)
	if err != nil {
		return tool.Failure(call.Name, err.Error())
	}
	return tool.Success(call.Name, value)
}

// callOptions merges the configured provider options with per-call overrides,
// per-call keys winning.
func (m *Model) callOptions(overrides map[string]any) map[string]any {
	if len(overrides) == 0 {
		return m.options
	}
	merged := make(map[string]any, len(m.options)+len(overrides))
	for k, v := range m.options {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
