package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/synapticlabs/synaptic/internal/jsonschema"
)

// ErrInvalidTool is returned by [New] and [NewTyped] when the tool is
// constructed without a callable function.
var ErrInvalidTool = errors.New("tool function must be non-nil")

// Func is the underlying callable of a [Tool]. It receives the effective
// argument map (defaults overlaid by call-time arguments) and returns an
// arbitrary result. Errors propagate to the caller of [Tool.Run] unmodified.
type Func func(ctx context.Context, args map[string]any) (any, error)

// Tool wraps one invocable capability exposed to a model provider: a unique
// name, a JSON-Schema shaped declaration that adapters translate into each
// vendor's function-schema format, the callable itself, and optional default
// parameters merged under call-time arguments.
//
// Tools are constructed once at setup time and treated as immutable; a model
// references them, it does not own them.
type Tool struct {
	Name          string
	Declaration   *jsonschema.Schema
	Function      Func
	DefaultParams map[string]any
}

// Option configures optional Tool attributes at construction time.
type Option func(*Tool)

// WithDefaults sets the default parameter map. Call-time arguments take
// precedence over defaults on key collision.
func WithDefaults(defaults map[string]any) Option {
	return func(t *Tool) {
		t.DefaultParams = defaults
	}
}

// New constructs a Tool from a name, a parameter declaration, and a callable.
// It fails with [ErrInvalidTool] when fn is nil: a tool that cannot run is a
// construction error, not a runtime surprise. A nil declaration is replaced
// with an empty object schema so adapters always have something to translate.
func New(name string, declaration *jsonschema.Schema, fn Func, options ...Option) (*Tool, error) {
	if fn == nil {
		return nil, fmt.Errorf("tool %q: %w", name, ErrInvalidTool)
	}
	if declaration == nil {
		declaration = &jsonschema.Schema{Type: "object"}
	}

	t := &Tool{
		Name:        name,
		Declaration: declaration,
		Function:    fn,
	}
	for _, option := range options {
		option(t)
	}
	if t.DefaultParams == nil {
		t.DefaultParams = map[string]any{}
	}
	return t, nil
}

// Run computes the effective argument map as DefaultParams overlaid by kwargs
// (caller arguments win on collision) and invokes the underlying function with
// it. The function's return value and error pass through unmodified; Run never
// recovers failures; swallowing execution errors is the model's job, at the
// tool-result level.
func (t *Tool) Run(ctx context.Context, kwargs map[string]any) (any, error) {
	merged := make(map[string]any, len(t.DefaultParams)+len(kwargs))
	for k, v := range t.DefaultParams {
		merged[k] = v
	}
	for k, v := range kwargs {
		merged[k] = v
	}
	return t.Function(ctx, merged)
}
