package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/synapticlabs/synaptic/internal/jsonschema"
)

// NewTyped constructs a Tool from a strongly-typed Go function. The parameter
// declaration is derived from the input type I via reflection, and incoming
// argument maps are decoded into I before the function runs.
//
// Example:
//
//	type addInput struct {
//	    A float64 `json:"a"`
//	    B float64 `json:"b"`
//	}
//	add, err := tool.NewTyped("add", "Adds two numbers.",
//	    func(ctx context.Context, in addInput) (float64, error) {
//	        return in.A + in.B, nil
//	    })
func NewTyped[I, O any](name, description string, fn func(ctx context.Context, input I) (O, error), options ...Option) (*Tool, error) {
	if fn == nil {
		return nil, fmt.Errorf("tool %q: %w", name, ErrInvalidTool)
	}

	declaration := jsonschema.Generate[I]()
	declaration.Description = description

	wrapped := func(ctx context.Context, args map[string]any) (any, error) {
		input, err := decodeArgs[I](args)
		if err != nil {
			return nil, fmt.Errorf("tool %q: %w", name, err)
		}
		return fn(ctx, input)
	}

	return New(name, declaration, wrapped, options...)
}

// decodeArgs converts a generic argument map into the typed input through a
// JSON round trip, reusing the struct's json tags for field mapping.
func decodeArgs[I any](args map[string]any) (I, error) {
	var input I
	raw, err := json.Marshal(args)
	if err != nil {
		return input, fmt.Errorf("encode arguments: %w", err)
	}
	if err := json.Unmarshal(raw, &input); err != nil {
		return input, fmt.Errorf("decode arguments: %w", err)
	}
	return input, nil
}
