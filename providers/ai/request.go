package ai

import (
	"github.com/synapticlabs/synaptic/core/memory"
	"github.com/synapticlabs/synaptic/core/tool"
	"github.com/synapticlabs/synaptic/internal/jsonschema"
)

// Request carries everything an [Adapter] needs for one provider call.
type Request struct {
	// Model is the vendor model identifier. Adapters may fall back to a
	// vendor default when empty.
	Model string

	// Prompt is the new turn to send, attributed to Role.
	Prompt string
	Role   memory.Role

	// History supplies the prior conversational turns, oldest first. May be
	// nil for a stateless call.
	History *memory.History

	// Tools lists the declarations advertised to the vendor. Nil or empty
	// means no function calling.
	Tools []*tool.Tool

	// Instructions is an optional system prompt prepended to the
	// conversation in the vendor's preferred location.
	Instructions string

	// Generation holds sampling parameters.
	Generation *GenerationConfig

	// ResponseFormat requests structured output. When set, adapters switch
	// the vendor into its JSON/schema mode and tools are not sent.
	ResponseFormat *ResponseFormat

	// Options are provider-specific parameters passed through verbatim into
	// the vendor request body, overriding any field the adapter computed.
	Options map[string]any
}

// GenerationConfig holds the sampling parameters shared across vendors.
type GenerationConfig struct {
	// Temperature in [0..2]; nil leaves the vendor default in place.
	Temperature *float64
	// MaxTokens caps the response length; 0 leaves the vendor default.
	MaxTokens int
}

// ResponseFormat describes a structured-output request.
type ResponseFormat struct {
	// Schema the response must conform to.
	Schema *jsonschema.Schema
	// Name labels the schema for vendors that require one; adapters default
	// it when empty.
	Name string
}
