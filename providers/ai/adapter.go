package ai

import (
	"context"
	"net/http"

	"github.com/synapticlabs/synaptic/core/memory"
)

// Adapter is the provider-specific translation and transport layer between
// the core and a vendor LLM API. An implementation must:
//
//   - translate the request's History and prompt into the vendor's
//     conversational-turn format;
//   - translate each tool's declaration into the vendor's function-schema
//     format;
//   - perform the network call;
//   - parse the vendor reply into a [memory.ResponseMem] with the message
//     text (possibly empty), the ordered tool calls the model requested, and
//     a Created timestamp stamped at parse time;
//   - never populate ToolResults; executing tools is the model's job.
//
// Failures (network errors, malformed responses, auth failures) are surfaced
// as returned errors and propagate unmodified through the model to its
// caller. The core has no opinion on retry or backoff policy; wrap the
// adapter in middleware if you want one.
type Adapter interface {
	// Invoke sends one prompt, with conversational context and tool
	// declarations, and returns the normalized provider response.
	Invoke(ctx context.Context, request Request) (*memory.ResponseMem, error)

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Adapter

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Adapter

	// WithHTTPClient sets the HTTP client used for outbound requests.
	WithHTTPClient(client *http.Client) Adapter
}
