package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/synapticlabs/synaptic/core/memory"
	"github.com/synapticlabs/synaptic/internal/utils"
	"github.com/synapticlabs/synaptic/providers/ai"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	defaultModel            = "gpt-4o-mini"
	chatCompletionsEndpoint = "/chat/completions"
)

// Adapter implements [ai.Adapter] for the OpenAI chat-completions API and for
// any OpenAI-compatible vendor (see [NewCompatible]).
type Adapter struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

var _ ai.Adapter = (*Adapter)(nil)

// New creates an OpenAI adapter configured from the environment:
//   - OPENAI_API_KEY: API key for authentication
//   - OPENAI_API_BASE_URL: base URL override (optional)
func New() *Adapter {
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return NewCompatible(baseURL, os.Getenv("OPENAI_API_KEY"), defaultModel)
}

// NewCompatible creates an adapter for any vendor speaking the OpenAI
// chat-completions wire format under a different base URL. fallbackModel is
// used when a request does not name a model.
func NewCompatible(baseURL, apiKey, fallbackModel string) *Adapter {
	return &Adapter{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   fallbackModel,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the adapter.
func (a *Adapter) WithAPIKey(apiKey string) ai.Adapter {
	a.apiKey = apiKey
	return a
}

// WithBaseURL overrides the base URL for API requests.
func (a *Adapter) WithBaseURL(baseURL string) ai.Adapter {
	a.baseURL = baseURL
	return a
}

// WithHTTPClient sets a custom HTTP client.
func (a *Adapter) WithHTTPClient(client *http.Client) ai.Adapter {
	a.client = client
	return a
}

// Invoke implements [ai.Adapter].
func (a *Adapter) Invoke(ctx context.Context, request ai.Request) (*memory.ResponseMem, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	model := request.Model
	if model == "" {
		model = a.model
	}

	body, err := utils.MergeOptions(requestToChat(request, model), request.Options)
	if err != nil {
		return nil, err
	}

	resp, err := utils.DoPost[chatResponse](ctx, a.client, a.baseURL+chatCompletionsEndpoint, a.apiKey, body)
	if err != nil {
		return nil, err
	}

	return responseToMem(*resp)
}
