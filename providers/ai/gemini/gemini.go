package gemini

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
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash-lite"
)

// Adapter implements [ai.Adapter] for Google's Gemini generative language API.
type Adapter struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ ai.Adapter = (*Adapter)(nil)

// New creates a Gemini adapter configured from the environment:
//   - GEMINI_API_KEY: API key for authentication
//   - GEMINI_API_BASE_URL: base URL override (optional)
func New() *Adapter {
	baseURL := os.Getenv("GEMINI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Adapter{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: baseURL,
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

// Invoke implements [ai.Adapter]. Authentication uses the x-goog-api-key
// header rather than the Bearer scheme.
func (a *Adapter) Invoke(ctx context.Context, request ai.Request) (*memory.ResponseMem, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	model := request.Model
	if model == "" {
		model = defaultModel
	}
	url := fmt.Sprintf("%s/models/%s:generateContent", a.baseURL, model)

	body, err := utils.MergeOptions(requestToGemini(request), request.Options)
	if err != nil {
		return nil, err
	}

	resp, err := utils.DoPost[generateContentResponse](ctx, a.client, url, "", body,
		utils.Header{Key: "x-goog-api-key", Value: a.apiKey})
	if err != nil {
		return nil, err
	}

	return responseToMem(*resp)
}
