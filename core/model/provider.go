package model

import (
	"fmt"
	"net/http"

	"github.com/synapticlabs/synaptic/providers/ai"
	"github.com/synapticlabs/synaptic/providers/ai/deepseek"
	"github.com/synapticlabs/synaptic/providers/ai/gemini"
	"github.com/synapticlabs/synaptic/providers/ai/openai"
)

// Provider selects which adapter a model constructs. The set is closed:
// adding a vendor means adding one constant and one case below, never
// touching the model's control flow.
type Provider string

const (
	ProviderOpenAI   Provider = "openai"
	ProviderGemini   Provider = "gemini"
	ProviderDeepSeek Provider = "deepseek"
)

// apiKeyEnv returns the environment variable each adapter falls back to when
// no key is configured explicitly.
func (p Provider) apiKeyEnv() string {
	switch p {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderDeepSeek:
		return "DEEPSEEK_API_KEY"
	}
	return ""
}

// newAdapter constructs the adapter for the given provider, applying the
// model's API key and optional HTTP client.
func newAdapter(provider Provider, apiKey string, client *http.Client) (ai.Adapter, error) {
	var adapter ai.Adapter

	switch provider {
	case ProviderOpenAI:
		adapter = openai.New()
	case ProviderGemini:
		adapter = gemini.New()
	case ProviderDeepSeek:
		adapter = deepseek.New()
	default:
		return nil, fmt.Errorf("unknown provider: %q", provider)
	}

	if apiKey != "" {
		adapter = adapter.WithAPIKey(apiKey)
	}
	if client != nil {
		adapter = adapter.WithHTTPClient(client)
	}
	return adapter, nil
}
