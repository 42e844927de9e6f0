package deepseek

import (
	"os"

	"github.com/synapticlabs/synaptic/providers/ai/openai"
)

const (
	defaultBaseURL = "https://api.deepseek.com/v1"
	defaultModel   = "deepseek-chat"
)

// New creates a DeepSeek adapter. DeepSeek speaks the OpenAI chat-completions
// wire format, so this is a configuration of the openai adapter pointed at
// DeepSeek's endpoint. Environment variables:
//   - DEEPSEEK_API_KEY: API key for authentication
//   - DEEPSEEK_API_BASE_URL: base URL override (optional)
func New() *openai.Adapter {
	baseURL := os.Getenv("DEEPSEEK_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return openai.NewCompatible(baseURL, os.Getenv("DEEPSEEK_API_KEY"), defaultModel)
}
