// Package deepseek configures the OpenAI-compatible adapter for DeepSeek's
// chat API. DeepSeek exposes the same wire format as OpenAI chat completions,
// so the package contains only endpoint and default-model wiring.
package deepseek
