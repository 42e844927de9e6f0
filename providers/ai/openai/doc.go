// Package openai implements the [ai.Adapter] interface for the OpenAI
// chat-completions API. It converts generic requests into the
// /chat/completions wire format, maps responses back into normalized
// [memory.ResponseMem] values, and supports structured output via
// json_schema response formats.
//
// The primary entry point is [New], which reads OPENAI_API_KEY and
// OPENAI_API_BASE_URL from the environment. [NewCompatible] serves vendors
// that speak the same wire format under a different base URL (DeepSeek,
// OpenRouter, local inference servers).
package openai
