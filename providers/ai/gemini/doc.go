// Package gemini implements the [ai.Adapter] interface for Google's Gemini
// generative language API. It converts generic requests into the
// generateContent wire format (user/model role mapping, systemInstruction,
// functionCall parts) and maps replies back into normalized
// [memory.ResponseMem] values.
//
// The primary entry point is [New], which reads GEMINI_API_KEY and
// GEMINI_API_BASE_URL from the environment.
package gemini
