// Package ai defines the contract between the model façade and
// provider-specific adapters. An [Adapter] turns one [Request] (prompt,
// history, tool declarations, generation settings) into a normalized
// [memory.ResponseMem]. Vendor implementations live in the subpackages
// (openai, gemini, deepseek); this package holds only the shared types.
package ai
