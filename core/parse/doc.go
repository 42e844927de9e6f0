// Package parse converts LLM-produced text into Go values. It tolerates the
// malformed JSON models commonly emit by repairing the payload with
// jsonrepair before giving up. Provider adapters use [Args] to decode
// tool-call argument payloads; typed tools use [StringAs] for their inputs.
package parse
