// Package utils holds small internal helpers shared across the module:
// a generic JSON POST helper used by every provider adapter, string
// truncation for log and error previews, and a pointer constructor.
package utils
