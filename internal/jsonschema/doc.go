// Package jsonschema derives JSON-Schema shaped declarations from Go types
// via reflection. Tool constructors use it to build the parameter schema
// advertised to LLM providers; the rest of the core treats the resulting
// [Schema] as an opaque declaration.
package jsonschema
