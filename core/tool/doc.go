// Package tool defines the callable wrapper exposed to model providers.
// A [Tool] binds a name and a JSON-Schema declaration to a Go function with
// optional default parameters; [Call] and [Result] carry the request and the
// outcome of one provider-driven invocation. Use [NewTyped] to derive the
// declaration automatically from a typed function signature.
package tool
