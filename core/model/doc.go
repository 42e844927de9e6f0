// Package model is the user-facing façade of the library. A [Model] binds a
// provider adapter to a conversation [memory.History] and a set of
// [tool.Tool]s, and exposes a single [Model.Invoke] entry point. The autorun
// and automem behavior toggles are set at construction and can be overridden
// per call with functional options. Cross-cutting concerns wrap the adapter call as a
// [Middleware] chain.
package model
