// Package tools collects the built-in tool implementations and a [Catalog]
// for managing them by name. [Builtins] returns a catalog of every shipped
// tool and [Resolve] maps configuration-supplied names to tools ready for
// model registration.
package tools
