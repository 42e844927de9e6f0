package tool

import (
	"fmt"
	"sort"

	"github.com/synapticlabs/synaptic/internal/utils"
)

// Call is a provider-requested invocation of a named tool. Adapters produce
// Calls when parsing a provider response; the model consumes them during
// automatic tool execution.
type Call struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// Arg returns the argument stored under key and whether it was present.
func (c Call) Arg(key string) (any, bool) {
	v, ok := c.Args[key]
	return v, ok
}

// ArgNames returns the argument keys in sorted order.
func (c Call) ArgNames() []string {
	names := make([]string, 0, len(c.Args))
	for k := range c.Args {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (c Call) String() string {
	return fmt.Sprintf("Call(%s, args=%s)", c.Name, utils.Truncate(fmt.Sprintf("%v", c.Args), 120))
}

// Result is the outcome of one attempted tool call: either a value or an
// error message, never both. The explicit sum keeps "the tool returned X"
// and "the tool failed with Y" distinguishable by shape instead of by key
// presence in an untyped map.
type Result struct {
	Name  string `json:"name"`
	Value any    `json:"result,omitempty"`
	Err   string `json:"error,omitempty"`
}

// Success builds a Result carrying the value a tool returned.
func Success(name string, value any) Result {
	return Result{Name: name, Value: value}
}

// Failure builds a Result carrying an error message instead of a value.
func Failure(name, message string) Result {
	return Result{Name: name, Err: message}
}

// Failed reports whether this result records an error.
func (r Result) Failed() bool {
	return r.Err != ""
}
