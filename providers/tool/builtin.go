package tools

import (
	"fmt"

	"github.com/synapticlabs/synaptic/core/tool"
	"github.com/synapticlabs/synaptic/providers/tool/calculator"
	"github.com/synapticlabs/synaptic/providers/tool/webfetch"
)

// Builtins returns a catalog holding every tool shipped with the library.
func Builtins() *Catalog {
	return NewCatalogWithTools(
		calculator.New(),
		webfetch.New(),
	)
}

// Resolve maps names to built-in tools, preserving order. It fails on the
// first unknown name, listing the available ones.
func Resolve(names ...string) ([]*tool.Tool, error) {
	catalog := Builtins()

	resolved := make([]*tool.Tool, 0, len(names))
	for _, name := range names {
		t, ok := catalog.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown tool %q, available: %v", name, catalog.Names())
		}
		resolved = append(resolved, t)
	}
	return resolved, nil
}
