package tools

import (
	"sort"
	"strings"
	"sync"

	"github.com/synapticlabs/synaptic/core/tool"
)

// Catalog is a thread-safe, name-keyed registry of tools. Names are matched
// case-insensitively. Unlike a model's registration list, a Catalog holds at
// most one tool per name; adding a duplicate replaces the previous entry.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]*tool.Tool
}

// NewCatalog creates a new empty tool catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tools: make(map[string]*tool.Tool),
	}
}

// NewCatalogWithTools creates a new catalog pre-populated with the given tools.
func NewCatalogWithTools(tools ...*tool.Tool) *Catalog {
	catalog := NewCatalog()
	catalog.Add(tools...)
	return catalog
}

// Add registers tools under their lowercased names, replacing any existing
// entry with the same name.
func (c *Catalog) Add(tools ...*tool.Tool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		c.tools[strings.ToLower(t.Name)] = t
	}
}

// Get retrieves a tool by name (case-insensitive).
func (c *Catalog) Get(name string) (*tool.Tool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, exists := c.tools[strings.ToLower(name)]
	return t, exists
}

// Has reports whether a tool with the given name exists (case-insensitive).
func (c *Catalog) Has(name string) bool {
	_, exists := c.Get(name)
	return exists
}

// Remove deletes a tool by name (case-insensitive) and reports whether it was
// present.
func (c *Catalog) Remove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := c.tools[key]; exists {
		delete(c.tools, key)
		return true
	}
	return false
}

// Names returns the registered tool names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.tools))
	for name := range c.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered tools in name order.
func (c *Catalog) All() []*tool.Tool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.tools))
	for name := range c.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	all := make([]*tool.Tool, 0, len(names))
	for _, name := range names {
		all = append(all, c.tools[name])
	}
	return all
}

// Len returns the number of registered tools.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}
