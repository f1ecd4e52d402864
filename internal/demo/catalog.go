package demo

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned by Catalog.Get for unknown demo names.
// Callers must treat it as a no-op condition: the target surface's
// existing content is left untouched.
var ErrNotFound = errors.New("demo not found")

// Catalog is an immutable mapping from demo name to line sequence.
// It is built once and shared read-only; mutation produces a new catalog.
type Catalog struct {
	demos map[string]Demo
	names []string
}

// NewCatalog builds a catalog from the given demos.
// Demos are validated and names must be unique.
func NewCatalog(demos ...Demo) (*Catalog, error) {
	c := &Catalog{demos: make(map[string]Demo, len(demos))}
	for _, d := range demos {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.demos[d.Name]; exists {
			return nil, fmt.Errorf("duplicate demo name %q", d.Name)
		}
		c.demos[d.Name] = d.clone()
	}
	c.names = sortedNames(c.demos)
	return c, nil
}

// Get returns the demo stored under name, or ErrNotFound.
// The returned demo is a copy; modifying it does not affect the catalog.
func (c *Catalog) Get(name string) (Demo, error) {
	d, ok := c.demos[name]
	if !ok {
		return Demo{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return d.clone(), nil
}

// Has returns true if the catalog contains a demo with the given name.
func (c *Catalog) Has(name string) bool {
	_, ok := c.demos[name]
	return ok
}

// Names returns all demo names in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of demos in the catalog.
func (c *Catalog) Len() int {
	return len(c.demos)
}

// Merge returns a new catalog containing all demos from c plus all demos
// from other; on name collision the demo from other wins.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := &Catalog{demos: make(map[string]Demo, len(c.demos)+len(other.demos))}
	for name, d := range c.demos {
		merged.demos[name] = d
	}
	for name, d := range other.demos {
		merged.demos[name] = d
	}
	merged.names = sortedNames(merged.demos)
	return merged
}

func sortedNames(demos map[string]Demo) []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
