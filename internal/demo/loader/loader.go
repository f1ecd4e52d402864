// Package loader reads demo catalogs from TOML, JSON, and Lua files and
// merges them into the running catalog.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/termplay/internal/demo"
)

// ErrUnknownFormat is returned for file extensions no parser handles.
var ErrUnknownFormat = fmt.Errorf("unknown catalog format")

// LoadFile parses one catalog file, choosing the parser by extension.
func LoadFile(path string) (*demo.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".json":
		return ParseJSON(data)
	case ".lua":
		return ParseLua(data, path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Merge loads every path and layers the results over base. Later files
// win on name collisions. A nil base starts from an empty catalog.
func Merge(base *demo.Catalog, paths ...string) (*demo.Catalog, error) {
	merged := base
	if merged == nil {
		empty, err := demo.NewCatalog()
		if err != nil {
			return nil, err
		}
		merged = empty
	}
	for _, path := range paths {
		c, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		merged = merged.Merge(c)
	}
	return merged, nil
}
