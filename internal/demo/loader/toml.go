package loader

import (
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/termplay/internal/demo"
)

type tomlCatalog struct {
	Demos []tomlDemo `toml:"demo"`
}

type tomlDemo struct {
	Name  string     `toml:"name"`
	Lines []tomlLine `toml:"line"`
}

type tomlLine struct {
	Text    string `toml:"text"`
	Color   string `toml:"color"`
	DelayMs int64  `toml:"delay_ms"`
}

// ParseTOML reads a catalog of [[demo]] tables, each with [[demo.line]]
// entries carrying text, color, and delay_ms.
func ParseTOML(data []byte) (*demo.Catalog, error) {
	var doc tomlCatalog
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse toml catalog: %w", err)
	}

	demos := make([]demo.Demo, 0, len(doc.Demos))
	for _, td := range doc.Demos {
		d := demo.Demo{Name: td.Name}
		for _, tl := range td.Lines {
			d.Lines = append(d.Lines, demo.Line{
				Text:  tl.Text,
				Color: colorTag(tl.Color),
				Delay: time.Duration(tl.DelayMs) * time.Millisecond,
			})
		}
		demos = append(demos, d)
	}
	return demo.NewCatalog(demos...)
}

// colorTag maps a catalog color name onto a tag, defaulting to white.
func colorTag(name string) demo.ColorTag {
	if name == "" {
		return demo.TagWhite
	}
	return demo.ColorTag(name)
}
