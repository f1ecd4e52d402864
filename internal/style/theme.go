package style

import "github.com/dshills/termplay/internal/demo"

// Theme maps semantic color tags to concrete display colors.
// Resolution never fails: an unrecognized tag resolves to the gray mapping.
// Themes are value-built before playback starts and read-only afterwards.
type Theme struct {
	colors map[demo.ColorTag]Color
}

// DefaultTheme returns the standard terminal palette.
func DefaultTheme() *Theme {
	return &Theme{colors: map[demo.ColorTag]Color{
		demo.TagWhite:   FromRGB(0xF8, 0xF8, 0xF2),
		demo.TagCyan:    FromRGB(0x8B, 0xE9, 0xFD),
		demo.TagGreen:   FromRGB(0x50, 0xFA, 0x7B),
		demo.TagYellow:  FromRGB(0xF1, 0xFA, 0x8C),
		demo.TagRed:     FromRGB(0xFF, 0x55, 0x55),
		demo.TagGray:    FromRGB(0x99, 0x99, 0x99),
		demo.TagDimGray: FromRGB(0x69, 0x69, 0x69),
	}}
}

// Resolve maps a tag to its display color. Unknown tags fall back to the
// gray mapping; this is an expected case, not an error.
func (t *Theme) Resolve(tag demo.ColorTag) Color {
	if c, ok := t.colors[tag]; ok {
		return c
	}
	return t.colors[demo.TagGray]
}

// With returns a copy of the theme with the given tag remapped.
func (t *Theme) With(tag demo.ColorTag, c Color) *Theme {
	colors := make(map[demo.ColorTag]Color, len(t.colors)+1)
	for k, v := range t.colors {
		colors[k] = v
	}
	colors[tag] = c
	return &Theme{colors: colors}
}

// Tags returns the tags the theme has explicit mappings for.
func (t *Theme) Tags() []demo.ColorTag {
	tags := make([]demo.ColorTag, 0, len(t.colors))
	for tag := range t.colors {
		tags = append(tags, tag)
	}
	return tags
}
