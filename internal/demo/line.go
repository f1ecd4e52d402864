package demo

import (
	"fmt"
	"time"
)

// ColorTag is a semantic color name attached to a line.
// Tags are resolved to concrete display colors by a style.Theme;
// unrecognized tags resolve to the gray mapping rather than erroring.
type ColorTag string

// Known color tags.
const (
	TagWhite   ColorTag = "white"
	TagCyan    ColorTag = "cyan"
	TagGreen   ColorTag = "green"
	TagYellow  ColorTag = "yellow"
	TagRed     ColorTag = "red"
	TagGray    ColorTag = "gray"
	TagDimGray ColorTag = "dimgray"
)

// Line is one immutable scripted output line.
type Line struct {
	// Text is the line content, appended verbatim.
	Text string

	// Color is the semantic color tag for the line.
	Color ColorTag

	// Delay is the offset from the start of playback at which the line
	// renders. It is absolute, not a gap from the previous line.
	Delay time.Duration
}

// Validate checks that the line is well formed.
func (l Line) Validate() error {
	if l.Delay < 0 {
		return fmt.Errorf("negative delay %v", l.Delay)
	}
	return nil
}
