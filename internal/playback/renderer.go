package playback

import (
	"github.com/dshills/termplay/internal/demo"
	"github.com/dshills/termplay/internal/style"
	"github.com/dshills/termplay/internal/surface"
)

// Renderer appends demo lines to a surface. It never removes content;
// clearing is the session's job when playback starts. Every append is
// followed by a scroll-to-bottom so the newest line stays visible.
type Renderer struct {
	theme *style.Theme
}

// NewRenderer creates a renderer resolving colors through the given theme.
// A nil theme uses the default palette.
func NewRenderer(theme *style.Theme) *Renderer {
	if theme == nil {
		theme = style.DefaultTheme()
	}
	return &Renderer{theme: theme}
}

// Append renders a complete line in a single step.
func (r *Renderer) Append(s surface.Surface, line demo.Line) {
	s.AppendLine(line.Text, r.theme.Resolve(line.Color))
	s.ScrollToBottom()
}

// Begin opens an empty line for character reveal and returns its handle.
func (r *Renderer) Begin(s surface.Surface, line demo.Line) surface.Node {
	node := s.BeginLine(r.theme.Resolve(line.Color))
	s.ScrollToBottom()
	return node
}

// Type reveals one more character of a line opened with Begin.
func (r *Renderer) Type(s surface.Surface, node surface.Node, ch rune) {
	s.AppendChar(node, ch)
	s.ScrollToBottom()
}
