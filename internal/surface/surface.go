package surface

import "github.com/dshills/termplay/internal/style"

// Node is a handle to a line under construction via character reveal.
// It is created by BeginLine and fed by AppendChar.
type Node interface {
	// Text returns the characters revealed so far.
	Text() string
}

// Surface is the rendering target for playback. Implementations must be
// safe for concurrent use: line tasks and character-reveal sub-tasks may
// run on different goroutines.
type Surface interface {
	// ID returns the stable identity used for session ownership tracking.
	ID() string

	// AppendLine appends a complete line in the given color.
	AppendLine(text string, color style.Color)

	// BeginLine appends an empty line and returns a handle for
	// character-by-character reveal.
	BeginLine(color style.Color) Node

	// AppendChar reveals one more character on the given node.
	// Nodes from other surfaces are ignored.
	AppendChar(n Node, r rune)

	// ScrollToBottom scrolls the surface so its newest content is visible.
	ScrollToBottom()

	// Clear removes all rendered content.
	Clear()
}
