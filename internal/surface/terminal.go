package surface

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termplay/internal/style"
)

// Terminal is a tcell-backed Surface with scrollback. It keeps the full
// rendered history and follows the bottom as new content arrives.
type Terminal struct {
	mu     sync.Mutex
	id     string
	screen tcell.Screen
	lines  []*termLine
	top    int // first visible scrollback line
}

type termLine struct {
	owner *Terminal
	runes []rune
	color style.Color
}

// Text returns the characters revealed so far.
func (l *termLine) Text() string {
	l.owner.mu.Lock()
	defer l.owner.mu.Unlock()
	return string(l.runes)
}

// NewTerminal creates a terminal surface drawing to an initialized screen.
func NewTerminal(id string, screen tcell.Screen) *Terminal {
	return &Terminal{id: id, screen: screen}
}

// ID returns the surface identity.
func (t *Terminal) ID() string { return t.id }

// AppendLine appends a complete line and redraws.
func (t *Terminal) AppendLine(text string, color style.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, &termLine{owner: t, runes: []rune(text), color: color})
	t.draw()
}

// BeginLine appends an empty line for character reveal and redraws.
func (t *Terminal) BeginLine(color style.Color) Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	l := &termLine{owner: t, color: color}
	t.lines = append(t.lines, l)
	t.draw()
	return l
}

// AppendChar reveals one more character on the given node and redraws.
func (t *Terminal) AppendChar(n Node, r rune) {
	l, ok := n.(*termLine)
	if !ok || l.owner != t {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	l.runes = append(l.runes, r)
	t.draw()
}

// ScrollToBottom scrolls so the newest line is visible.
func (t *Terminal) ScrollToBottom() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, h := t.screen.Size()
	t.top = 0
	if len(t.lines) > h {
		t.top = len(t.lines) - h
	}
	t.draw()
}

// Clear removes all rendered content.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = nil
	t.top = 0
	t.draw()
}

// Redraw repaints the surface, typically after a terminal resize.
func (t *Terminal) Redraw() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, h := t.screen.Size()
	t.top = 0
	if len(t.lines) > h {
		t.top = len(t.lines) - h
	}
	t.draw()
}

// draw repaints the visible window. Caller holds t.mu.
func (t *Terminal) draw() {
	t.screen.Clear()
	w, h := t.screen.Size()

	for row := 0; row < h; row++ {
		idx := t.top + row
		if idx >= len(t.lines) {
			break
		}
		line := t.lines[idx]
		st := tcell.StyleDefault
		if !line.color.IsDefault() {
			st = st.Foreground(tcell.NewRGBColor(int32(line.color.R), int32(line.color.G), int32(line.color.B)))
		}
		col := 0
		for _, r := range line.runes {
			if col >= w {
				break
			}
			t.screen.SetContent(col, row, r, nil, st)
			col += runeWidth(r)
		}
	}
	t.screen.Show()
}

// runeWidth returns the display width of a rune.
func runeWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	if isWideRune(r) {
		return 2
	}
	return 1
}

// isWideRune checks if a rune is a double-width character.
func isWideRune(r rune) bool {
	switch {
	case r >= 0x1100 && r <= 0x115F:
		return true
	case r >= 0x2E80 && r <= 0x9FFF:
		return true
	case r >= 0xAC00 && r <= 0xD7A3:
		return true
	case r >= 0xF900 && r <= 0xFAFF:
		return true
	case r >= 0xFE30 && r <= 0xFE6F:
		return true
	case r >= 0xFF00 && r <= 0xFF60:
		return true
	case r >= 0xFFE0 && r <= 0xFFE6:
		return true
	case r >= 0x1F300 && r <= 0x1FAFF: // emoji used by the demo scripts
		return true
	case r >= 0x20000 && r <= 0x2FFFF:
		return true
	}
	return false
}

// Ensure Terminal implements Surface.
var _ Surface = (*Terminal)(nil)
