package surface

import (
	"sync"

	"github.com/dshills/termplay/internal/style"
)

// RenderedLine is a snapshot of one line on a Memory surface.
type RenderedLine struct {
	Text  string
	Color style.Color
	// Typed is true if the line was built through the character-reveal
	// path (BeginLine + AppendChar) rather than appended whole.
	Typed bool
}

// Memory is an in-memory Surface for tests. It records every append,
// scroll, and clear so tests can assert exact rendering behavior.
type Memory struct {
	mu      sync.Mutex
	id      string
	lines   []*memLine
	scrolls int
	clears  int
}

type memLine struct {
	owner *Memory
	runes []rune
	color style.Color
	typed bool
}

// Text returns the characters revealed so far.
func (l *memLine) Text() string {
	l.owner.mu.Lock()
	defer l.owner.mu.Unlock()
	return string(l.runes)
}

// NewMemory creates a memory surface with the given identity.
func NewMemory(id string) *Memory {
	return &Memory{id: id}
}

// ID returns the surface identity.
func (m *Memory) ID() string { return m.id }

// AppendLine appends a complete line.
func (m *Memory) AppendLine(text string, color style.Color) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, &memLine{owner: m, runes: []rune(text), color: color})
}

// BeginLine appends an empty typed line and returns its handle.
func (m *Memory) BeginLine(color style.Color) Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := &memLine{owner: m, color: color, typed: true}
	m.lines = append(m.lines, l)
	return l
}

// AppendChar reveals one more character on the given node.
func (m *Memory) AppendChar(n Node, r rune) {
	l, ok := n.(*memLine)
	if !ok || l.owner != m {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	l.runes = append(l.runes, r)
}

// ScrollToBottom records a scroll request.
func (m *Memory) ScrollToBottom() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scrolls++
}

// Clear removes all rendered content.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = nil
	m.clears++
}

// Lines returns a snapshot of the rendered lines.
func (m *Memory) Lines() []RenderedLine {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]RenderedLine, len(m.lines))
	for i, l := range m.lines {
		out[i] = RenderedLine{Text: string(l.runes), Color: l.color, Typed: l.typed}
	}
	return out
}

// Texts returns just the rendered line texts, in order.
func (m *Memory) Texts() []string {
	lines := m.Lines()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

// ScrollCount returns how many scroll requests the surface has seen.
func (m *Memory) ScrollCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scrolls
}

// ClearCount returns how many times the surface has been cleared.
func (m *Memory) ClearCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}

// Ensure Memory implements Surface.
var _ Surface = (*Memory)(nil)
