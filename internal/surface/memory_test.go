package surface

import (
	"testing"

	"github.com/dshills/termplay/internal/style"
)

func TestMemoryAppendLine(t *testing.T) {
	m := NewMemory("test")
	green := style.FromRGB(0x50, 0xFA, 0x7B)

	m.AppendLine("hello", green)
	m.AppendLine("world", style.ColorDefault)

	lines := m.Lines()
	if len(lines) != 2 {
		t.Fatalf("Lines = %d, want 2", len(lines))
	}
	if lines[0].Text != "hello" || !lines[0].Color.Equals(green) {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[0].Typed || lines[1].Typed {
		t.Error("whole-line appends must not be marked typed")
	}
}

func TestMemoryCharacterReveal(t *testing.T) {
	m := NewMemory("test")

	node := m.BeginLine(style.ColorDefault)
	if got := m.Texts()[0]; got != "" {
		t.Fatalf("new line text = %q, want empty", got)
	}

	for _, r := range "abc" {
		m.AppendChar(node, r)
	}

	if got := node.Text(); got != "abc" {
		t.Errorf("node text = %q, want %q", got, "abc")
	}
	lines := m.Lines()
	if !lines[0].Typed {
		t.Error("revealed line should be marked typed")
	}
	if lines[0].Text != "abc" {
		t.Errorf("line text = %q, want %q", lines[0].Text, "abc")
	}
}

func TestMemoryIgnoresForeignNodes(t *testing.T) {
	a := NewMemory("a")
	b := NewMemory("b")

	node := a.BeginLine(style.ColorDefault)
	b.AppendChar(node, 'x')

	if node.Text() != "" {
		t.Errorf("foreign AppendChar mutated node: %q", node.Text())
	}
}

func TestMemoryClear(t *testing.T) {
	m := NewMemory("test")
	m.AppendLine("one", style.ColorDefault)
	m.ScrollToBottom()

	m.Clear()

	if len(m.Texts()) != 0 {
		t.Errorf("lines after clear: %v", m.Texts())
	}
	if m.ClearCount() != 1 {
		t.Errorf("ClearCount = %d, want 1", m.ClearCount())
	}
	if m.ScrollCount() != 1 {
		t.Errorf("ScrollCount = %d, want 1", m.ScrollCount())
	}
}
