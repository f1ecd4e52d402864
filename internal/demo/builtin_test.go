package demo

import "testing"

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()

	for _, name := range []string{"hero", "basic", "dryrun", "duplicates"} {
		if !c.Has(name) {
			t.Errorf("builtin catalog missing %q", name)
		}
	}
}

func TestBuiltinDelaysNondecreasing(t *testing.T) {
	c := Builtin()
	for _, name := range c.Names() {
		d, err := c.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		for i := 1; i < len(d.Lines); i++ {
			if d.Lines[i].Delay < d.Lines[i-1].Delay {
				t.Errorf("%s: line %d delay %v before line %d delay %v",
					name, i, d.Lines[i].Delay, i-1, d.Lines[i-1].Delay)
			}
		}
	}
}

func TestBuiltinBasicShape(t *testing.T) {
	c := Builtin()
	d, err := c.Get("basic")
	if err != nil {
		t.Fatalf("Get(basic): %v", err)
	}

	var moves []Line
	for _, l := range d.Lines {
		if l.Color == TagCyan {
			moves = append(moves, l)
		}
	}
	if len(moves) != 8 {
		t.Fatalf("basic has %d move lines, want 8", len(moves))
	}
	for i := 1; i < len(moves); i++ {
		if moves[i].Delay <= moves[i-1].Delay {
			t.Errorf("move delays not strictly increasing: %v then %v",
				moves[i-1].Delay, moves[i].Delay)
		}
	}

	last := d.Lines[len(d.Lines)-1]
	if last.Color != TagDimGray {
		t.Errorf("final line color = %q, want %q", last.Color, TagDimGray)
	}
}
