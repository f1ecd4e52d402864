package demo

import "fmt"

// Demo is a named, ordered sequence of lines. Sequences are authored with
// nondecreasing delays; the engine schedules each line at its own absolute
// offset and does not sort.
type Demo struct {
	Name  string
	Lines []Line
}

// Validate checks that the demo has a name and well-formed lines.
func (d Demo) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("demo has no name")
	}
	for i, l := range d.Lines {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("demo %q line %d: %w", d.Name, i, err)
		}
	}
	return nil
}

// Len returns the number of lines in the demo.
func (d Demo) Len() int {
	return len(d.Lines)
}

// clone returns a deep copy so catalog consumers cannot mutate stored demos.
func (d Demo) clone() Demo {
	lines := make([]Line, len(d.Lines))
	copy(lines, d.Lines)
	return Demo{Name: d.Name, Lines: lines}
}
