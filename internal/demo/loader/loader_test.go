package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/termplay/internal/demo"
)

const tomlCatalogSrc = `
[[demo]]
name = "greeting"

[[demo.line]]
text = "$ hello"
color = "white"
delay_ms = 0

[[demo.line]]
text = "world"
color = "green"
delay_ms = 400
`

const jsonCatalogSrc = `{
  "demos": [
    {
      "name": "greeting",
      "lines": [
        {"text": "$ hello", "color": "white", "delay_ms": 0},
        {"text": "world", "color": "green", "delay_ms": 400}
      ]
    }
  ]
}`

const luaCatalogSrc = `
demo{
  name = "greeting",
  lines = {
    {text = "$ hello", color = "white", delay_ms = 0},
    {text = "world", color = "green", delay_ms = 400},
  },
}
`

func assertGreeting(t *testing.T, c *demo.Catalog) {
	t.Helper()

	d, err := c.Get("greeting")
	if err != nil {
		t.Fatalf("Get(greeting): %v", err)
	}
	if len(d.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(d.Lines))
	}
	first := d.Lines[0]
	if first.Text != "$ hello" || first.Color != demo.TagWhite || first.Delay != 0 {
		t.Errorf("line 0 = %+v", first)
	}
	second := d.Lines[1]
	if second.Text != "world" || second.Color != demo.TagGreen || second.Delay != 400*time.Millisecond {
		t.Errorf("line 1 = %+v", second)
	}
}

func TestParseTOML(t *testing.T) {
	c, err := ParseTOML([]byte(tomlCatalogSrc))
	if err != nil {
		t.Fatalf("ParseTOML: %v", err)
	}
	assertGreeting(t, c)
}

func TestParseJSON(t *testing.T) {
	c, err := ParseJSON([]byte(jsonCatalogSrc))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	assertGreeting(t, c)
}

func TestParseLua(t *testing.T) {
	c, err := ParseLua([]byte(luaCatalogSrc), "test.lua")
	if err != nil {
		t.Fatalf("ParseLua: %v", err)
	}
	assertGreeting(t, c)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		parse func() error
	}{
		{"toml syntax", func() error {
			_, err := ParseTOML([]byte("[[demo\nname ="))
			return err
		}},
		{"json syntax", func() error {
			_, err := ParseJSON([]byte("{not json"))
			return err
		}},
		{"json missing demos", func() error {
			_, err := ParseJSON([]byte(`{"other": 1}`))
			return err
		}},
		{"lua syntax", func() error {
			_, err := ParseLua([]byte("demo{name ="), "bad.lua")
			return err
		}},
		{"lua sandbox blocks os", func() error {
			_, err := ParseLua([]byte(`os.exit(1)`), "evil.lua")
			return err
		}},
		{"toml unnamed demo", func() error {
			_, err := ParseTOML([]byte("[[demo]]\n[[demo.line]]\ntext = \"x\"\n"))
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.parse() == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"cat.toml": tomlCatalogSrc,
		"cat.json": jsonCatalogSrc,
		"cat.lua":  luaCatalogSrc,
	}
	for name, src := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		c, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s): %v", name, err)
		}
		assertGreeting(t, c)
	}
}

func TestLoadFileUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cat.yaml")
	if err := os.WriteFile(path, []byte("demos: []"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadFile(path)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("LoadFile = %v, want ErrUnknownFormat", err)
	}
}

func TestMergeLayersOverBase(t *testing.T) {
	base := demo.Builtin()

	dir := t.TempDir()
	path := filepath.Join(dir, "extra.toml")
	src := `
[[demo]]
name = "hero"

[[demo.line]]
text = "replaced"
color = "red"
delay_ms = 0
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	merged, err := Merge(base, path)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if !merged.Has("basic") {
		t.Error("merge dropped a builtin demo")
	}
	hero, err := merged.Get("hero")
	if err != nil {
		t.Fatalf("Get(hero): %v", err)
	}
	if len(hero.Lines) != 1 || hero.Lines[0].Text != "replaced" {
		t.Errorf("hero not overridden: %+v", hero.Lines)
	}
	if orig, _ := base.Get("hero"); len(orig.Lines) == 1 {
		t.Error("merge mutated the base catalog")
	}
}

func TestMergeMissingFile(t *testing.T) {
	_, err := Merge(nil, filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("expected error for missing catalog file")
	}
}
