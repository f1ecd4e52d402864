package loader

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dshills/termplay/internal/demo"
)

// ParseJSON reads a catalog of the form
//
//	{"demos": [{"name": "...", "lines": [{"text": "...", "color": "...", "delay_ms": 0}]}]}
func ParseJSON(data []byte) (*demo.Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse json catalog: invalid json")
	}

	root := gjson.GetBytes(data, "demos")
	if !root.IsArray() {
		return nil, fmt.Errorf("parse json catalog: missing demos array")
	}

	var demos []demo.Demo
	root.ForEach(func(_, jd gjson.Result) bool {
		d := demo.Demo{Name: jd.Get("name").String()}
		jd.Get("lines").ForEach(func(_, jl gjson.Result) bool {
			d.Lines = append(d.Lines, demo.Line{
				Text:  jl.Get("text").String(),
				Color: colorTag(jl.Get("color").String()),
				Delay: time.Duration(jl.Get("delay_ms").Int()) * time.Millisecond,
			})
			return true
		})
		demos = append(demos, d)
		return true
	})
	return demo.NewCatalog(demos...)
}
