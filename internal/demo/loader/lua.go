package loader

import (
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/termplay/internal/demo"
)

// ParseLua runs a catalog script in a sandboxed Lua state. The script
// declares demos by calling the demo() builtin:
//
//	demo{
//	  name = "greeting",
//	  lines = {
//	    {text = "$ hello", color = "white", delay_ms = 0},
//	    {text = "world", color = "green", delay_ms = 400},
//	  },
//	}
//
// Only the base, table, string, and math libraries are opened; scripts
// have no access to io, os, or package loading.
func ParseLua(data []byte, name string) (*demo.Catalog, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, open := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(open.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(open.name)); err != nil {
			return nil, fmt.Errorf("open lua library %s: %w", open.name, err)
		}
	}

	var demos []demo.Demo
	L.SetGlobal("demo", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		demos = append(demos, luaDemo(tbl))
		return 0
	}))

	if err := L.DoString(string(data)); err != nil {
		return nil, fmt.Errorf("run lua catalog %s: %w", name, err)
	}
	return demo.NewCatalog(demos...)
}

func luaDemo(tbl *lua.LTable) demo.Demo {
	d := demo.Demo{Name: lua.LVAsString(tbl.RawGetString("name"))}

	lines, ok := tbl.RawGetString("lines").(*lua.LTable)
	if !ok {
		return d
	}
	lines.ForEach(func(_, v lua.LValue) {
		lt, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		d.Lines = append(d.Lines, demo.Line{
			Text:  lua.LVAsString(lt.RawGetString("text")),
			Color: colorTag(lua.LVAsString(lt.RawGetString("color"))),
			Delay: time.Duration(lua.LVAsNumber(lt.RawGetString("delay_ms"))) * time.Millisecond,
		})
	})
	return d
}
