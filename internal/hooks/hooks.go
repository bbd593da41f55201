package hooks

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// FileName is the optional per-project hook script. When present, its
// prebuild(args) function may amend the assembled build argument vector.
// Hooks apply to build/run builds only, never to clean or package.
const FileName = "nxswift.hooks.lua"

const hookTimeout = 1 * time.Second

// Hooks holds a loaded hook script.
type Hooks struct {
	source string
}

// Load reads FileName from dir. A missing file yields (nil, nil).
func Load(dir string) (*Hooks, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %v", FileName, err)
	}
	return &Hooks{source: string(data)}, nil
}

// Prebuild runs the script's prebuild function over the assembled argument
// vector and returns the amended vector. The script runs sandboxed: base,
// table, string and math libraries only, no io or os, wall-clock timeout.
func (h *Hooks) Prebuild(args []string) ([]string, error) {
	L := newSandboxState()
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), hookTimeout)
	defer cancel()
	L.SetContext(ctx)

	if err := L.DoString(h.source); err != nil {
		return nil, fmt.Errorf("%s: %v", FileName, err)
	}
	fn, ok := L.GetGlobal("prebuild").(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("%s does not define a prebuild function", FileName)
	}

	tbl := L.NewTable()
	for _, a := range args {
		tbl.Append(lua.LString(a))
	}
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, tbl); err != nil {
		return nil, fmt.Errorf("%s: prebuild failed: %v", FileName, err)
	}
	ret := L.Get(-1)
	L.Pop(1)

	out, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%s: prebuild must return a sequence of strings", FileName)
	}
	var amended []string
	var convErr error
	out.ForEach(func(k, v lua.LValue) {
		if convErr != nil {
			return
		}
		s, ok := v.(lua.LString)
		if !ok {
			convErr = fmt.Errorf("%s: prebuild must return a sequence of strings", FileName)
			return
		}
		amended = append(amended, string(s))
	})
	if convErr != nil {
		return nil, convErr
	}
	return amended, nil
}

// newSandboxState opens only the side-effect-free standard libraries.
func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	return L
}
