package config

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/cjkmark/internal/thing"
)

// LuaExtension runs user extension scripts that register include-syntax
// entries directly into a thing registry.
//
// Scripts see a single global:
//
//	register_thing(name, forward, backward)
//
// where forward and backward are optional character sets. Only safe Lua
// standard libraries are opened; io, os, and debug are not available to
// extension scripts.
type LuaExtension struct {
	reg *thing.Registry
}

// NewLuaExtension creates an extension runner targeting reg.
func NewLuaExtension(reg *thing.Registry) *LuaExtension {
	return &LuaExtension{reg: reg}
}

// RunFile executes the extension script at path.
func (x *LuaExtension) RunFile(path string) error {
	L := x.newState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("running extension %s: %w", path, err)
	}
	return nil
}

// Run executes an extension script from source.
func (x *LuaExtension) Run(src string) error {
	L := x.newState()
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return fmt.Errorf("running extension: %w", err)
	}
	return nil
}

// newState creates a Lua state with safe libraries and the registration API.
func (x *LuaExtension) newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Open base library (print, type, pairs, ipairs, etc.) and safe helpers.
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	L.SetGlobal("register_thing", L.NewFunction(x.registerThing))
	return L
}

// registerThing implements the register_thing Lua function.
func (x *LuaExtension) registerThing(L *lua.LState) int {
	name := L.CheckString(1)
	forward := L.OptString(2, "")
	backward := L.OptString(3, "")

	t, ok := thing.Parse(name)
	if !ok {
		L.ArgError(1, "unknown thing: "+name)
		return 0
	}

	x.reg.Set(t, thing.IncludeSyntax{
		Forward:  forward,
		Backward: backward,
	})
	return 0
}
