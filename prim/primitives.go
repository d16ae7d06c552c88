package prim

import (
	"bytes"

	"github.com/jcorbin/primrt/internal/runeio"
	"github.com/jcorbin/primrt/symbol"
)

var (
	symLess      = symbol.Encode(symbol.Less)
	symEqual     = symbol.Encode(symbol.Equal)
	symCharEqual = symbol.Encode(symbol.CharEqual)
	symGreater   = symbol.Encode(symbol.Greater)
	symAdd       = symbol.Encode(symbol.Add)
	symSub       = symbol.Encode(symbol.Sub)
	symMul       = symbol.Encode(symbol.Mul)
	symDiv       = symbol.Encode(symbol.Div)
	symNot       = symbol.Encode(symbol.Not)
	symDisplay   = symbol.Encode(symbol.Display)
	symPeek      = symbol.Encode(symbol.Peek)
	symPoke      = symbol.Encode(symbol.Poke)
)

//// Comparison

// Symbol   Spelling   Function
//   _60      <        1 if x < y else 0
func (rt *Runtime) Less(x, y uint32) uint32 { return rt.binary(symLess, x, y, boolU32(x < y)) }

// Symbol   Spelling   Function
//   _61      =        1 if x == y else 0
func (rt *Runtime) Equal(x, y uint32) uint32 { return rt.binary(symEqual, x, y, boolU32(x == y)) }

// Symbol       Spelling   Function
//   char_61_63   char=?   1 if the two bytes are equal else 0
func (rt *Runtime) CharEqual(x, y byte) int {
	r := boolInt(x == y)
	if rt.tracing() {
		rt.logf(">", "%v(%q, %q) = %v", symCharEqual, x, y, r)
	}
	return r
}

// Symbol   Spelling   Function
//   _62      >        1 if x > y else 0
func (rt *Runtime) Greater(x, y uint32) uint32 { return rt.binary(symGreater, x, y, boolU32(x > y)) }

//// Arithmetic
//
// All of it wraps around modulo 2^32, just as uint32 arithmetic does.

// Symbol   Spelling   Function
//   _43      +        x + y
func (rt *Runtime) Add(x, y uint32) uint32 { return rt.binary(symAdd, x, y, x+y) }

// Symbol   Spelling   Function
//   _        -        x - y
func (rt *Runtime) Sub(x, y uint32) uint32 { return rt.binary(symSub, x, y, x-y) }

// Symbol   Spelling   Function
//   _42      *        x * y
func (rt *Runtime) Mul(x, y uint32) uint32 { return rt.binary(symMul, x, y, x*y) }

// Symbol   Spelling   Function
//   _47      /        x / y, rounded down; halts with ErrDivisionByZero if y is 0
func (rt *Runtime) Div(x, y uint32) uint32 {
	if y == 0 {
		rt.halt(ErrDivisionByZero)
	}
	return rt.binary(symDiv, x, y, x/y)
}

//// Logic

// Symbol   Spelling   Function
//   not      not      1 if x is 0 else 0
func (rt *Runtime) Not(x int) int {
	r := boolInt(x == 0)
	if rt.tracing() {
		rt.logf(">", "%v(%v) = %v", symNot, x, r)
	}
	return r
}

//// Output

// Symbol    Spelling   Function
//   display   display  write text, up to any NUL, to standard output
//
// Nothing is added to the text, not even a line ending.
func (rt *Runtime) Display(text []byte) {
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	if rt.tracing() {
		rt.logf(">", "%v(%v)", symDisplay, runeio.Render(text))
	}
	_, err := rt.out.Write(text)
	rt.haltif(err)
}

//// Memory

// Symbol   Spelling   Function
//   peek     peek     read the cell at addr
func (rt *Runtime) Peek(addr uint) uint32 {
	val, err := rt.mem.Load(addr)
	if err != nil {
		rt.halt(MemoryError{symbol.Peek, addr, err})
	}
	if rt.tracing() {
		rt.logf(">", "%v(@%v) = %v", symPeek, addr, val)
	}
	return val
}

// Symbol   Spelling   Function
//   poke     poke     write val to the cell at addr
func (rt *Runtime) Poke(addr uint, val uint32) {
	if rt.tracing() {
		rt.logf(">", "%v(@%v, %v)", symPoke, addr, val)
	}
	if err := rt.mem.Stor(addr, val); err != nil {
		rt.halt(MemoryError{symbol.Poke, addr, err})
	}
}

func (rt *Runtime) binary(sym string, x, y, r uint32) uint32 {
	if rt.tracing() {
		rt.logf(">", "%v(%v, %v) = %v", sym, x, y, r)
	}
	return r
}

func boolU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
