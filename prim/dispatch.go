package prim

import (
	"fmt"

	"github.com/jcorbin/primrt/symbol"
)

type primitive func(rt *Runtime, args []uint32) uint32

// primitives maps each operator spelling to an adapter from uint32 call
// arguments onto the primitive's method.
var primitives = map[string]primitive{
	symbol.Less:      func(rt *Runtime, a []uint32) uint32 { return rt.Less(a[0], a[1]) },
	symbol.Equal:     func(rt *Runtime, a []uint32) uint32 { return rt.Equal(a[0], a[1]) },
	symbol.CharEqual: func(rt *Runtime, a []uint32) uint32 { return uint32(rt.CharEqual(byte(a[0]), byte(a[1]))) },
	symbol.Greater:   func(rt *Runtime, a []uint32) uint32 { return rt.Greater(a[0], a[1]) },
	symbol.Add:       func(rt *Runtime, a []uint32) uint32 { return rt.Add(a[0], a[1]) },
	symbol.Sub:       func(rt *Runtime, a []uint32) uint32 { return rt.Sub(a[0], a[1]) },
	symbol.Mul:       func(rt *Runtime, a []uint32) uint32 { return rt.Mul(a[0], a[1]) },
	symbol.Div:       func(rt *Runtime, a []uint32) uint32 { return rt.Div(a[0], a[1]) },
	symbol.Not:       func(rt *Runtime, a []uint32) uint32 { return uint32(rt.Not(int(int32(a[0])))) },
	symbol.Display:   (*Runtime).displayAt,
	symbol.Peek:      func(rt *Runtime, a []uint32) uint32 { return rt.Peek(uint(a[0])) },
	symbol.Poke:      func(rt *Runtime, a []uint32) uint32 { rt.Poke(uint(a[0]), a[1]); return 0 },
}

func init() {
	for _, op := range symbol.Catalogue() {
		if primitives[op.Spelling] == nil {
			panic(fmt.Sprintf("no primitive implements %v", op))
		}
	}
}

// Call invokes the primitive exported under the given symbol name, as
// computed by symbol.Encode, returning its result or 0 for primitives that
// have none. Arguments are passed as 32-bit values:
//
//	char_61_63  only the low byte of each argument is compared
//	not         the argument is taken as a signed 32-bit integer
//	display     the argument is the address of a text buffer in Memory
//	peek, poke  the first argument is an address in Memory
//
// Addresses passed this way are only 32 bits wide, so NativeMemory pointers
// should go through the Peek, Poke and Display methods instead.
//
// An unknown symbol, or the wrong number of arguments, halts the program with
// a SymbolError or ArityError. Like every primitive, Call must be used within
// the entry routine given to Run.
func (rt *Runtime) Call(sym string, args ...uint32) uint32 {
	op, defined := symbol.Resolve(sym)
	if !defined {
		rt.halt(SymbolError(sym))
	}
	if len(args) != op.Arity {
		rt.halt(ArityError{sym, op.Arity, len(args)})
	}
	return primitives[op.Spelling](rt, args)
}

func (rt *Runtime) displayAt(args []uint32) uint32 {
	addr := uint(args[0])
	text, err := rt.mem.CString(addr)
	if err != nil {
		rt.halt(MemoryError{symbol.Display, addr, err})
	}
	rt.Display(text)
	return 0
}
