package prim

import (
	"context"
	"errors"
	"fmt"

	"github.com/jcorbin/primrt/internal/flushio"
	"github.com/jcorbin/primrt/internal/panicerr"
)

// Entry is the routine of a generated program. It is called exactly once,
// with the runtime whose primitives it may use.
type Entry func(rt *Runtime)

// Runtime provides the primitive operations to one generated program.
// A Runtime is not safe for concurrent use.
type Runtime struct {
	logging
	out     flushio.WriteFlusher
	mem     Memory
	started bool
}

// New returns a runtime that discards output and uses a fresh CellMemory,
// as modified by any options.
func New(opts ...Option) *Runtime {
	var rt Runtime
	defaultOptions.apply(&rt)
	Options(opts...).apply(&rt)
	return &rt
}

// Run hands control to entry, returning after it does. Output is flushed
// before returning, even after a fault.
//
// Returns nil if entry returned normally, or the fault that halted it. A
// panic or runtime.Goexit within entry is also returned as an error. A runtime
// only runs once: any later Run returns ErrStarted without calling entry.
func (rt *Runtime) Run(ctx context.Context, entry Entry) error {
	if rt.started {
		return ErrStarted
	}
	if entry == nil {
		return ErrNoEntry
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	rt.started = true

	rt.logf(">", "entry")
	err := panicerr.Recover("entry", func() error {
		entry(rt)
		return nil
	})
	var halted haltError
	if errors.As(err, &halted) {
		err = halted.error
	}
	if ferr := rt.out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		rt.logf("<", "exit error: %v", err)
	} else {
		rt.logf("<", "exit")
	}
	return err
}

// Started returns true once Run has handed control to an entry.
func (rt *Runtime) Started() bool { return rt.started }

func (rt *Runtime) halt(err error) {
	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		rt.logf("#", "halt error: %v", err)
	}()
	panic(haltError{err})
}

func (rt *Runtime) haltif(err error) {
	if err != nil {
		rt.halt(err)
	}
}

var (
	// ErrDivisionByZero is the fault raised by the divide primitive when its
	// divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrStarted is returned by Run on a runtime that already ran.
	ErrStarted = errors.New("runtime already started")

	// ErrNoEntry is returned by Run when given a nil entry routine.
	ErrNoEntry = errors.New("no entry routine")
)

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

// SymbolError is the fault raised by Call for a symbol naming no primitive.
type SymbolError string

func (sym SymbolError) Error() string { return fmt.Sprintf("undefined primitive symbol %q", string(sym)) }

// ArityError is the fault raised by Call for the wrong number of arguments.
type ArityError struct {
	Symbol string
	Want   int
	Got    int
}

func (ae ArityError) Error() string {
	return fmt.Sprintf("primitive %v takes %v argument(s), got %v", ae.Symbol, ae.Want, ae.Got)
}

// MemoryError wraps an error from the Memory model, naming the primitive
// and address involved.
type MemoryError struct {
	Op   string
	Addr uint
	Err  error
}

func (me MemoryError) Error() string { return fmt.Sprintf("%v @%v: %v", me.Op, me.Addr, me.Err) }
func (me MemoryError) Unwrap() error { return me.Err }
