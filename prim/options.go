package prim

import (
	"io"

	"github.com/jcorbin/primrt/internal/flushio"
	"github.com/jcorbin/primrt/internal/mem"
)

// Option customizes a Runtime built by New.
type Option interface{ apply(rt *Runtime) }

// Options combines any number of options into one, applied in order.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, opt)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

var defaultOptions = Options(
	withOutput(io.Discard),
	withMemory(nil),
)

// WithOutput directs display output to w, replacing any prior output after
// flushing it.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithTee copies display output to w, in addition to the current output.
func WithTee(w io.Writer) Option { return withTee(w) }

// WithMemory sets the Memory model; nil means a fresh CellMemory.
func WithMemory(m Memory) Option { return withMemory(m) }

// WithMemLimit limits a CellMemory to addresses below limit. It has no
// effect on other models, and must come after any WithMemory.
func WithMemLimit(limit uint) Option { return memLimitOption(limit) }

// WithLogf enables trace logging of every primitive call through logfn.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

type options []Option

func (opts options) apply(rt *Runtime) {
	for _, opt := range opts {
		opt.apply(rt)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(rt *Runtime) {
	rt.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type memoryOption struct{ Memory }
type memLimitOption uint

func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }
func withMemory(m Memory) memoryOption    { return memoryOption{m} }

func (o outputOption) apply(rt *Runtime) {
	if rt.out != nil {
		rt.out.Flush()
	}
	rt.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(rt *Runtime) {
	rt.out = flushio.WriteFlushers(rt.out, flushio.NewWriteFlusher(o.Writer))
}

func (o memoryOption) apply(rt *Runtime) {
	if o.Memory == nil {
		rt.mem = CellMemory(0)
	} else {
		rt.mem = o.Memory
	}
}

func (lim memLimitOption) apply(rt *Runtime) {
	if cells, ok := rt.mem.(*mem.Cells); ok {
		cells.Limit = uint(lim)
	}
}
