// Package boot is the process entry point for generated programs: it runs
// the program's entry routine once and exits.
//
// A generated program's main is just:
//
//	func main() { boot.Main(entry) }
//
// A program without an entry routine does not compile.
package boot

import (
	"context"
	"io"
	"os"

	"github.com/jcorbin/primrt/internal/logio"
	"github.com/jcorbin/primrt/internal/panicerr"
	"github.com/jcorbin/primrt/prim"
	"github.com/xyproto/env/v2"
)

// Config holds the process level settings read from the environment.
type Config struct {
	// Trace logs every primitive call to stderr (PRIMRT_TRACE).
	Trace bool

	// MemLimit bounds the default cell memory (PRIMRT_MEM_LIMIT).
	MemLimit uint

	// Dump writes the runtime state to stderr after a fault (PRIMRT_DUMP).
	Dump bool

	// Native makes peek and poke addresses raw host pointers (PRIMRT_NATIVE).
	Native bool
}

// ConfigFromEnv reads a Config from PRIMRT_* environment variables.
func ConfigFromEnv() Config {
	var cfg Config
	cfg.Trace = env.Bool("PRIMRT_TRACE")
	if limit := env.Int("PRIMRT_MEM_LIMIT", 0); limit > 0 {
		cfg.MemLimit = uint(limit)
	}
	cfg.Dump = env.Bool("PRIMRT_DUMP")
	cfg.Native = env.Bool("PRIMRT_NATIVE")
	return cfg
}

// Main runs entry against the process's standard output and exits: with
// status 0 when entry returns, or 1 after logging the fault that halted it.
// Options are applied after those derived from the environment, except for
// PRIMRT_MEM_LIMIT, which limits whichever memory the options leave in place.
func Main(entry prim.Entry, opts ...prim.Option) {
	os.Exit(Run(context.Background(), entry, ConfigFromEnv(), os.Stdout, os.Stderr, opts...))
}

// Run is Main without the exit: it returns the process exit status.
func Run(
	ctx context.Context,
	entry prim.Entry,
	cfg Config,
	stdout, stderr io.Writer,
	opts ...prim.Option,
) int {
	log := logio.NewLogger(stderr)

	var all []prim.Option
	all = append(all, prim.WithOutput(stdout))
	if cfg.Native {
		all = append(all, prim.WithMemory(prim.NativeMemory()))
	}
	if cfg.Trace {
		all = append(all, prim.WithLogf(log.Leveledf("TRACE")))
	}
	all = append(all, opts...)
	if cfg.MemLimit != 0 {
		all = append(all, prim.WithMemLimit(cfg.MemLimit))
	}

	rt := prim.New(all...)
	if err := rt.Run(ctx, entry); err != nil {
		logFault(log, err)
		if cfg.Dump {
			log.ErrorIf(rt.Dump(stderr))
		}
	}
	return log.ExitCode()
}

// logFault tells a crash of the generated code itself apart from a fault
// raised by a primitive.
func logFault(log *logio.Logger, err error) {
	switch {
	case panicerr.IsPanic(err):
		log.Errorf("entry crashed: %v", panicerr.PanicValue(err))
		log.Printf("STACK", "%s", panicerr.PanicStack(err))
	case panicerr.IsExit(err):
		log.Errorf("entry exited without returning")
	default:
		log.Errorf("%v", err)
	}
}
