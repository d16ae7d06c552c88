package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jcorbin/primrt/internal/logio"
)

type rootOptions struct {
	verbose bool
	log     *logio.Logger
}

// tracef logs only under --verbose.
func (opts *rootOptions) tracef(mess string, args ...interface{}) {
	if opts.verbose {
		opts.log.Printf("TRACE", mess, args...)
	}
}

func newRootCommand(log *logio.Logger) *cobra.Command {
	opts := &rootOptions{log: log}

	cmd := &cobra.Command{
		Use:   "primrt",
		Short: "Primitive runtime symbol tools",
		Long: `Tools for code generators targeting the primrt primitive runtime.

Generated programs call primitives by symbol names derived from operator
spellings; these commands print the primitive catalogue and encode spellings
the same way the runtime does.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "trace logging to stderr")

	cmd.AddCommand(newSymbolsCommand(opts))
	cmd.AddCommand(newEncodeCommand(opts))

	return cmd
}

func oneOf(value string, choices ...string) error {
	for _, choice := range choices {
		if value == choice {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q: must be one of %v", value, choices)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(mess string, args ...interface{}) {
	if ew.err == nil {
		_, ew.err = fmt.Fprintf(ew.w, mess, args...)
	}
}
