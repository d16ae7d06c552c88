package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcorbin/primrt/internal/fileinput"
	"github.com/jcorbin/primrt/symbol"
)

type encodeOptions struct {
	check bool
}

// errCheckFailed is returned by encode --check after its findings were
// already logged.
var errCheckFailed = errors.New("encode check failed")

func newEncodeCommand(root *rootOptions) *cobra.Command {
	opts := &encodeOptions{}

	cmd := &cobra.Command{
		Use:   "encode [FILE...]",
		Short: "Encode operator spellings into symbol names",
		Long: `Read operator spellings one per line and print each spelling with its
symbol name, separated by a tab.

Spellings are read from the named files in order, or from standard input when
none are given. Blank lines and lines starting with # are skipped; spellings
are taken verbatim, surrounding spaces are not trimmed.

With --check, also report every symbol encoded from more than one spelling,
and every symbol that is not a valid identifier, and fail if there were any.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			defer in.Close()
			return runEncode(root, opts, cmd.OutOrStdout(), in)
		},
	}

	cmd.Flags().BoolVar(&opts.check, "check", false, "report symbol collisions and invalid identifiers")

	return cmd
}

func openInputs(stdin io.Reader, names []string) (*fileinput.Input, error) {
	var in fileinput.Input
	if len(names) == 0 {
		in.Queue = append(in.Queue, fileinput.NamedReader("<stdin>", stdin))
		return &in, nil
	}
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			in.Close()
			return nil, err
		}
		in.Queue = append(in.Queue, f)
	}
	return &in, nil
}

type encodedLine struct {
	fileinput.Line
	symbol string
}

func runEncode(root *rootOptions, opts *encodeOptions, w io.Writer, in *fileinput.Input) error {
	var (
		ew     = errWriter{w: w}
		seen   = make(map[string][]encodedLine)
		order  []string
		failed bool
	)
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if line.Text == "" || strings.HasPrefix(line.Text, "#") {
			continue
		}

		sym := symbol.Encode(line.Text)
		root.tracef("%v encodes to %v", line, sym)
		ew.printf("%v\t%v\n", line.Text, sym)
		if !opts.check {
			continue
		}

		if !symbol.IsIdentifier(sym) {
			root.log.Errorf("%v: %v", line.Location, symbol.IdentifierError{Spelling: line.Text, Symbol: sym})
			failed = true
		}
		prior, dup := seen[sym]
		if !dup {
			order = append(order, sym)
		}
		if !hasSpelling(prior, line.Text) {
			seen[sym] = append(prior, encodedLine{line, sym})
		}
	}
	if ew.err != nil {
		return ew.err
	}

	for _, sym := range order {
		lines := seen[sym]
		if len(lines) < 2 {
			continue
		}
		failed = true
		var spellings []string
		for _, line := range lines {
			spellings = append(spellings, fmt.Sprintf("%v %q", line.Location, line.Text))
		}
		root.log.Errorf("symbol %q encoded from multiple spellings: %v", sym, strings.Join(spellings, ", "))
	}

	if failed {
		return errCheckFailed
	}
	return nil
}

func hasSpelling(lines []encodedLine, spelling string) bool {
	for _, line := range lines {
		if line.Text == spelling {
			return true
		}
	}
	return false
}
