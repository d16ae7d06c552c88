package main

import (
	"io"

	"github.com/dave/jennifer/jen"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jcorbin/primrt/symbol"
)

type symbolsOptions struct {
	format  string
	pkgName string
}

var symbolFormats = []string{"text", "yaml", "go"}

func newSymbolsCommand(root *rootOptions) *cobra.Command {
	opts := &symbolsOptions{}

	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "Print the primitive symbol table",
		Long: `Print every primitive operator: its symbol name, source spelling, arity,
kind and behavior.

Formats:
  text  an aligned table
  yaml  a machine-readable table for code generators
  go    a Go source file declaring a constant per symbol name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oneOf(opts.format, symbolFormats...); err != nil {
				return err
			}
			ops := symbol.Catalogue()
			root.tracef("printing %v symbols as %v", len(ops), opts.format)
			return writeSymbols(cmd.OutOrStdout(), opts, ops)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "text", "output format (text|yaml|go)")
	cmd.Flags().StringVar(&opts.pkgName, "package", "primsym", "package name for --format go")

	return cmd
}

func writeSymbols(w io.Writer, opts *symbolsOptions, ops []symbol.Op) error {
	switch opts.format {
	case "yaml":
		return writeSymbolsYAML(w, ops)
	case "go":
		return writeSymbolsGo(w, opts.pkgName, ops)
	default:
		return writeSymbolsText(w, ops)
	}
}

func writeSymbolsText(w io.Writer, ops []symbol.Op) error {
	ew := errWriter{w: w}
	ew.printf("%-10s  %-8s  %-5s  %-7s  %s\n", "SYMBOL", "SPELLING", "ARITY", "KIND", "BEHAVIOR")
	for _, op := range ops {
		ew.printf("%-10s  %-8s  %-5d  %-7s  %s\n", op.Symbol, op.Spelling, op.Arity, op.Kind, op.Doc)
	}
	return ew.err
}

type symbolTable struct {
	Encoding   string        `yaml:"encoding"`
	Primitives []symbolEntry `yaml:"primitives"`
}

type symbolEntry struct {
	Symbol   string `yaml:"symbol"`
	Spelling string `yaml:"spelling"`
	Code     *int   `yaml:"code,omitempty"`
	Arity    int    `yaml:"arity"`
	Kind     string `yaml:"kind"`
	Method   string `yaml:"method"`
	Doc      string `yaml:"doc"`
}

const encodingSummary = "NFC; [A-Za-z0-9_] kept; '-' -> '_'; other -> '_' + decimal code point"

func writeSymbolsYAML(w io.Writer, ops []symbol.Op) error {
	table := symbolTable{Encoding: encodingSummary}
	for _, op := range ops {
		entry := symbolEntry{
			Symbol:   op.Symbol,
			Spelling: op.Spelling,
			Arity:    op.Arity,
			Kind:     op.Kind.String(),
			Method:   op.Name,
			Doc:      op.Doc,
		}
		if code, ok := op.Code(); ok {
			c := int(code)
			entry.Code = &c
		}
		table.Primitives = append(table.Primitives, entry)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(table); err != nil {
		return err
	}
	return enc.Close()
}

func writeSymbolsGo(w io.Writer, pkgName string, ops []symbol.Op) error {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by primrt symbols; DO NOT EDIT.")
	f.Comment("Symbol names of the primitive operators, named after the prim.Runtime")
	f.Comment("method implementing each one.")
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, op := range ops {
			g.Id("Sym" + op.Name).Op("=").Lit(op.Symbol)
		}
	})
	f.Comment("Spellings maps each symbol name back to its operator spelling.")
	f.Var().Id("Spellings").Op("=").Map(jen.String()).String().Values(jen.DictFunc(func(d jen.Dict) {
		for _, op := range ops {
			d[jen.Id("Sym"+op.Name)] = jen.Lit(op.Spelling)
		}
	}))
	return f.Render(w)
}
