package symbol

import (
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a primitive operator.
type Kind int

// Kinds of primitive operator.
const (
	Compare Kind = iota + 1
	Arith
	Logic
	Memory
	Output
)

var kindNames = [...]string{
	Compare: "compare",
	Arith:   "arith",
	Logic:   "logic",
	Memory:  "memory",
	Output:  "output",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Op describes a primitive operator: its source spelling, the symbol it is
// exported under, and how many arguments it takes.
type Op struct {
	Name     string // Go name of the prim.Runtime method implementing it
	Spelling string
	Symbol   string
	Arity    int
	Kind     Kind
	Doc      string
}

// Code returns the character code of a single character spelling.
func (op Op) Code() (rune, bool) {
	runes := []rune(op.Spelling)
	if len(runes) != 1 {
		return 0, false
	}
	if isWordRune(runes[0]) {
		return 0, false
	}
	return runes[0], true
}

func (op Op) String() string { return fmt.Sprintf("%v(%v)/%v", op.Symbol, op.Spelling, op.Arity) }

func op(name, spelling string, arity int, kind Kind, doc string) Op {
	return Op{
		Name:     name,
		Spelling: spelling,
		Symbol:   Encode(spelling),
		Arity:    arity,
		Kind:     kind,
		Doc:      doc,
	}
}

// Primitive operator spellings.
const (
	Less      = "<"
	Equal     = "="
	CharEqual = "char=?"
	Greater   = ">"
	Add       = "+"
	Sub       = "-"
	Mul       = "*"
	Div       = "/"
	Not       = "not"
	Display   = "display"
	Peek      = "peek"
	Poke      = "poke"
)

var catalogue = []Op{
	op("Less", Less, 2, Compare, "1 if x < y else 0"),
	op("Equal", Equal, 2, Compare, "1 if x == y else 0"),
	op("CharEqual", CharEqual, 2, Compare, "1 if the bytes x and y are equal else 0"),
	op("Greater", Greater, 2, Compare, "1 if x > y else 0"),
	op("Add", Add, 2, Arith, "x + y, wrapping modulo 2^32"),
	op("Sub", Sub, 2, Arith, "x - y, wrapping modulo 2^32"),
	op("Mul", Mul, 2, Arith, "x * y, wrapping modulo 2^32"),
	op("Div", Div, 2, Arith, "x / y rounded down; faults when y is 0"),
	op("Not", Not, 1, Logic, "1 if x is 0 else 0"),
	op("Display", Display, 1, Output, "write a NUL-terminated text buffer to standard output"),
	op("Peek", Peek, 1, Memory, "read the 32-bit cell at an address"),
	op("Poke", Poke, 2, Memory, "write a 32-bit value to the cell at an address"),
}

var (
	bySpelling = make(map[string]int, len(catalogue))
	bySymbol   = make(map[string]int, len(catalogue))
)

func init() {
	if err := Check(catalogue); err != nil {
		panic(err)
	}
	for i, op := range catalogue {
		bySpelling[op.Spelling] = i
		bySymbol[op.Symbol] = i
	}
}

// Catalogue returns a copy of every primitive operator in declaration order.
func Catalogue() []Op {
	return append([]Op(nil), catalogue...)
}

// Lookup returns the primitive operator with the given spelling.
func Lookup(spelling string) (Op, bool) {
	if i, ok := bySpelling[spelling]; ok {
		return catalogue[i], true
	}
	return Op{}, false
}

// Resolve returns the primitive operator exported under the given symbol.
func Resolve(symbol string) (Op, bool) {
	if i, ok := bySymbol[symbol]; ok {
		return catalogue[i], true
	}
	return Op{}, false
}

// CollisionError reports distinct spellings that encode to the same symbol.
type CollisionError struct {
	Symbol    string
	Spellings []string
}

func (ce CollisionError) Error() string {
	return fmt.Sprintf("symbol %q encoded from multiple spellings: %q", ce.Symbol, ce.Spellings)
}

// IdentifierError reports a spelling whose symbol is not a valid identifier.
type IdentifierError struct {
	Spelling string
	Symbol   string
}

func (ie IdentifierError) Error() string {
	return fmt.Sprintf("spelling %q encodes to invalid identifier %q", ie.Spelling, ie.Symbol)
}

// Errors collects every problem found by Check.
type Errors []error

func (errs Errors) Error() string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

// Check verifies that each op's Symbol is the encoding of its Spelling, that
// every symbol is a valid identifier, and that no two spellings share a
// symbol. Returns nil or an Errors.
func Check(ops []Op) error {
	var errs Errors
	seen := make(map[string][]string, len(ops))
	var order []string
	for _, op := range ops {
		if enc := Encode(op.Spelling); enc != op.Symbol {
			errs = append(errs, fmt.Errorf("op %q has symbol %q, expected %q", op.Spelling, op.Symbol, enc))
		}
		if !IsIdentifier(op.Symbol) {
			errs = append(errs, IdentifierError{op.Spelling, op.Symbol})
		}
		prior, dup := seen[op.Symbol]
		if !dup {
			order = append(order, op.Symbol)
		}
		if !containsString(prior, op.Spelling) {
			seen[op.Symbol] = append(prior, op.Spelling)
		}
	}
	for _, sym := range order {
		if spellings := seen[sym]; len(spellings) > 1 {
			sort.Strings(spellings)
			errs = append(errs, CollisionError{sym, spellings})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func containsString(ss []string, s string) bool {
	for _, other := range ss {
		if other == s {
			return true
		}
	}
	return false
}
