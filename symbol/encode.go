// Package symbol defines how operator spellings map to exported symbol
// names, and the catalogue of primitive operators named that way.
//
// A code generator can compute every name on its own from an operator's
// spelling alone:
//
//   - ASCII letters, ASCII digits and '_' are kept as is
//   - '-' becomes a bare '_'
//   - any other character becomes '_' followed by its decimal code point
//
// So "<" is "_60", "char=?" is "char_61_63", and "not" is "not". The
// subtraction operator "-" is therefore just "_", unlike every other single
// character operator; the name is kept for compatibility with existing
// generated code.
//
// Spellings are normalized to Unicode NFC first, so that canonically
// equivalent spellings share a symbol.
//
// The scheme is not collision free. Since '_' and digits pass through, "_"
// and "-" both encode to "_", "_60" and "<" both encode to "_60", and "<0"
// encodes like U+0258 ("_600"). Check reports such collisions within a set
// of spellings; the built-in catalogue is checked when the package loads, and
// "primrt encode --check" checks a generator's own spellings.
package symbol

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Encode returns the symbol name for an operator spelling. It is total and
// pure: the same spelling always encodes to the same name.
func Encode(spelling string) string {
	spelling = norm.NFC.String(spelling)
	var sb strings.Builder
	sb.Grow(len(spelling))
	for _, r := range spelling {
		switch {
		case isWordRune(r):
			sb.WriteRune(r)
		case r == '-':
			sb.WriteByte('_')
		default:
			sb.WriteByte('_')
			sb.WriteString(strconv.Itoa(int(r)))
		}
	}
	return sb.String()
}

// IsIdentifier reports whether name is usable as an exported symbol in the
// usual target toolchains: non-empty ASCII letters, digits and '_', not
// starting with a digit.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if !isWordRune(r) || (i == 0 && '0' <= r && r <= '9') {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}
