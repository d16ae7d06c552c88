// Package runeio renders raw output bytes legibly for trace logs.
package runeio

import (
	"fmt"
	"strings"
)

// ControlRune represents a named control codepoint.
type ControlRune struct {
	N string
	R rune
}

// C0Ctls contains the classic ASCII control characters.
var C0Ctls = [32]ControlRune{
	{"<NUL>", 0x00},
	{"<SOH>", 0x01},
	{"<STX>", 0x02},
	{"<ETX>", 0x03},
	{"<EOT>", 0x04},
	{"<ENQ>", 0x05},
	{"<ACK>", 0x06},
	{"<BEL>", 0x07},
	{"<BS>", 0x08},
	{"<HT>", 0x09},
	{"<NL>", 0x0A},
	{"<VT>", 0x0B},
	{"<NP>", 0x0C},
	{"<CR>", 0x0D},
	{"<SO>", 0x0E},
	{"<SI>", 0x0F},
	{"<DLE>", 0x10},
	{"<DC1>", 0x11},
	{"<DC2>", 0x12},
	{"<DC3>", 0x13},
	{"<DC4>", 0x14},
	{"<NAK>", 0x15},
	{"<SYN>", 0x16},
	{"<ETB>", 0x17},
	{"<CAN>", 0x18},
	{"<EM>", 0x19},
	{"<SUB>", 0x1A},
	{"<ESC>", 0x1B},
	{"<FS>", 0x1C},
	{"<GS>", 0x1D},
	{"<RS>", 0x1E},
	{"<US>", 0x1F},
}

// DEL is the mnemonic for the one control code above the C0 range.
var DEL = ControlRune{"<DEL>", 0x7F}

// Render returns text with printable ASCII kept as is, control bytes
// replaced by their mnemonic (e.g. <NL>), and any other byte hex escaped.
func Render(text []byte) string {
	var sb strings.Builder
	for _, b := range text {
		switch {
		case b < 0x20:
			sb.WriteString(C0Ctls[b].N)
		case b == 0x7f:
			sb.WriteString(DEL.N)
		case b < 0x80:
			sb.WriteByte(b)
		default:
			fmt.Fprintf(&sb, `\x%02x`, b)
		}
	}
	return sb.String()
}
