package prim

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/primrt/internal/mem"
)

// Dump writes a description of the runtime's state to w: whether it has
// started, its memory model, and for a CellMemory every non-zero cell.
func (rt *Runtime) Dump(w io.Writer) error {
	d := dumper{out: w}
	d.printf("# Runtime Dump\n")
	d.printf("  started: %v\n", rt.started)
	switch m := rt.mem.(type) {
	case *mem.Cells:
		d.dumpCells(m)
	default:
		d.printf("  memory: %T\n", rt.mem)
	}
	return d.err
}

type dumper struct {
	out       io.Writer
	addrWidth int
	err       error
}

func (d *dumper) printf(mess string, args ...interface{}) {
	if d.err == nil {
		_, d.err = fmt.Fprintf(d.out, mess, args...)
	}
}

func (d *dumper) dumpCells(m *mem.Cells) {
	dump := m.Dump()
	d.printf("  memory: cells size:%v limit:%v pages:%v\n", m.Size(), m.Limit, len(dump.Pages))
	if d.addrWidth == 0 {
		d.addrWidth = len(strconv.Itoa(int(m.Size())))
	}
	for i, page := range dump.Pages {
		base := dump.Bases[i]
		for j, val := range page {
			if val != 0 {
				d.printf("  @ %*d %v\n", d.addrWidth, base+uint(j), val)
			}
		}
	}
}
