package mem

// CellsDump provides page data for testing and diagnostics.
type CellsDump struct {
	Bases []uint
	Sizes []uint
	Pages [][]uint32
}

// Dump returns the allocated page layout; the slices alias live memory.
func (m *Cells) Dump() (d CellsDump) {
	d.Bases = m.bases
	d.Sizes = m.sizes
	d.Pages = m.pages
	return d
}
