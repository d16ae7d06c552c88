package mem

// DefaultCellsPageSize provides a default for Cells.PageSize.
const DefaultCellsPageSize = 256

// Cells implements a paged memory of 32-bit cells. It models the address
// space of a generated program: every address below Limit (or AddrSpace) is
// valid, and cells never written read as 0. Pages may not necessarily be the same size, but
// usually are in practice.
type Cells struct {
	PagedCore
	pages [][]uint32
}

// Size returns an address one position higher than the last position in the
// last page allocated so far.
func (m *Cells) Size() uint {
	if i := len(m.bases) - 1; i >= 0 {
		return m.bases[i] + uint(len(m.pages[i]))
	}
	return 0
}

// Load returns a single cell value from the given address.
// Unallocated pages are left unallocated, resulting in implicit 0 values.
// Returns an error if addr is not below Limit.
func (m *Cells) Load(addr uint) (uint32, error) {
	if err := m.checkLimit(addr, 1, "load"); err != nil {
		return 0, err
	}
	if len(m.pages) == 0 {
		return 0, nil
	}
	pageID := m.findPage(addr)
	base := m.bases[pageID]
	page := m.pages[pageID]
	if addr >= base {
		if i := addr - base; i < uint(len(page)) {
			return page[i], nil
		}
	}
	return 0, nil
}

// LoadInto reads len(buf) cells from memory starting at addr.
// Skips any unallocated pages, zeroing the result buffer where encountered.
// Returns an error if Limit would be exceeded; no partial load is done.
func (m *Cells) LoadInto(addr uint, buf []uint32) error {
	if len(buf) == 0 {
		return nil
	}
	if err := m.checkLimit(addr, uint(len(buf)), "load"); err != nil {
		return err
	}

	for pageID := m.findPage(addr); len(buf) > 0 && pageID < len(m.bases); pageID++ {
		base := m.bases[pageID]
		if base > addr {
			skip := base - addr
			if skip >= uint(len(buf)) {
				break
			}
			for i := range buf[:skip] {
				buf[i] = 0
			}
			buf = buf[skip:]
			addr += skip
		}

		page := m.pages[pageID]
		skip := addr - base
		if skip >= uint(len(page)) {
			continue
		}
		n := copy(buf, page[skip:])
		buf = buf[n:]
		addr += uint(n)
	}

	for i := range buf {
		buf[i] = 0
	}

	return nil
}

// Stor stores any values at addr, allocating pages if necessary.
// Returns an error if Limit would be exceeded; no partial store is done.
func (m *Cells) Stor(addr uint, values ...uint32) error {
	if len(values) == 0 {
		return nil
	}

	if err := m.checkLimit(addr, uint(len(values)), "stor"); err != nil {
		return err
	}

	if m.PageSize == 0 {
		m.PageSize = DefaultCellsPageSize
	}

	for pageID := m.findPage(addr); len(values) > 0; pageID++ {
		base, size, page := m.allocPage(pageID, addr)
		if skip := addr - base; skip > 0 {
			if skip >= size {
				continue
			}
			page = page[skip:]
		}
		n := copy(page, values)
		values = values[n:]
		addr += uint(n)
	}

	return nil
}

// cstringChunk is how many cells CString loads at a time.
const cstringChunk = 64

// CString reads a NUL-terminated text buffer laid out one byte per cell
// starting at addr; only the low byte of each cell is significant. Returns a
// LimitError if the limit is reached before any NUL.
func (m *Cells) CString(addr uint) ([]byte, error) {
	var (
		text []byte
		buf  [cstringChunk]uint32
	)
	for {
		room := m.room(addr)
		if room == 0 {
			return text, m.checkLimit(addr, 1, "load")
		}
		n := uint64(len(buf))
		if room < n {
			n = room
		}
		chunk := buf[:n]
		if err := m.LoadInto(addr, chunk); err != nil {
			return text, err
		}
		for _, val := range chunk {
			b := byte(val)
			if b == 0 {
				return text, nil
			}
			text = append(text, b)
		}
		if n == room {
			return text, LimitError{addr + uint(n), "load"}
		}
		addr += uint(n)
	}
}

func (m *Cells) allocPage(pageID int, addr uint) (base, size uint, page []uint32) {
	base, size, isNew := m.PagedCore.allocPage(pageID, addr)
	if !isNew {
		return base, size, m.pages[pageID]
	}
	page = make([]uint32, size)
	if pageID == len(m.pages) {
		m.pages = append(m.pages, page)
	} else {
		m.pages = append(m.pages, nil)
		copy(m.pages[pageID+1:], m.pages[pageID:])
		m.pages[pageID] = page
	}
	return base, size, page
}
