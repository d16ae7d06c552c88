// Package mem provides the cell memory models that peek and poke operate on.
// Addresses are opaque uint values; what they mean depends on the model.
package mem

import "fmt"

// AddrSpace is the size of the paged address space: addresses are 32 bits
// wide, the same width symbolic calls pass them at.
const AddrSpace = 1 << 32

// PagedCore provides the page bookkeeping common to any paged memory model.
type PagedCore struct {
	// PageSize specifies the length for newly allocated pages.
	PageSize uint

	// Limit specifies a limit, at or past which any store or load should
	// result in an error. Zero, or anything past AddrSpace, means AddrSpace.
	Limit uint

	bases []uint
	sizes []uint
}

// LimitError indicates that a memory operation, like load or store, exceeded a
// limit. Addr is the first cell of the access past the limit.
type LimitError struct {
	Addr uint
	Op   string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("memory limit exceeded by %v @%v", lim.Op, lim.Addr)
}

// findPage returns the index of the last page whose base is <= addr, or 0.
func (m *PagedCore) findPage(addr uint) int {
	i, j := 0, len(m.bases)
	for i < j {
		h := int(uint(i+j)>>1) + 1
		if h < len(m.bases) && m.bases[h] <= addr {
			i = h
		} else {
			j = h - 1
		}
	}
	return i
}

// allocPage returns the page covering addr at pageID, inserting a new one
// when addr falls past the last page or into a hole before pageID.
func (m *PagedCore) allocPage(pageID int, addr uint) (base, size uint, isNew bool) {
	if pageID == len(m.bases) {
		base = addr / m.PageSize * m.PageSize
		size = m.PageSize
		if i := len(m.bases) - 1; i >= 0 {
			if lastEnd := m.bases[i] + m.sizes[i]; base < lastEnd {
				size -= lastEnd - base
				base = lastEnd
			}
		}
		m.bases = append(m.bases, base)
		m.sizes = append(m.sizes, size)
		return base, size, true
	}

	base = m.bases[pageID]
	if addr >= base {
		return base, m.sizes[pageID], false
	}

	nextBase := base
	base = addr / m.PageSize * m.PageSize
	size = m.PageSize
	if gap := nextBase - base; size > gap {
		size = gap
	}
	m.bases = append(m.bases, 0)
	m.sizes = append(m.sizes, 0)
	copy(m.bases[pageID+1:], m.bases[pageID:])
	copy(m.sizes[pageID+1:], m.sizes[pageID:])
	m.bases[pageID] = base
	m.sizes[pageID] = size
	return base, size, true
}

func (m *PagedCore) limit() uint64 {
	limit := uint64(AddrSpace)
	if m.Limit != 0 && uint64(m.Limit) < limit {
		limit = uint64(m.Limit)
	}
	return limit
}

// room returns how many cells starting at addr are within the limit.
func (m *PagedCore) room(addr uint) uint64 {
	if a, limit := uint64(addr), m.limit(); a < limit {
		return limit - a
	}
	return 0
}

// checkLimit returns a LimitError unless all n cells starting at addr are
// within the limit.
func (m *PagedCore) checkLimit(addr, n uint, op string) error {
	if room := m.room(addr); uint64(n) > room {
		return LimitError{addr + uint(room), op}
	}
	return nil
}
