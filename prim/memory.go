package prim

import "github.com/jcorbin/primrt/internal/mem"

// Memory is the model that peek, poke and symbolic display resolve
// addresses through.
type Memory interface {
	// Load reads the 32-bit cell at addr.
	Load(addr uint) (uint32, error)

	// Stor writes values to consecutive cells starting at addr.
	Stor(addr uint, values ...uint32) error

	// CString reads the NUL-terminated text buffer at addr.
	CString(addr uint) ([]byte, error)
}

// CellMemory returns a fresh paged address space of 32-bit cells. Addresses
// are 32 bits wide, as in symbolic calls: every address below limit is
// valid, or every address below mem.AddrSpace if limit is 0. Text buffers
// are laid out one byte per cell, ending with a 0 cell.
func CellMemory(limit uint) Memory {
	return &mem.Cells{PagedCore: mem.PagedCore{Limit: limit}}
}

// NativeMemory returns a model where addresses are raw host pointers, as
// made by AddrOf and BytesAddr. Nothing is checked.
func NativeMemory() Memory { return mem.Native{} }

// AddrOf returns the NativeMemory address of a cell. The cell must stay
// reachable, off any goroutine stack, for as long as the address is used.
func AddrOf(cell *uint32) uint { return mem.AddrOf(cell) }

// BytesAddr returns the NativeMemory address of a text buffer, which must
// include its terminating NUL. The same caveat as AddrOf applies.
func BytesAddr(buf []byte) uint { return mem.BytesAddr(buf) }

// StoreText lays out text, followed by a terminating 0 cell, into a
// CellMemory starting at addr, for later use by a symbolic display call.
// Returns the address just past the terminator.
func StoreText(m Memory, addr uint, text string) (uint, error) {
	values := make([]uint32, len(text)+1)
	for i := 0; i < len(text); i++ {
		values[i] = uint32(text[i])
	}
	return addr + uint(len(values)), m.Stor(addr, values...)
}
