package mem

import "unsafe"

// Native addresses host memory directly: an address is the numeric value of
// a pointer to a 32-bit cell (or to the first byte of a text buffer). Nothing
// is checked; an invalid address is undefined behavior owned by the caller.
//
// This file holds the only unsafe dereferences in the module.
type Native struct{}

// Load reads the cell at addr.
func (Native) Load(addr uint) (uint32, error) {
	return *(*uint32)(unsafe.Pointer(uintptr(addr))), nil
}

// Stor writes values to consecutive cells starting at addr.
func (Native) Stor(addr uint, values ...uint32) error {
	for i, val := range values {
		*(*uint32)(unsafe.Pointer(uintptr(addr) + uintptr(i)*4)) = val
	}
	return nil
}

// CString reads bytes starting at addr up to, but excluding, the first NUL.
func (Native) CString(addr uint) ([]byte, error) {
	var text []byte
	for p := uintptr(addr); ; p++ {
		b := *(*byte)(unsafe.Pointer(p))
		if b == 0 {
			return text, nil
		}
		text = append(text, b)
	}
}

// AddrOf returns the Native address of a host cell. The cell must stay
// reachable, and must not live on a goroutine stack, for as long as the
// address is in use.
func AddrOf(cell *uint32) uint {
	return uint(uintptr(unsafe.Pointer(cell)))
}

// BytesAddr returns the Native address of the first byte of buf, or 0 for an
// empty buffer. The same reachability caveat as AddrOf applies.
func BytesAddr(buf []byte) uint {
	if len(buf) == 0 {
		return 0
	}
	return uint(uintptr(unsafe.Pointer(&buf[0])))
}
