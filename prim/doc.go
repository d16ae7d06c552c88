/* Package prim is the primitive operation runtime that generated programs
link against.

A code generator that cannot, or would rather not, emit machine level
arithmetic, comparison, memory access and output itself emits calls into this
package instead. Its program is a single entry routine:

	func entry(rt *prim.Runtime) {
		n := rt.Add(2, 3)
		rt.Display([]byte(strconv.Itoa(int(n))))
	}

handed to the process bootstrap (see package boot), which runs it exactly once
and exits.

Generators that identify operators by their spelling rather than by a Go
method name call through the symbol table instead:

	n := rt.Call("_43", 2, 3) // +

Symbol names come from package symbol; a generator can compute them itself.

Every primitive works on 32-bit unsigned integers, wrapping around on
overflow. There is no allocation, no strings beyond raw NUL-terminated byte
buffers, and no control flow: all of that belongs to the generated program.

# Memory

The peek and poke primitives read and write 32-bit cells at caller supplied
addresses. An address is an opaque uint whose meaning belongs to the Memory
model the runtime was built with:

	CellMemory    a paged 32-bit address space owned by the program; every
	              address below the limit is valid, and unwritten cells read
	              as 0
	NativeMemory  raw host pointers; nothing is checked, and an invalid
	              address is the caller's undefined behavior

# Faults

Only a few things can go wrong, and each one halts the entry routine: a
division by zero (ErrDivisionByZero), an unknown symbol or wrong argument count
given to Call, a memory error from the Memory model, or an output write error.
Run returns the fault; it is never turned into a numeric result.
*/
package prim
