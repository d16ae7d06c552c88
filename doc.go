/* Command primrt inspects the primitive runtime's symbol surface.

Code generators targeting the runtime emit calls to primitives by symbol
name rather than by operator spelling, since spellings like "<" or "char=?"
are not identifiers. primrt prints the catalogue of built-in primitives and
encodes arbitrary spellings the same way package symbol does:

	primrt symbols                  # aligned table
	primrt symbols --format yaml    # table for generators
	primrt symbols --format go      # Go constants, one per symbol
	primrt encode ops.txt           # "spelling<TAB>symbol" per line
	primrt encode --check ops.txt   # also fail on collisions

The runtime itself lives in package prim; generated programs start through
package boot.
*/
package main
