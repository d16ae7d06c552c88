// Package fileinput reads lines sequentially through a queue of named input
// streams, tracking the location of each line for diagnostics.
package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line is a line of text, without its line ending, along with its Location.
type Line struct {
	Location
	Text string
}

func (il Line) String() string { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Streams implementing io.Closer are closed once exhausted.
type Input struct {
	Queue []io.Reader

	cur *bufio.Scanner
	rc  io.Closer
	loc Location
}

// ReadLine returns the next line, moving on to the next queued stream at
// the end of each one. Returns io.EOF after the last stream ends.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.cur == nil && !in.nextIn() {
			return Line{}, io.EOF
		}
		if in.cur.Scan() {
			in.loc.Line++
			return Line{in.loc, in.cur.Text()}, nil
		}
		err := in.cur.Err()
		in.closeIn()
		if err != nil {
			return Line{Location: in.loc}, fmt.Errorf("%v: %w", in.loc.Name, err)
		}
	}
}

// Close closes any current stream and any still queued.
func (in *Input) Close() (err error) {
	in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() {
	if in.rc != nil {
		in.rc.Close()
		in.rc = nil
	}
	in.cur = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = bufio.NewScanner(r)
	in.rc, _ = r.(io.Closer)
	in.loc = Location{Name: nameOf(r)}
	return true
}

// NamedReader attaches a name to a reader, for inputs like strings that have
// none of their own.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
