package mem_test

import (
	"log"
	"os"
	"testing"

	"github.com/jcorbin/primrt/internal/logio"
	"github.com/jcorbin/primrt/internal/mem"
	"github.com/jcorbin/primrt/internal/panicerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Cells(t *testing.T) {
	for _, tc := range []cellsTestCase{
		cellsTest("basic",
			"init", func(t *testing.T, m *mem.Cells) {
				m.PageSize = 4
				expectCellAt(t, m, 0, 0)
				require.Equal(t, uint(0), m.Size(), "expected 0 initial size")
			},

			"9 -> 0", func(t *testing.T, m *mem.Cells) {
				require.NoError(t, m.Stor(0, 9), "must stor @0")
				expectCellAt(t, m, 0, 9)
				//  0  1  2  3  :  9  0  0  0
				//  4  5  6  7  :  -  -  -  -
				//  8  9  a  b  :  -  -  -  -
				expectCellsAt(t, m, 2,
					0, 0,
					0, 0, 0, 0,
					0, 0, 0, 0)
			},

			"{1, 2, 3, 4, 5, 6} -> 0x9", func(t *testing.T, m *mem.Cells) {
				require.NoError(t, m.Stor(0x9, 1, 2, 3, 4, 5, 6), "must stor @0x9")
				require.Equal(t, mem.CellsDump{
					Bases: []uint{0x0, 0x8, 0xc},
					Sizes: []uint{4, 4, 4},
					Pages: [][]uint32{
						{9, 0, 0, 0},
						{0, 1, 2, 3},
						{4, 5, 6, 0},
					},
				}, m.Dump(), "expected a page hole")
				//  0  1  2  3  :  9  0  0  0
				//  4  5  6  7  :  -  -  -  -
				//  8  9  a  b  :  0  1  2  3
				//  c  d  e  f  :  4  5  6  0
				expectCellsAt(t, m, 6,
					0, 0,
					0, 1, 2, 3,
					4, 5, 6, 0,
					0, 0)
			},

			"stor across the 0x10 page gap", func(t *testing.T, m *mem.Cells) {
				require.NoError(t, m.Stor(0xe, 96, 97, 98, 99, 91, 92), "must stor @0xe")
				//  c  d  e  f  :  4  5  96 97
				// 10 11 12 13  :  98 99 91 92
				expectCellsAt(t, m, 0xc,
					4, 5, 96, 97,
					98, 99, 91, 92,
					0, 0)
				assert.Equal(t, uint(0x14), m.Size(), "expected size after gap fill")
			},
		),

		cellsTest("missing lower section",
			"initial value in 2nd page", func(t *testing.T, m *mem.Cells) {
				m.PageSize = 0x10
				expectCellAt(t, m, 0x18, 0)
				require.NoError(t, m.Stor(0x18, 42), "unexpected stor error")
				expectCellAt(t, m, 0x18, 42)
			},

			"load low", func(t *testing.T, m *mem.Cells) { expectCellAt(t, m, 0x8, 0) },

			"finally create the 1st page", func(t *testing.T, m *mem.Cells) {
				require.NoError(t, m.Stor(0x8, 3), "unexpected stor error")
				expectCellAt(t, m, 0x8, 3)
				expectCellAt(t, m, 0x18, 42)
			},
		),

		cellsTest("full width values",
			"stor max", func(t *testing.T, m *mem.Cells) {
				require.NoError(t, m.Stor(7, 0xffffffff, 0x80000000))
				expectCellsAt(t, m, 6, 0, 0xffffffff, 0x80000000, 0)
			},
		),

		cellsTest("limit",
			"within", func(t *testing.T, m *mem.Cells) {
				m.Limit = 16
				require.NoError(t, m.Stor(15, 1))
				expectCellAt(t, m, 15, 1)
			},

			"stor past", func(t *testing.T, m *mem.Cells) {
				err := m.Stor(16, 1, 2)
				require.Equal(t, mem.LimitError{Addr: 16, Op: "stor"}, err)
				expectCellAt(t, m, 15, 1)
			},

			"stor across", func(t *testing.T, m *mem.Cells) {
				err := m.Stor(14, 7, 8, 9)
				require.Equal(t, mem.LimitError{Addr: 16, Op: "stor"}, err)
				expectCellsAt(t, m, 14, 0, 1)
			},

			"load at", func(t *testing.T, m *mem.Cells) {
				_, err := m.Load(16)
				require.EqualError(t, err, "memory limit exceeded by load @16")
			},

			"load past", func(t *testing.T, m *mem.Cells) {
				_, err := m.Load(17)
				require.EqualError(t, err, "memory limit exceeded by load @17")
			},

			"load into across", func(t *testing.T, m *mem.Cells) {
				err := m.LoadInto(12, make([]uint32, 5))
				require.Equal(t, mem.LimitError{Addr: 16, Op: "load"}, err)
			},

			"text into limit", func(t *testing.T, m *mem.Cells) {
				require.NoError(t, m.Stor(12, 'a', 'b', 'c', 'd'))
				text, err := m.CString(12)
				require.Equal(t, mem.LimitError{Addr: 16, Op: "load"}, err)
				require.Equal(t, "abcd", string(text))
			},
		),

		cellsTest("top of the address space",
			"round trip", func(t *testing.T, m *mem.Cells) {
				require.NoError(t, m.Stor(mem.AddrSpace-1, 0xabcd))
				expectCellAt(t, m, mem.AddrSpace-1, 0xabcd)
				expectCellsAt(t, m, mem.AddrSpace-3, 0, 0, 0xabcd)
			},

			"stor past", func(t *testing.T, m *mem.Cells) {
				require.Equal(t, mem.LimitError{Addr: mem.AddrSpace, Op: "stor"},
					m.Stor(mem.AddrSpace-1, 1, 2))
				require.Equal(t, mem.LimitError{Addr: ^uint(0), Op: "stor"},
					m.Stor(^uint(0), 1))
				expectCellAt(t, m, mem.AddrSpace-1, 0xabcd)
			},

			"load past", func(t *testing.T, m *mem.Cells) {
				_, err := m.Load(mem.AddrSpace)
				require.Equal(t, mem.LimitError{Addr: mem.AddrSpace, Op: "load"}, err)
			},

			"text", func(t *testing.T, m *mem.Cells) {
				require.NoError(t, m.Stor(mem.AddrSpace-3, 'x', 'y'))
				text, err := m.CString(mem.AddrSpace - 3)
				require.Equal(t, mem.LimitError{Addr: mem.AddrSpace, Op: "load"}, err)
				require.Equal(t, []byte{'x', 'y', 0xcd}, text)
			},
		),

		cellsTest("text",
			"round trip", func(t *testing.T, m *mem.Cells) {
				require.NoError(t, m.Stor(100, 'h', 'e', 'l', 'l', 'o', 0))
				text, err := m.CString(100)
				require.NoError(t, err)
				require.Equal(t, "hello", string(text))
				expectCellsAt(t, m, 100, 'h', 'e', 'l', 'l', 'o', 0)
			},

			"low byte only", func(t *testing.T, m *mem.Cells) {
				require.NoError(t, m.Stor(200, 0x141, 0x242, 0x100))
				text, err := m.CString(200)
				require.NoError(t, err)
				require.Equal(t, "AB", string(text))
			},

			"empty", func(t *testing.T, m *mem.Cells) {
				text, err := m.CString(300)
				require.NoError(t, err)
				require.Empty(t, text)
			},
		),
	} {
		t.Run(tc.name, func(t *testing.T) {
			tcLogOut := &logio.Writer{Logf: t.Logf}
			log.SetOutput(tcLogOut)
			defer log.SetOutput(os.Stderr)

			var m mem.Cells
			defer func() {
				if t.Failed() {
					d := m.Dump()
					t.Logf("bases: %v", d.Bases)
					t.Logf("sizes: %v", d.Sizes)
					t.Logf("pages: %v", d.Pages)
				}
			}()

			for _, step := range tc.steps {
				if !t.Run(step.name, func(t *testing.T) {
					isolateTest(t, step.bind(&m))
				}) {
					break
				}
			}
		})
	}
}

func isolateTest(t *testing.T, f func(t *testing.T)) {
	if err := panicerr.Recover(t.Name(), func() error {
		f(t)
		return nil
	}); err != nil {
		t.Logf("%+v", err)
		t.Fail()
	}
}

func expectCellAt(t *testing.T, m *mem.Cells, addr uint, value uint32) {
	val, err := m.Load(addr)
	require.NoError(t, err, "unexpected load @0x%x error", addr)
	require.Equal(t, value, val, "expected value @0x%x", addr)
}

func expectCellsAt(t *testing.T, m *mem.Cells, addr uint, values ...uint32) {
	buf := make([]uint32, len(values))
	require.NoError(t, m.LoadInto(addr, buf),
		"must load %v values from @0x%x", len(values), addr)
	require.Equal(t, values, buf, "expected values @0x%x", addr)
}

func cellsTest(name string, args ...interface{}) (tc cellsTestCase) {
	tc.name = name
	for i := 0; i < len(args); i++ {
		var step cellsTestStep

		step.name = args[i].(string)

		if i++; i >= len(args) {
			panic("cellsTest: missing function argument after name")
		}
		step.f = args[i].(func(t *testing.T, m *mem.Cells))

		tc.steps = append(tc.steps, step)
	}
	return tc
}

type cellsTestCase struct {
	name  string
	steps []cellsTestStep
}

type cellsTestStep struct {
	name string
	f    func(t *testing.T, m *mem.Cells)

	m *mem.Cells
}

func (step cellsTestStep) bind(m *mem.Cells) func(t *testing.T) {
	step.m = m
	return step.boundTest
}

func (step cellsTestStep) boundTest(t *testing.T) {
	step.f(t, step.m)
}
