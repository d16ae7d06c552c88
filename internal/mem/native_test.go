package mem_test

import (
	"testing"

	"github.com/jcorbin/primrt/internal/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// package level, so that their addresses stay put
var (
	hostCells [4]uint32
	hostText  = []byte("hi\x00there")
)

func TestNative(t *testing.T) {
	var m mem.Native

	addr := mem.AddrOf(&hostCells[1])
	require.NoError(t, m.Stor(addr, 7, 8))
	assert.Equal(t, [4]uint32{0, 7, 8, 0}, hostCells)

	val, err := m.Load(addr)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), val)

	val, err = m.Load(mem.AddrOf(&hostCells[2]))
	require.NoError(t, err)
	assert.Equal(t, uint32(8), val)

	text, err := m.CString(mem.BytesAddr(hostText))
	require.NoError(t, err)
	assert.Equal(t, "hi", string(text))

	assert.Equal(t, uint(0), mem.BytesAddr(nil))
}
