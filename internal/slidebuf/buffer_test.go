package slidebuf_test

import (
	"bytes"
	"testing"

	"github.com/mewkiz/popvcf/internal/slidebuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillAndFieldSlice(t *testing.T) {
	buf := slidebuf.New(16)
	src := bytes.NewReader([]byte("abc\tdef\n"))

	n, end, err := buf.Fill(src, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, 8, end)
	assert.Equal(t, []byte("abc\tdef\n"), buf.Bytes(end))
	assert.Equal(t, []byte("abc"), buf.FieldSlice(0, 3))
}

func TestCompactSlidesRemainder(t *testing.T) {
	buf := slidebuf.New(8)
	src := bytes.NewReader([]byte("ab\tcdef"))
	_, end, _ := buf.Fill(src, 0)

	// Pretend the scanner consumed up through "ab\t" (offset 3) and the
	// trailing "cdef" is a partial field to carry over.
	newEnd, err := buf.Compact(3, end)
	require.NoError(t, err)
	assert.Equal(t, 4, newEnd)
	assert.Equal(t, []byte("cdef"), buf.Bytes(newEnd))
}

func TestCompactFieldTooLarge(t *testing.T) {
	buf := slidebuf.New(4)
	src := bytes.NewReader([]byte("abcd"))
	_, end, _ := buf.Fill(src, 0)

	_, err := buf.Compact(0, end)
	assert.ErrorIs(t, err, slidebuf.ErrFieldTooLarge)
}
