package slidebuf_test

import (
	"testing"

	"github.com/mewkiz/popvcf/internal/slidebuf"
	"github.com/stretchr/testify/assert"
)

func TestTableLookupInsert(t *testing.T) {
	tbl := slidebuf.NewTable()

	_, ok := tbl.Lookup([]byte("X"))
	assert.False(t, ok)

	idx := tbl.Insert([]byte("X"))
	assert.Equal(t, int32(0), idx)

	got, ok := tbl.Lookup([]byte("X"))
	assert.True(t, ok)
	assert.Equal(t, int32(0), got)

	idx2 := tbl.Insert([]byte("Y"))
	assert.Equal(t, int32(1), idx2)
	assert.Equal(t, 2, tbl.Len())
}

func TestTableAtOutOfRange(t *testing.T) {
	tbl := slidebuf.NewTable()
	_, ok := tbl.At(0)
	assert.False(t, ok)
}

func TestTableResetKeepsStorage(t *testing.T) {
	tbl := slidebuf.NewTable()
	tbl.Insert([]byte("X"))
	tbl.Reset()
	assert.Equal(t, 0, tbl.Len())
	_, ok := tbl.Lookup([]byte("X"))
	assert.False(t, ok)
}

func TestTableInsertCopiesBytes(t *testing.T) {
	tbl := slidebuf.NewTable()
	field := []byte("mutateme")
	tbl.Insert(field)
	field[0] = 'X'

	got, ok := tbl.At(0)
	assert.True(t, ok)
	assert.Equal(t, "mutateme", string(got))
}
