package slidebuf

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Table is a per-line field interning table: field text maps to its
// 0-based index in Unique, the ordered list of unique field strings seen
// so far. Lookups hash the candidate field with xxhash and compare only
// within the matching bucket, the same two-stage hash-then-compare
// strategy used to dedupe repeated byte strings in high-throughput
// encoders elsewhere in this ecosystem, rather than keying a map
// directly on copied field strings.
type Table struct {
	buckets map[uint64][]int32
	Unique  [][]byte
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{buckets: make(map[uint64][]int32, 64)}
}

// Lookup reports whether field is already present and, if so, its index.
func (t *Table) Lookup(field []byte) (idx int32, ok bool) {
	h := xxhash.Sum64(field)
	for _, i := range t.buckets[h] {
		if bytes.Equal(t.Unique[i], field) {
			return i, true
		}
	}
	return 0, false
}

// Insert appends field as a new unique entry, copying its bytes so the
// table does not alias the sliding buffer, and returns its index. Callers
// must have already established via Lookup that field is not present.
func (t *Table) Insert(field []byte) int32 {
	owned := make([]byte, len(field))
	copy(owned, field)

	idx := int32(len(t.Unique))
	t.Unique = append(t.Unique, owned)
	h := xxhash.Sum64(owned)
	t.buckets[h] = append(t.buckets[h], idx)
	return idx
}

// At returns the unique field at index idx, or (nil, false) if idx is out
// of range.
func (t *Table) At(idx int32) ([]byte, bool) {
	if idx < 0 || int(idx) >= len(t.Unique) {
		return nil, false
	}
	return t.Unique[idx], true
}

// Len returns the number of unique fields currently held.
func (t *Table) Len() int {
	return len(t.Unique)
}

// Reset clears the table for reuse at the next line, without releasing
// its backing storage.
func (t *Table) Reset() {
	for k := range t.buckets {
		delete(t.buckets, k)
	}
	t.Unique = t.Unique[:0]
}
