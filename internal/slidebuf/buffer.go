// Package slidebuf implements the fixed-capacity sliding byte buffer that
// the popvcf scanners read from: a bounded window of input bytes that
// carries a partial trailing field across refills. It is modeled on the
// buffer bookkeeping of a buffered io.ReadSeeker, adapted to popvcf's
// contract of a hard capacity and explicit compaction instead of
// transparent seeking.
package slidebuf

import "github.com/pkg/errors"

// ErrFieldTooLarge is returned by Compact when no field terminator was
// found anywhere in a full buffer: the caller's field (or line) exceeds
// the buffer's capacity.
var ErrFieldTooLarge = errors.New("slidebuf: field exceeds buffer capacity")

// Source fills p with bytes from a logical stream, returning the number
// of bytes read. It has the shape of io.Reader and is satisfied by one.
type Source interface {
	Read(p []byte) (n int, err error)
}

// Buffer is a fixed-capacity byte window. Content is recycled in place
// across refills: the scanner consumes a prefix, Compact slides the
// unconsumed remainder back to offset 0, and the next Fill appends after
// it.
type Buffer struct {
	buf []byte
}

// New allocates a Buffer with the given fixed capacity.
func New(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, capacity)}
}

// Cap returns the buffer's fixed capacity.
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// Fill reads from src into the buffer starting at offset at, writing at
// most Cap()-at bytes. It returns the number of bytes read and the new
// valid end offset (at+n).
func (b *Buffer) Fill(src Source, at int) (n int, end int, err error) {
	n, err = src.Read(b.buf[at:])
	return n, at + n, err
}

// Bytes returns the valid region of the buffer, [0, end).
func (b *Buffer) Bytes(end int) []byte {
	return b.buf[:end]
}

// FieldSlice returns the byte slice [begin, cursor) of the buffer. The
// returned slice aliases the buffer and is only valid until the next
// Compact; callers that need to retain a field's bytes past a refill must
// copy it first (see slidebuf.Table, which does this for the dedup
// tables).
func (b *Buffer) FieldSlice(begin, cursor int) []byte {
	return b.buf[begin:cursor]
}

// Compact moves buf[from:end) to the start of the buffer and returns the
// new end offset. It fails with ErrFieldTooLarge when from is 0 and end
// is the full capacity: that means no field terminator was found
// anywhere in an entire buffer-full, so the partial field the caller is
// trying to preserve cannot fit.
func (b *Buffer) Compact(from, end int) (newEnd int, err error) {
	if from == 0 && end == len(b.buf) {
		return 0, ErrFieldTooLarge
	}
	newEnd = copy(b.buf, b.buf[from:end])
	return newEnd, nil
}
