// Package encode implements the encode-side state machine described in
// the popvcf design: a per-line field scanner that replaces repeated
// sample fields with compact base-69 back-reference tokens, deduplicating
// against both the current line and the line immediately before it.
package encode

import "github.com/mewkiz/popvcf/internal/slidebuf"

// NSiteDataFields is the number of fixed site-data columns (CHROM, POS,
// ID, REF, ALT, QUAL, FILTER, INFO, FORMAT) that precede sample columns.
const NSiteDataFields = 9

// State holds everything the scanner needs to carry across field and
// line boundaries, and across buffer refills.
type State struct {
	// FieldIndex is the 0-based column of the field currently being
	// scanned; it resets to 0 at the start of every line.
	FieldIndex int
	// InHeader is true while the current line begins with '#'.
	InHeader bool

	// Contig and Pos are this line's CHROM and POS, valid once field
	// index 1 has been scanned.
	Contig []byte
	Pos    int64
	// PrevContig, PrevPos and HasPrevLine describe the data line
	// immediately before this one, if any.
	PrevContig  []byte
	PrevPos     int64
	HasPrevLine bool

	// Cur is the current line's dedup table; Prev is the previous data
	// line's table. They are swapped (not copied) at every line end.
	Cur  *slidebuf.Table
	Prev *slidebuf.Table

	// NoPreviousLine disables all cross-line back-references, forcing
	// every sample field to be resolved only against the current line.
	NoPreviousLine bool
}

// New returns a freshly reset encode State.
func New(noPreviousLine bool) *State {
	return &State{
		Cur:            slidebuf.NewTable(),
		Prev:           slidebuf.NewTable(),
		NoPreviousLine: noPreviousLine,
	}
}

// endLine snapshots the current line's dedup table into Prev by swapping
// the pointers (ownership of the field-text bytes moves with the
// pointer; nothing is copied), clears Cur for the next line, and resets
// FieldIndex.
func (s *State) endLine() {
	if !s.InHeader {
		// s.Prev takes ownership of this line's table (by swap, not
		// copy); s.Cur becomes the old Prev table, cleared for reuse.
		s.Cur, s.Prev = s.Prev, s.Cur
		s.Cur.Reset()
		s.PrevContig = append(s.PrevContig[:0], s.Contig...)
		s.PrevPos = s.Pos
		s.HasPrevLine = true
	} else {
		s.Cur.Reset()
	}
	s.FieldIndex = 0
}
