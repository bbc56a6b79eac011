// Package decode implements the decode-side state machine: it resolves
// each back-reference token produced by package encode to its literal
// field text, and optionally suppresses output for records outside a
// requested region.
package decode

import (
	"github.com/mewkiz/popvcf/internal/slidebuf"
	"github.com/mewkiz/popvcf/region"
)

// NSiteDataFields is the number of fixed site-data columns that precede
// sample columns.
const NSiteDataFields = 9

// altFieldIndex is the column of the ALT field within site data.
const altFieldIndex = 4

// State holds everything the decode scanner needs across field, line,
// and buffer-refill boundaries.
type State struct {
	FieldIndex int
	InHeader   bool
	InRegion   bool

	Filter region.Filter

	// Contig is held back (not yet emitted) until the POS field of the
	// same line resolves the region verdict.
	Contig []byte
	Pos    int64

	// NAlt is the comma count of the current line's ALT field (the
	// number of ALT alleles minus one); PrevNAlt is the previous data
	// line's value. Both are bookkeeping only: cross-line reuse is gated
	// on contig and POS bucket, not on these counts.
	NAlt     int
	PrevNAlt int
	// StoredAlt carries a partial ALT comma count across a buffer
	// refill that splits the ALT field itself. This implementation
	// always preserves an in-progress field intact across refills (see
	// internal/slidebuf.Buffer.Compact), so the ALT field is always
	// complete by the time it is scanned and StoredAlt never needs to
	// be nonzero; it is kept as a named field for parity with the
	// design's per-field state and reset after every ALT field.
	StoredAlt int

	Cur  *slidebuf.Table
	Prev *slidebuf.Table

	// CurColToUID and PrevColToUID map a sample column index (field
	// index - 9) to the index of the unique field text it resolved to
	// in Cur/Prev, used to resolve '$' and '&' tokens.
	CurColToUID  []int32
	PrevColToUID []int32

	hasPrevLine bool
	prevContig  []byte
	prevPos     int64
}

// New returns a freshly reset decode State filtering by f.
func New(f region.Filter) *State {
	return &State{
		Filter: f,
		Cur:    slidebuf.NewTable(),
		Prev:   slidebuf.NewTable(),
	}
}

// endLine swaps Cur into Prev (by pointer, not copy), clears Cur, and
// resets the per-line counters.
func (s *State) endLine() {
	if !s.InHeader {
		s.Cur, s.Prev = s.Prev, s.Cur
		s.Cur.Reset()
		s.CurColToUID, s.PrevColToUID = s.PrevColToUID, s.CurColToUID
		s.CurColToUID = s.CurColToUID[:0]
		s.PrevNAlt = s.NAlt
		s.prevContig = append(s.prevContig[:0], s.Contig...)
		s.prevPos = s.Pos
		s.hasPrevLine = true
	} else {
		s.Cur.Reset()
		s.CurColToUID = s.CurColToUID[:0]
	}
	s.FieldIndex = 0
	s.NAlt = 0
	s.StoredAlt = 0
}
