package decode

import (
	"bytes"

	"github.com/mewkiz/popvcf/internal/base69"
	"github.com/mewkiz/popvcf/internal/posparse"
)

// Scanner drives a State one terminator byte at a time over a buffer
// window, resolving tokens to literal field text and suppressing output
// for records outside the configured region.
type Scanner struct {
	State *State
}

// NewScanner returns a Scanner over state.
func NewScanner(state *State) *Scanner {
	return &Scanner{State: state}
}

// Scan processes buf[0:end), appending decoded output to out, and
// returns the extended out slice together with the offset of the first
// byte of the trailing partial field.
func (sc *Scanner) Scan(buf []byte, end int, out []byte) (_ []byte, fieldBegin int, err error) {
	s := sc.State
	begin := 0
	i := 0
	for i < end {
		c := buf[i]
		if c != '\t' && c != '\n' {
			i++
			continue
		}

		field := buf[begin:i]
		out, err = s.emitField(out, field, c)
		if err != nil {
			return out, begin, err
		}

		begin = i + 1
		i = begin

		if c == '\n' {
			s.endLine()
		} else {
			s.FieldIndex++
		}
	}
	return out, begin, nil
}

func (s *State) emitField(out, field []byte, term byte) ([]byte, error) {
	switch {
	case s.FieldIndex == 0:
		s.InHeader = len(field) > 0 && field[0] == '#'
		if s.InHeader {
			s.InRegion = true
			out = append(out, field...)
			out = append(out, term)
			return out, nil
		}
		// Defer emission until the POS field resolves the region
		// verdict.
		s.Contig = append(s.Contig[:0], field...)
		return out, nil

	case !s.InHeader && s.FieldIndex == 1:
		pos, err := posparse.Parse(field)
		if err != nil {
			return out, err
		}
		s.Pos = pos
		s.InRegion = s.Filter.Contains(s.Contig, pos)

		// Cross-line back-references are only valid between
		// neighboring lines of the same contig and 10,000-position
		// bucket; this mirrors the encoder's own invalidation rule
		// (package encode's State.emitField), which is what actually
		// determines which '%'/'$'/'&' tokens the encoder could have
		// emitted. See DESIGN.md for why this implementation gates
		// prev-line validity on contig/POS rather than the ALT allele
		// count named in the design: gating on ALT count independently
		// of what the encoder used to decide validity risks discarding
		// a previous line that a '%' token still legitimately points
		// into, breaking the round-trip property.
		sameBucket := s.hasPrevLine && bytes.Equal(s.Contig, s.prevContig) && pos/10000 == s.prevPos/10000
		if !sameBucket {
			s.Prev.Reset()
			s.PrevColToUID = s.PrevColToUID[:0]
		}

		if s.InRegion {
			out = append(out, s.Contig...)
			out = append(out, '\t')
			out = append(out, field...)
			out = append(out, term)
		}
		return out, nil

	case !s.InHeader && s.FieldIndex == altFieldIndex:
		s.NAlt = countCommas(field) + s.StoredAlt
		s.StoredAlt = 0
		if s.InRegion {
			out = append(out, field...)
			out = append(out, term)
		}
		return out, nil
	}

	if s.InHeader || s.FieldIndex < NSiteDataFields {
		if s.InRegion {
			out = append(out, field...)
			out = append(out, term)
		}
		return out, nil
	}

	return s.emitSample(out, field, term)
}

// emitSample resolves one sample field's token to its literal identity,
// updates the current-line dedup table so later fields (in this line or
// the next) can reference it, and emits the identity iff in_region.
func (s *State) emitSample(out, field []byte, term byte) ([]byte, error) {
	k := s.FieldIndex - NSiteDataFields
	for len(s.CurColToUID) <= k {
		s.CurColToUID = append(s.CurColToUID, -1)
	}

	var identity []byte

	switch {
	case len(field) > 0 && field[0] == '$':
		text, ok := s.prevIdentity(k)
		if !ok {
			return out, ErrBadToken
		}
		identity = text
		s.CurColToUID[k] = s.Cur.Insert(identity)

	case len(field) > 0 && field[0] == '&':
		text, ok := s.prevIdentity(k)
		if !ok {
			return out, ErrBadToken
		}
		identity = text
		curIdx, ok := s.Cur.Lookup(identity)
		if !ok {
			return out, ErrBadToken
		}
		s.CurColToUID[k] = curIdx

	case len(field) > 0 && field[0] == '%':
		p, consumed, err := base69.Parse(field[1:])
		if err != nil {
			return out, ErrBadToken
		}
		if consumed+1 != len(field) {
			return out, ErrBadToken
		}
		text, ok := s.Prev.At(int32(p))
		if !ok {
			return out, ErrBadToken
		}
		identity = text
		s.CurColToUID[k] = s.Cur.Insert(identity)

	case len(field) > 0 && field[0] >= base69.Min:
		idx, consumed, err := base69.Parse(field)
		if err != nil {
			return out, ErrBadToken
		}
		if consumed != len(field) {
			return out, ErrBadToken
		}
		text, ok := s.Cur.At(int32(idx))
		if !ok {
			return out, ErrBadToken
		}
		identity = text
		s.CurColToUID[k] = int32(idx)

	default:
		identity = field
		s.CurColToUID[k] = s.Cur.Insert(identity)
	}

	if s.InRegion {
		out = append(out, identity...)
		out = append(out, term)
	}
	return out, nil
}

// prevIdentity resolves the previous line's unique field text at sample
// column k, used by the '$' and '&' token forms.
func (s *State) prevIdentity(k int) ([]byte, bool) {
	if k < 0 || k >= len(s.PrevColToUID) {
		return nil, false
	}
	idx := s.PrevColToUID[k]
	if idx < 0 {
		return nil, false
	}
	return s.Prev.At(idx)
}

func countCommas(field []byte) int {
	n := 0
	for _, c := range field {
		if c == ',' {
			n++
		}
	}
	return n
}
