package encode

import (
	"bytes"

	"github.com/mewkiz/popvcf/internal/base69"
	"github.com/mewkiz/popvcf/internal/posparse"
)

// Scanner drives a State one terminator byte at a time over a buffer
// window, emitting literal fields or back-reference tokens to out.
type Scanner struct {
	State *State
}

// NewScanner returns a Scanner over state.
func NewScanner(state *State) *Scanner {
	return &Scanner{State: state}
}

// Scan processes buf[0:end), appending encoded output to out, and
// returns the extended out slice together with the offset of the first
// byte of the trailing partial field (i.e. the field, if any, that has
// no terminator yet within buf[0:end)). The caller compacts the sliding
// buffer from that offset before the next refill.
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

// emitField implements the per-terminator scanning rules: site-data
// fields (and every field of a header line) pass through verbatim;
// sample fields are deduplicated against the current and previous line.
func (s *State) emitField(out, field []byte, term byte) ([]byte, error) {
	switch {
	case s.FieldIndex == 0:
		s.InHeader = len(field) > 0 && field[0] == '#'
		if !s.InHeader {
			s.Contig = append(s.Contig[:0], field...)
		}

	case !s.InHeader && s.FieldIndex == 1:
		pos, err := posparse.Parse(field)
		if err != nil {
			return out, err
		}
		s.Pos = pos

		if s.NoPreviousLine || !s.HasPrevLine ||
			!bytes.Equal(s.Contig, s.PrevContig) || s.Pos/10000 != s.PrevPos/10000 {
			s.Prev.Reset()
		}
	}

	if s.InHeader || s.FieldIndex < NSiteDataFields {
		out = append(out, field...)
		out = append(out, term)
		return out, nil
	}

	return s.emitSample(out, field, term)
}

// emitSample implements rule 4 of the encode scanning rules: a sample
// field is written as a bare base-69 token when it repeats earlier in
// the current line, as a '%'-prefixed base-69 token when it repeats a
// field from the previous data line, and verbatim otherwise.
func (s *State) emitSample(out, field []byte, term byte) ([]byte, error) {
	if idx, ok := s.Cur.Lookup(field); ok {
		var err error
		out, err = base69.Append(out, uint32(idx))
		if err != nil {
			return out, err
		}
		out = append(out, term)
		return out, nil
	}

	s.Cur.Insert(field)

	if !s.NoPreviousLine {
		if prevIdx, ok := s.Prev.Lookup(field); ok {
			out = append(out, '%')
			var err error
			out, err = base69.Append(out, uint32(prevIdx))
			if err != nil {
				return out, err
			}
			out = append(out, term)
			return out, nil
		}
	}

	if len(field) > 0 && (field[0] == '$' || field[0] == '%' || field[0] == '&' || field[0] >= base69.Min) {
		return out, ErrReservedByte
	}

	out = append(out, field...)
	out = append(out, term)
	return out, nil
}
