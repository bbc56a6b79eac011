// Package region parses and evaluates the decode-side region query
// described in the popvcf design: "chrom[:begin[-end]]".
package region

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrBadRegion is returned by Parse when the region string is malformed.
var ErrBadRegion = errors.New("region: malformed region string")

// Filter is a parsed (chrom, lo, hi) query. The Filter returned by
// Parse("") (empty Chrom, Lo 0, Hi the largest int64) matches every
// record; a zero-value Filter matches only POS 0.
type Filter struct {
	// Chrom is the required CHROM value; empty means "match all".
	Chrom string
	// Lo and Hi bound POS inclusively.
	Lo, Hi int64
}

// Parse parses "chrom[:begin[-end]]" into a Filter. An empty string
// yields the always-match Filter. When begin is given but end is not,
// end defaults to begin (a single-position query).
func Parse(s string) (Filter, error) {
	if s == "" {
		return Filter{Lo: 0, Hi: 1<<63 - 1}, nil
	}

	chrom, rest, hasColon := strings.Cut(s, ":")
	if chrom == "" {
		return Filter{}, ErrBadRegion
	}
	if !hasColon {
		return Filter{Chrom: chrom, Lo: 0, Hi: 1<<63 - 1}, nil
	}

	beginStr, endStr, hasDash := strings.Cut(rest, "-")
	begin, err := strconv.ParseInt(beginStr, 10, 64)
	if err != nil || begin < 0 {
		return Filter{}, ErrBadRegion
	}

	end := begin
	if hasDash {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil || end < begin {
			return Filter{}, ErrBadRegion
		}
	}

	return Filter{Chrom: chrom, Lo: begin, Hi: end}, nil
}

// Contains reports whether (chrom, pos) matches the filter.
func (f Filter) Contains(chrom []byte, pos int64) bool {
	if f.Chrom != "" && string(chrom) != f.Chrom {
		return false
	}
	return pos >= f.Lo && pos <= f.Hi
}

// Widened returns a copy of f with Lo rounded down to the nearest
// multiple of 10,000. The encoding's cross-line back-references can
// reach up to 10,000 positions backward, so a block-granularity
// pre-filter (e.g. an index lookup) must use this widened range while
// the scanner itself still applies the exact filter via Contains.
func (f Filter) Widened() Filter {
	w := f
	w.Lo = (f.Lo / 10000) * 10000
	return w
}
