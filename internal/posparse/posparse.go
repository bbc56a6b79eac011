// Package posparse implements the minimal, allocation-free decimal parser
// the encode and decode scanners use for the VCF POS column: it never
// needs to handle signs, whitespace, or overflow beyond what a genomic
// coordinate requires.
package posparse

import "github.com/pkg/errors"

// ErrInvalid is returned when b is empty or contains a non-digit byte.
var ErrInvalid = errors.New("posparse: invalid POS field")

// Parse reads an unsigned decimal integer from b.
func Parse(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, ErrInvalid
	}
	var n int64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, ErrInvalid
		}
		n = n*10 + int64(c-'0')
	}
	return n, nil
}
