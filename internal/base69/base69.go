// Package base69 implements the index codec used by popvcf back-reference
// tokens: a little-endian, variable-length integer encoded as printable
// ASCII digits from the 69-byte alphabet starting at ':' (0x3A).
package base69

import "github.com/pkg/errors"

// Min is the first byte of the base-69 alphabet, and also the threshold
// below which a sample-field byte cannot be part of an index token: VCF
// sample fields begin with a digit, '.', or other printable byte strictly
// less than Min.
const Min = ':'

// Size is the number of digits in the alphabet.
const Size = 69

// MaxValue is the largest index this codec will emit or accept, matching
// the 32-bit cap named in the encoding's design.
const MaxValue = 1<<31 - 1

// ErrEmptyToken is returned by Parse when given zero digit bytes.
var ErrEmptyToken = errors.New("base69: empty digit sequence")

// ErrTooLarge is returned by Parse when the decoded value would exceed
// MaxValue.
var ErrTooLarge = errors.New("base69: value exceeds 32-bit range")

// ErrOutOfRange is returned by Append when n exceeds MaxValue.
var ErrOutOfRange = errors.New("base69: value exceeds 32-bit range")

// Append writes the base-69 encoding of n to dst, least-significant digit
// first, and returns the extended slice.
func Append(dst []byte, n uint32) ([]byte, error) {
	if n > MaxValue {
		return dst, ErrOutOfRange
	}
	for n >= Size {
		dst = append(dst, byte(Min+n%Size))
		n /= Size
	}
	return append(dst, byte(Min+n)), nil
}

// Parse reads a base-69 digit run from the front of b, stopping at the
// first byte outside the alphabet (in practice a '\t' or '\n' terminator),
// and returns the decoded value together with the number of bytes
// consumed. Parse rejects an empty digit run.
func Parse(b []byte) (n uint32, consumed int, err error) {
	end := 0
	for end < len(b) && b[end] >= Min && b[end] < Min+Size {
		end++
	}
	if end == 0 {
		return 0, 0, ErrEmptyToken
	}

	var val uint64
	pow := uint64(1)
	for i := 0; i < end; i++ {
		val += pow * uint64(b[i]-Min)
		pow *= Size
	}
	if val > MaxValue {
		return 0, 0, ErrTooLarge
	}
	return uint32(val), end, nil
}
