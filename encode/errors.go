package encode

import "github.com/pkg/errors"

// ErrReservedByte is returned when a literal sample field's first byte
// collides with a codec metacharacter ('$', '%', '&', or any byte at or
// above ':', where the base-69 alphabet starts). Such a field cannot be
// told apart from a
// back-reference token on decode.
var ErrReservedByte = errors.New("encode: sample field begins with a reserved codec byte")
