package decode

import "github.com/pkg/errors"

// ErrBadToken is returned when a sample field's back-reference token is
// malformed, or resolves to an index outside the current or previous
// line's unique-field table.
var ErrBadToken = errors.New("decode: malformed or out-of-range back-reference token")
