package popvcf

import "github.com/mewkiz/popvcf/internal/slidebuf"

// ErrFieldTooLarge is returned when a field (or an entire line) exceeds
// the configured buffer capacity: no '\t' or '\n' terminator was found
// anywhere in a full buffer. It is an alias of internal/slidebuf's
// sentinel so callers can errors.Is against the public name.
var ErrFieldTooLarge = slidebuf.ErrFieldTooLarge
