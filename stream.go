// Package popvcf implements a streaming codec for a compressed dialect
// of tab-separated VCF text: repeated sample fields are replaced with
// compact base-69 ASCII back-reference tokens, intra-line and against
// the immediately preceding data line. See package encode and package
// decode for the scanners that do the actual work; this package wires
// them into a refill/scan/flush/compact driver over an io.Reader and
// io.Writer, following the open/close lifecycle of this module's
// streaming encoder/decoder ancestor.
package popvcf

import (
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mewkiz/popvcf/decode"
	"github.com/mewkiz/popvcf/encode"
	"github.com/mewkiz/popvcf/internal/slidebuf"
	"github.com/mewkiz/popvcf/region"
)

// DefaultEncodeBufferSize and DefaultDecodeBufferSize are the sliding
// buffer capacities used when an Options value leaves BufferSize unset.
// Decode uses a larger buffer than encode because the input side of a
// decode carries already-deduplicated (denser) text, so equivalent VCF
// content occupies less of the window, leaving more headroom before a
// pathological single field could overrun it.
const (
	DefaultEncodeBufferSize = 256 * 1024
	DefaultDecodeBufferSize = 512 * 1024
)

// Logger is the diagnostic channel named in the design: non-fatal
// conditions like a truncated input are reported here, never returned
// as an error.
type Logger interface {
	Printf(format string, v ...any)
}

func defaultLogger() Logger {
	return log.New(os.Stderr, "[popvcf] ", 0)
}

// EncodeOptions configures Encode.
type EncodeOptions struct {
	// NoPreviousLine disables all cross-line back-references.
	NoPreviousLine bool
	// BufferSize overrides DefaultEncodeBufferSize.
	BufferSize int
	// Logger overrides the default stderr diagnostic logger.
	Logger Logger
}

// DecodeOptions configures Decode.
type DecodeOptions struct {
	// Region restricts output to records matching this query, in
	// "chrom[:begin[-end]]" form. Empty means "all records".
	Region string
	// BufferSize overrides DefaultDecodeBufferSize.
	BufferSize int
	// Logger overrides the default stderr diagnostic logger.
	Logger Logger
}

// Encode reads VCF text from r and writes its popvcf encoding to w. The
// returned correlation ID is included in any diagnostic log lines
// produced during this call and is useful for tying together log
// output from concurrent pipeline stages.
func Encode(w io.Writer, r io.Reader, opts EncodeOptions) (id uuid.UUID, err error) {
	id = uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = defaultLogger()
	}
	bufSize := opts.BufferSize
	if bufSize <= 0 {
		bufSize = DefaultEncodeBufferSize
	}

	buf := slidebuf.New(bufSize)
	sc := encode.NewScanner(encode.New(opts.NoPreviousLine))

	var out []byte
	end := 0
	for {
		n, newEnd, rerr := buf.Fill(r, end)
		end = newEnd
		if rerr != nil && rerr != io.EOF {
			return id, errors.Wrap(rerr, "popvcf: read input")
		}
		if n == 0 {
			break
		}

		var fieldBegin int
		var serr error
		out, fieldBegin, serr = sc.Scan(buf.Bytes(end), end, out[:0])
		if serr != nil {
			return id, errors.Wrap(serr, "popvcf: encode")
		}
		if _, werr := w.Write(out); werr != nil {
			return id, errors.Wrap(werr, "popvcf: write output")
		}

		newEnd, cerr := buf.Compact(fieldBegin, end)
		if cerr != nil {
			return id, errors.Wrapf(cerr, "popvcf: buffer capacity %d exceeded", bufSize)
		}
		end = newEnd
	}

	if end != 0 {
		logger.Printf("id=%s WARNING: input ended mid-field; %d residual byte(s), input may be truncated", id, end)
	}
	return id, nil
}

// Decode reads a popvcf-encoded stream from r and writes the
// reconstructed VCF text to w, restricted to opts.Region if set.
func Decode(w io.Writer, r io.Reader, opts DecodeOptions) (id uuid.UUID, err error) {
	id = uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = defaultLogger()
	}
	bufSize := opts.BufferSize
	if bufSize <= 0 {
		bufSize = DefaultDecodeBufferSize
	}

	filter, ferr := region.Parse(opts.Region)
	if ferr != nil {
		return id, errors.Wrap(ferr, "popvcf: parse region")
	}

	buf := slidebuf.New(bufSize)
	sc := decode.NewScanner(decode.New(filter))

	var out []byte
	end := 0
	for {
		n, newEnd, rerr := buf.Fill(r, end)
		end = newEnd
		if rerr != nil && rerr != io.EOF {
			return id, errors.Wrap(rerr, "popvcf: read input")
		}
		if n == 0 {
			break
		}

		var fieldBegin int
		var serr error
		out, fieldBegin, serr = sc.Scan(buf.Bytes(end), end, out[:0])
		if serr != nil {
			return id, errors.Wrap(serr, "popvcf: decode")
		}
		if _, werr := w.Write(out); werr != nil {
			return id, errors.Wrap(werr, "popvcf: write output")
		}

		newEnd, cerr := buf.Compact(fieldBegin, end)
		if cerr != nil {
			return id, errors.Wrapf(cerr, "popvcf: buffer capacity %d exceeded", bufSize)
		}
		end = newEnd
	}

	if end != 0 {
		logger.Printf("id=%s WARNING: input ended mid-field; %d residual byte(s), input may be truncated", id, end)
	}
	return id, nil
}
