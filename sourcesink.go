package popvcf

import (
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// InputFormat selects how OpenInput interprets the underlying byte
// stream before handing it to Decode/Encode.
type InputFormat byte

// Input formats. FormatGzip covers both block-gzip (BGZF) and plain
// gzip VCF.gz input: both are valid gzip streams and this codec never
// needs BGZF's virtual-offset seeking, only its bytes.
const (
	FormatPlain InputFormat = iota
	FormatGzip
)

// OpenInput opens path (or stdin, when path is "" or "-") and wraps it
// per format. The returned io.ReadCloser's Close is a no-op on stdin.
func OpenInput(path string, format InputFormat) (io.ReadCloser, error) {
	f, closeF, err := openInputFile(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "popvcf: open gzip input")
		}
		closers := []io.Closer{gz}
		if closeF {
			closers = append(closers, f)
		}
		return &multiCloseReader{Reader: gz, closers: closers}, nil
	default:
		if !closeF {
			return io.NopCloser(f), nil
		}
		return f, nil
	}
}

func openInputFile(path string) (f *os.File, shouldClose bool, err error) {
	if path == "" || path == "-" {
		return os.Stdin, false, nil
	}
	f, err = os.Open(path)
	if err != nil {
		return nil, false, errors.Wrapf(err, "popvcf: open input %q", path)
	}
	return f, true, nil
}

// OutputFormat selects the optional block-compression codec applied to
// an output stream.
type OutputFormat byte

// Output formats.
const (
	OutputPlain OutputFormat = iota
	OutputGzip
	OutputZstd
	OutputLZ4
)

// OpenOutput opens path (or stdout, when path is "" or "-") and wraps it
// per format. Level is the codec's compression level (ignored for
// OutputPlain); threads configures background compression parallelism
// for zstd output, and is ignored otherwise. The returned io.WriteCloser's Close flushes any pending
// compressed output before closing the underlying file (stdout is never
// closed).
func OpenOutput(path string, format OutputFormat, level, threads int) (io.WriteCloser, error) {
	f, closeF, err := openOutputFile(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case OutputGzip:
		gz, err := gzip.NewWriterLevel(f, gzipLevel(level))
		if err != nil {
			return nil, errors.Wrap(err, "popvcf: open gzip output")
		}
		closers := []io.Closer{gz}
		if closeF {
			closers = append(closers, f)
		}
		return &multiCloseWriter{Writer: gz, closers: closers}, nil

	case OutputZstd:
		zOpts := []zstd.EOption{zstd.WithEncoderLevel(zstdLevel(level))}
		if threads > 1 {
			zOpts = append(zOpts, zstd.WithEncoderConcurrency(threads))
		}
		zw, err := zstd.NewWriter(f, zOpts...)
		if err != nil {
			return nil, errors.Wrap(err, "popvcf: open zstd output")
		}
		closers := []io.Closer{zw}
		if closeF {
			closers = append(closers, f)
		}
		return &multiCloseWriter{Writer: zw, closers: closers}, nil

	case OutputLZ4:
		lzw := lz4.NewWriter(f)
		if err := lzw.Apply(lz4.CompressionLevelOption(lz4Level(level))); err != nil {
			return nil, errors.Wrap(err, "popvcf: configure lz4 output")
		}
		closers := []io.Closer{lzw}
		if closeF {
			closers = append(closers, f)
		}
		return &multiCloseWriter{Writer: lzw, closers: closers}, nil

	default:
		if !closeF {
			return nopWriteCloser{f}, nil
		}
		return f, nil
	}
}

func openOutputFile(path string) (f *os.File, shouldClose bool, err error) {
	if path == "" || path == "-" {
		return os.Stdout, false, nil
	}
	f, err = os.Create(path)
	if err != nil {
		return nil, false, errors.Wrapf(err, "popvcf: create output %q", path)
	}
	return f, true, nil
}

func gzipLevel(level int) int {
	if level <= 0 {
		return gzip.DefaultCompression
	}
	if level > gzip.BestCompression {
		return gzip.BestCompression
	}
	return level
}

func zstdLevel(level int) zstd.EncoderLevel {
	switch {
	case level <= 1:
		return zstd.SpeedFastest
	case level <= 3:
		return zstd.SpeedDefault
	case level <= 6:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

func lz4Level(level int) lz4.CompressionLevel {
	if level <= 0 {
		return lz4.Fast
	}
	return lz4.CompressionLevel(level)
}

type multiCloseReader struct {
	io.Reader
	closers []io.Closer
}

func (r *multiCloseReader) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type multiCloseWriter struct {
	io.Writer
	closers []io.Closer
}

func (w *multiCloseWriter) Close() error {
	var firstErr error
	for _, c := range w.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
