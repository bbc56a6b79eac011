package region

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is one row of a ".pvi" sidecar index: the byte offset a decode
// may safely seek to and still observe every record with POS at or
// after Pos on Chrom.
type Entry struct {
	Chrom      string
	Pos        int64
	ByteOffset int64
}

// IndexWriter accumulates Entry rows as an encoder walks its input,
// recording one row whenever a data line starts at least BlockSize
// bytes past the previously recorded row, or is on a different contig
// than that row. It is the in-process
// counterpart of the ".pvi" sidecar described in the design: a
// positional index built from nothing but the CHROM/POS columns
// already being scanned, rather than a full tabix/BGZF virtual-offset
// index.
type IndexWriter struct {
	// BlockSize is the minimum byte gap between recorded rows. Zero
	// means every observed line is recorded.
	BlockSize int64

	entries    []Entry
	lastOffset int64
	have       bool
}

// Observe records (chrom, pos) at byteOffset if it is the first
// observation, is on a different contig than the last recorded one, or
// is at least BlockSize bytes past the last recorded one.
func (w *IndexWriter) Observe(chrom string, pos int64, byteOffset int64) {
	if w.have && chrom == w.entries[len(w.entries)-1].Chrom && byteOffset-w.lastOffset < w.BlockSize {
		return
	}
	w.entries = append(w.entries, Entry{Chrom: chrom, Pos: pos, ByteOffset: byteOffset})
	w.lastOffset = byteOffset
	w.have = true
}

// Entries returns the recorded rows in byte-offset order.
func (w *IndexWriter) Entries() []Entry {
	return w.entries
}

// WriteTo writes the index as tab-separated "chrom\tpos\toffset" rows.
func (w *IndexWriter) WriteTo(out io.Writer) (int64, error) {
	bw := bufio.NewWriter(out)
	var n int64
	for _, e := range w.entries {
		wrote, err := fmt.Fprintf(bw, "%s\t%d\t%d\n", e.Chrom, e.Pos, e.ByteOffset)
		n += int64(wrote)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// ReadIndex parses a ".pvi" sidecar written by IndexWriter.WriteTo.
func ReadIndex(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("region: malformed index row %q", line)
		}
		pos, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, err
		}
		offset, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Chrom: parts[0], Pos: pos, ByteOffset: offset})
	}
	return entries, sc.Err()
}

// Seek returns the largest byte offset among entries that is safe to
// seek to before scanning for f: the last row on f's contig whose
// position is at or before f.Widened().Lo. It returns 0 (meaning "start
// of stream") if no row qualifies, entries is empty, or f matches every
// contig.
//
// entries must be sorted by ByteOffset, as produced by IndexWriter.
func Seek(entries []Entry, f Filter) int64 {
	if f.Chrom == "" {
		return 0
	}
	w := f.Widened()
	var best int64
	for _, e := range entries {
		if e.Chrom != f.Chrom {
			continue
		}
		if e.Pos > w.Lo {
			break
		}
		best = e.ByteOffset
	}
	return best
}
