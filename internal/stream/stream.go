// Package stream opens dataset files for line-oriented reading and
// writing, transparently handling gzip, zstd and lz4 compression based on
// the file extension.
package stream

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the codec applied to a dataset file.
type Compression uint8

const (
	// None means plain text.
	None Compression = iota
	// Gzip is RFC 1952 gzip.
	Gzip
	// Zstd is Zstandard.
	Zstd
	// LZ4 is the LZ4 frame format.
	LZ4
)

// maxLine bounds a single record; high-dimensional text vectors get long.
const maxLine = 64 << 20

// Detect infers compression from the file extension.
func Detect(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// Reader is a line reader over a possibly compressed file.
type Reader struct {
	*bufio.Scanner
	closers []io.Closer
}

// Close releases the decompressor and the file, in that order.
func (r *Reader) Close() error {
	return closeAll(r.closers)
}

// Open opens path for line reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := &Reader{closers: []io.Closer{f}}
	var src io.Reader = f
	switch Detect(path) {
	case Gzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("stream: gzip %s: %w", path, err)
		}
		src = gz
		r.closers = append([]io.Closer{gz}, r.closers...)
	case Zstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("stream: zstd %s: %w", path, err)
		}
		rc := dec.IOReadCloser()
		src = rc
		r.closers = append([]io.Closer{rc}, r.closers...)
	case LZ4:
		src = lz4.NewReader(f)
	}
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	r.Scanner = sc
	return r, nil
}

// Writer is a buffered writer over a possibly compressed file.
type Writer struct {
	*bufio.Writer
	closers []io.Closer
}

// Close flushes buffered data, finalizes the compressed frame and closes
// the file. All steps run even if an earlier one fails.
func (w *Writer) Close() error {
	flushErr := w.Flush()
	if err := closeAll(w.closers); err != nil {
		return err
	}
	return flushErr
}

// Create creates or truncates path for writing.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := &Writer{closers: []io.Closer{f}}
	var dst io.Writer = f
	switch Detect(path) {
	case Gzip:
		gz := gzip.NewWriter(f)
		dst = gz
		w.closers = append([]io.Closer{gz}, w.closers...)
	case Zstd:
		enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("stream: zstd %s: %w", path, err)
		}
		dst = enc
		w.closers = append([]io.Closer{enc}, w.closers...)
	case LZ4:
		lw := lz4.NewWriter(f)
		dst = lw
		w.closers = append([]io.Closer{lw}, w.closers...)
	}
	w.Writer = bufio.NewWriter(dst)
	return w, nil
}

func closeAll(closers []io.Closer) error {
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
