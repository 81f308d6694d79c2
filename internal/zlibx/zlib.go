// Package zlibx is the compression provider used by the PNG codec: a thin
// inflate/deflate layer over klauspost/compress's zlib implementation.
package zlibx

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Compression levels accepted by Deflate.
const (
	NoCompression      = zlib.NoCompression
	BestSpeed          = zlib.BestSpeed
	BestCompression    = zlib.BestCompression
	DefaultCompression = zlib.DefaultCompression
)

// DecompressionError reports that a zlib stream could not be inflated.
type DecompressionError struct {
	Err error
}

func (e *DecompressionError) Error() string {
	return "zlib inflate: " + e.Err.Error()
}

func (e *DecompressionError) Unwrap() error { return e.Err }

// Inflate decompresses a complete zlib stream (header, deflate data, Adler-32
// trailer) held in memory.
func Inflate(data []byte) ([]byte, error) {
	return InflateLimit(data, -1)
}

// InflateLimit is Inflate that stops after limit bytes of output; a negative
// limit means no limit. Output past the limit is discarded without being
// decompressed. A stream that ends within the limit is still checked against
// its Adler-32 trailer.
func InflateLimit(data []byte, limit int64) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &DecompressionError{Err: err}
	}
	defer zr.Close()

	var r io.Reader = zr
	if limit >= 0 {
		// One extra byte lets a stream of exactly limit bytes reach EOF.
		r = io.LimitReader(zr, limit+1)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecompressionError{Err: err}
	}
	if limit >= 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Deflate compresses data into a zlib stream at the given level
// (NoCompression..BestCompression, or DefaultCompression).
func Deflate(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("zlib deflate: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("zlib deflate: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib deflate: %w", err)
	}
	return buf.Bytes(), nil
}
