package zlibx

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	"github.com/klauspost/compress/zlib"
)

func TestDeflateInflate(t *testing.T) {
	data := bytes.Repeat([]byte{0, 10, 20, 30, 40}, 200)

	for _, level := range []int{NoCompression, BestSpeed, DefaultCompression, BestCompression} {
		compressed, err := Deflate(data, level)
		if err != nil {
			t.Fatalf("Deflate(level=%d): %v", level, err)
		}
		// zlib header: CM=8 in the low nibble of CMF
		if len(compressed) < 2 || compressed[0]&0x0f != 8 {
			t.Fatalf("level %d: missing zlib header: % x", level, compressed[:2])
		}

		got, err := Inflate(compressed)
		if err != nil {
			t.Fatalf("Inflate(level=%d): %v", level, err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("level %d: inflated %d bytes, want %d identical bytes", level, len(got), len(data))
		}
	}
}

func TestDeflateInvalidLevel(t *testing.T) {
	if _, err := Deflate([]byte{1}, 42); err == nil {
		t.Fatal("expected error for level 42")
	}
}

func TestInflateGarbage(t *testing.T) {
	_, err := Inflate([]byte("definitely not zlib"))
	if err == nil {
		t.Fatal("expected error")
	}
	var de *DecompressionError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecompressionError, got %T: %v", err, err)
	}
}

func TestInflateTruncated(t *testing.T) {
	compressed, err := Deflate(bytes.Repeat([]byte("abc"), 100), BestCompression)
	if err != nil {
		t.Fatalf("Deflate: %v", err)
	}

	_, err = Inflate(compressed[:len(compressed)-6])
	var de *DecompressionError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecompressionError for truncated stream, got %v", err)
	}
}

// zeroStream compresses n zero bytes without holding them in memory.
func zeroStream(t *testing.T, n int) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		t.Fatal(err)
	}
	block := make([]byte, 1<<16)
	for written := 0; written < n; written += len(block) {
		if _, err := w.Write(block); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestInflateLimitStopsEarly(t *testing.T) {
	compressed := zeroStream(t, 64<<20)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	out, err := InflateLimit(compressed, 1000)
	runtime.ReadMemStats(&after)

	if err != nil {
		t.Fatalf("InflateLimit: %v", err)
	}
	if len(out) != 1000 {
		t.Errorf("got %d bytes, want 1000", len(out))
	}
	if delta := after.TotalAlloc - before.TotalAlloc; delta > 8<<20 {
		t.Errorf("allocated %d bytes inflating 1000", delta)
	}
}

func TestInflateLimitExactLength(t *testing.T) {
	data := bytes.Repeat([]byte{7, 8, 9}, 100)
	compressed, err := Deflate(data, BestCompression)
	if err != nil {
		t.Fatalf("Deflate: %v", err)
	}

	got, err := InflateLimit(compressed, int64(len(data)))
	if err != nil {
		t.Fatalf("InflateLimit: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("inflated %d bytes, want %d", len(got), len(data))
	}

	// The trailer is still verified when the stream fits the limit.
	compressed[len(compressed)-1] ^= 0xff
	_, err = InflateLimit(compressed, int64(len(data)))
	var de *DecompressionError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecompressionError for bad checksum, got %v", err)
	}
}
