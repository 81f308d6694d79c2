package resample

import (
	"bytes"
	"errors"
	"testing"

	"github.com/MD5Visual/QTask/internal/ir"
)

// newPatterned fills each pixel with bytes derived from its coordinates so
// every pixel is distinct.
func newPatterned(t *testing.T, width, height int) *ir.Image {
	t.Helper()
	pixels := make([]byte, 0, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels = append(pixels, byte(x), byte(y), byte(x*16+y), 255-byte(x+y))
		}
	}
	img, err := ir.New(width, height, pixels)
	if err != nil {
		t.Fatalf("ir.New: %v", err)
	}
	return img
}

func TestNearestSquareIdentity(t *testing.T) {
	src := newPatterned(t, 7, 7)
	dst, err := Nearest(src, 7)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if !dst.Equal(src) {
		t.Error("resizing a square image to its own size changed it")
	}
}

func TestNearestNonSquareSameWidth(t *testing.T) {
	src := newPatterned(t, 4, 2)
	dst, err := Nearest(src, 4)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if dst.Width != 4 || dst.Height != 4 {
		t.Fatalf("got %dx%d", dst.Width, dst.Height)
	}
	if dst.Equal(src) {
		t.Error("non-square source must not come back unchanged")
	}
}

func TestNearestOutputSize(t *testing.T) {
	src := newPatterned(t, 5, 3)
	for _, size := range []int{1, 2, 3, 5, 16, 48, 257} {
		dst, err := Nearest(src, size)
		if err != nil {
			t.Fatalf("Nearest(%d): %v", size, err)
		}
		if dst.Width != size || dst.Height != size || len(dst.Pixels) != size*size*4 {
			t.Errorf("Nearest(%d): got %dx%d with %d bytes", size, dst.Width, dst.Height, len(dst.Pixels))
		}
	}
}

func TestNearestFormula(t *testing.T) {
	src := newPatterned(t, 5, 3)
	for _, size := range []int{2, 4, 7, 10} {
		dst, err := Nearest(src, size)
		if err != nil {
			t.Fatalf("Nearest(%d): %v", size, err)
		}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				want := src.PixelAt(x*src.Width/size, y*src.Height/size)
				if got := dst.PixelAt(x, y); got != want {
					t.Fatalf("size %d: pixel (%d,%d) = %v, want %v", size, x, y, got, want)
				}
			}
		}
	}
}

func TestNearestDownscale(t *testing.T) {
	// 4x4 -> 2x2 picks the top-left pixel of every 2x2 block.
	src := newPatterned(t, 4, 4)
	dst, err := Nearest(src, 2)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	for _, p := range [][4]int{{0, 0, 0, 0}, {1, 0, 2, 0}, {0, 1, 0, 2}, {1, 1, 2, 2}} {
		if got, want := dst.PixelAt(p[0], p[1]), src.PixelAt(p[2], p[3]); got != want {
			t.Errorf("pixel (%d,%d) = %v, want source (%d,%d) %v", p[0], p[1], got, p[2], p[3], want)
		}
	}
}

func TestNearestDeterministic(t *testing.T) {
	src := newPatterned(t, 9, 6)
	a, err := Nearest(src, 31)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	b, err := Nearest(src, 31)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if !bytes.Equal(a.Pixels, b.Pixels) {
		t.Error("two resizes of the same input differ")
	}
}

func TestNearestLeavesSourceAlone(t *testing.T) {
	src := newPatterned(t, 3, 3)
	before := append([]byte(nil), src.Pixels...)
	dst, err := Nearest(src, 3)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	dst.Pixels[0] ^= 0xff
	if !bytes.Equal(src.Pixels, before) {
		t.Error("source pixels changed")
	}
}

func TestNearestInvalidSize(t *testing.T) {
	src := newPatterned(t, 2, 2)
	for _, size := range []int{0, -1} {
		if _, err := Nearest(src, size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Nearest(%d): expected ErrInvalidSize, got %v", size, err)
		}
	}
}

func TestNearestRect(t *testing.T) {
	src := newPatterned(t, 2, 2)
	dst, err := NearestRect(src, 4, 1)
	if err != nil {
		t.Fatalf("NearestRect: %v", err)
	}
	want := []byte{}
	for _, x := range []int{0, 0, 1, 1} {
		px := src.PixelAt(x, 0)
		want = append(want, px[:]...)
	}
	if !bytes.Equal(dst.Pixels, want) {
		t.Errorf("got %v, want %v", dst.Pixels, want)
	}
}
