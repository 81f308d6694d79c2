package ir

import (
	"bytes"
	"fmt"
	"image"
)

// BytesPerPixel is fixed: 8-bit R,G,B,A.
const BytesPerPixel = 4

// Image is the intermediate representation passed between the PNG decoder,
// the resampler and the PNG encoder. Pixels are stored as interleaved
// R,G,B,A bytes (4 bytes per pixel, row-major order, not premultiplied).
//
// An Image is treated as read-only once constructed; every operation in this
// module returns a new buffer.
type Image struct {
	Width  int
	Height int
	Pixels []byte // len = Width * Height * 4
}

// ConstructionError reports a pixel buffer that does not match the declared
// dimensions.
type ConstructionError struct {
	Width  int
	Height int
	Got    int
	Want   int
}

func (e *ConstructionError) Error() string {
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Sprintf("invalid image dimensions %dx%d", e.Width, e.Height)
	}
	return fmt.Sprintf("expected %d RGBA bytes for %dx%d, got %d", e.Want, e.Width, e.Height, e.Got)
}

// New builds an Image, checking that pixels holds exactly width*height*4 bytes.
// The slice is used as-is, not copied.
func New(width, height int, pixels []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConstructionError{Width: width, Height: height, Got: len(pixels)}
	}
	want := width * height * BytesPerPixel
	if len(pixels) != want {
		return nil, &ConstructionError{Width: width, Height: height, Got: len(pixels), Want: want}
	}
	return &Image{Width: width, Height: height, Pixels: pixels}, nil
}

// Blank returns a fully transparent black image of the given size. Tests use
// it to build fixtures; the codec itself never needs an empty image.
func Blank(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConstructionError{Width: width, Height: height}
	}
	return New(width, height, make([]byte, width*height*BytesPerPixel))
}

// Validate re-checks the size invariant on an Image that may have been built
// as a struct literal.
func (m *Image) Validate() error {
	if m == nil {
		return &ConstructionError{}
	}
	_, err := New(m.Width, m.Height, m.Pixels)
	return err
}

// Stride is the number of bytes in one row.
func (m *Image) Stride() int {
	return m.Width * BytesPerPixel
}

// Row returns the bytes of row y. The returned slice aliases the image.
func (m *Image) Row(y int) []byte {
	off := y * m.Stride()
	return m.Pixels[off : off+m.Stride()]
}

// PixelAt returns the R,G,B,A bytes of the pixel at (x, y). It is an
// inspection helper for tests and is not bounds-checked beyond slicing.
func (m *Image) PixelAt(x, y int) [4]byte {
	var px [4]byte
	off := (y*m.Width + x) * BytesPerPixel
	copy(px[:], m.Pixels[off:off+BytesPerPixel])
	return px
}

// Equal reports whether both images have the same dimensions and pixel bytes.
// Used by tests to compare round trips.
func (m *Image) Equal(o *Image) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Width == o.Width && m.Height == o.Height && bytes.Equal(m.Pixels, o.Pixels)
}

// NRGBA exposes the image as a standard library image. Pixels are copied.
func (m *Image) NRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	copy(dst.Pix, m.Pixels)
	return dst
}
