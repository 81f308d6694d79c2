// Package resample scales ir.Image buffers.
package resample

import (
	"errors"

	"github.com/MD5Visual/QTask/internal/ir"
)

// ErrInvalidSize is returned for a target dimension the resampler will not
// produce.
var ErrInvalidSize = errors.New("resample: invalid target size")

// Nearest resizes src to a size x size square using nearest-neighbour
// sampling: destination pixel (x, y) copies source pixel
// (x*src.Width/size, y*src.Height/size), integer division throughout.
func Nearest(src *ir.Image, size int) (*ir.Image, error) {
	return NearestRect(src, size, size)
}

// NearestRect is Nearest for an arbitrary width x height target.
func NearestRect(src *ir.Image, width, height int) (*ir.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	// Source byte offset within a row for each destination column.
	cols := make([]int, width)
	for x := range cols {
		cols[x] = x * src.Width / width * ir.BytesPerPixel
	}

	dst := make([]byte, width*height*ir.BytesPerPixel)
	stride := width * ir.BytesPerPixel
	for y := 0; y < height; y++ {
		srcRow := src.Row(y * src.Height / height)
		dstRow := dst[y*stride : (y+1)*stride]
		for x, sx := range cols {
			copy(dstRow[x*ir.BytesPerPixel:(x+1)*ir.BytesPerPixel], srcRow[sx:sx+ir.BytesPerPixel])
		}
	}
	return ir.New(width, height, dst)
}
