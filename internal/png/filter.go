package png

import (
	"fmt"

	"github.com/MD5Visual/QTask/internal/ir"
)

// FilterType is the per-scanline filter selector stored as the first byte
// of every row in the decompressed image data.
type FilterType uint8

const (
	FilterNone FilterType = iota
	FilterSub
	FilterUp
	FilterAverage
	FilterPaeth
)

func (f FilterType) String() string {
	switch f {
	case FilterNone:
		return "None"
	case FilterSub:
		return "Sub"
	case FilterUp:
		return "Up"
	case FilterAverage:
		return "Average"
	case FilterPaeth:
		return "Paeth"
	default:
		return fmt.Sprintf("FilterType(%d)", uint8(f))
	}
}

// paeth returns whichever of a (left), b (up) or c (up-left) is closest to
// a+b-c, preferring a, then b.
func paeth(a, b, c uint8) uint8 {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// unfilter reverses filter ft on cur in place. prev is the already
// reconstructed row above (all zeros for the first row). Both rows have the
// same length, a whole number of 4-byte pixels. Byte arithmetic wraps mod 256.
func unfilter(ft FilterType, cur, prev []byte) error {
	const bpp = ir.BytesPerPixel

	switch ft {
	case FilterNone:
	case FilterSub:
		for i := bpp; i < len(cur); i++ {
			cur[i] += cur[i-bpp]
		}
	case FilterUp:
		for i, up := range prev {
			cur[i] += up
		}
	case FilterAverage:
		// The first pixel has no left neighbour.
		for i := 0; i < bpp && i < len(cur); i++ {
			cur[i] += prev[i] / 2
		}
		for i := bpp; i < len(cur); i++ {
			cur[i] += uint8((int(cur[i-bpp]) + int(prev[i])) / 2)
		}
	case FilterPaeth:
		for i := 0; i < bpp && i < len(cur); i++ {
			cur[i] += paeth(0, prev[i], 0)
		}
		for i := bpp; i < len(cur); i++ {
			cur[i] += paeth(cur[i-bpp], prev[i], prev[i-bpp])
		}
	default:
		return UnsupportedError(fmt.Sprintf("scanline filter type %d", uint8(ft)))
	}
	return nil
}

// reconstruct strips the filter byte from each of height rows in raw and
// undoes the filtering, returning height*width*4 pixel bytes. Bytes past the
// last row are ignored.
func reconstruct(raw []byte, width, height int) ([]byte, error) {
	stride := width * ir.BytesPerPixel
	if need := height * (stride + 1); len(raw) < need {
		return nil, FormatError(fmt.Sprintf("not enough pixel data: have %d bytes, need %d", len(raw), need))
	}

	pixels := make([]byte, height*stride)
	prev := make([]byte, stride)
	off := 0
	for y := 0; y < height; y++ {
		ft := FilterType(raw[off])
		row := pixels[y*stride : (y+1)*stride]
		copy(row, raw[off+1:off+1+stride])
		off += stride + 1

		if err := unfilter(ft, row, prev); err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
		prev = row
	}
	return pixels, nil
}
