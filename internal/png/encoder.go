package png

import (
	"encoding/binary"
	"fmt"

	"github.com/MD5Visual/QTask/internal/ir"
	"github.com/MD5Visual/QTask/internal/zlibx"
)

// CompressionLevel selects the deflate effort for IDAT data. It only changes
// the output size, never the decoded pixels.
type CompressionLevel int

const (
	BestCompression    CompressionLevel = 0 // the zero value
	DefaultCompression CompressionLevel = -1
	BestSpeed          CompressionLevel = -2
	NoCompression      CompressionLevel = -3
)

func (l CompressionLevel) zlibLevel() (int, error) {
	switch l {
	case BestCompression:
		return zlibx.BestCompression, nil
	case DefaultCompression:
		return zlibx.DefaultCompression, nil
	case BestSpeed:
		return zlibx.BestSpeed, nil
	case NoCompression:
		return zlibx.NoCompression, nil
	default:
		return 0, fmt.Errorf("unknown compression level %d", int(l))
	}
}

// ParseCompressionLevel converts a level name to a CompressionLevel.
func ParseCompressionLevel(s string) (CompressionLevel, error) {
	switch s {
	case "best", "":
		return BestCompression, nil
	case "default":
		return DefaultCompression, nil
	case "speed":
		return BestSpeed, nil
	case "none":
		return NoCompression, nil
	default:
		return 0, fmt.Errorf("unknown compression level: %q", s)
	}
}

// EncoderOptions controls PNG encoding.
type EncoderOptions struct {
	CompressionLevel CompressionLevel
}

// Encode writes img as a minimal PNG: IHDR, a single IDAT and IEND, with
// every scanline stored unfiltered, at maximum compression.
func Encode(img *ir.Image) ([]byte, error) {
	return EncodeWithOptions(img, EncoderOptions{})
}

// EncodeWithOptions is Encode with explicit options.
func EncodeWithOptions(img *ir.Image, opts EncoderOptions) ([]byte, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	level, err := opts.CompressionLevel.zlibLevel()
	if err != nil {
		return nil, err
	}

	stride := img.Stride()
	raw := make([]byte, img.Height*(stride+1))
	for y := 0; y < img.Height; y++ {
		off := y * (stride + 1)
		raw[off] = byte(FilterNone)
		copy(raw[off+1:off+1+stride], img.Row(y))
	}

	idat, err := zlibx.Deflate(raw, level)
	if err != nil {
		return nil, err
	}

	ihdr := make([]byte, ihdrLength)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(img.Width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(img.Height))
	ihdr[8] = 8
	ihdr[9] = ctTrueColorAlpha
	ihdr[10] = 0 // compression method
	ihdr[11] = 0 // filter method
	ihdr[12] = 0 // interlace method

	out := make([]byte, 0, len(pngHeader)+3*chunkOverhead+ihdrLength+len(idat))
	out = append(out, pngHeader...)
	out = appendChunk(out, typeIHDR, ihdr)
	out = appendChunk(out, typeIDAT, idat)
	out = appendChunk(out, typeIEND, nil)
	return out, nil
}
