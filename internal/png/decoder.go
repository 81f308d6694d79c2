// Package png implements a small PNG codec restricted to 8-bit RGBA,
// non-interlaced images: enough to read an application logo, resize it and
// write the results back out.
package png

import (
	"encoding/binary"
	"fmt"

	"github.com/MD5Visual/QTask/internal/ir"
	"github.com/MD5Visual/QTask/internal/zlibx"
)

// Color type, as per the PNG spec.
const (
	ctGrayscale      = 0
	ctTrueColor      = 2
	ctPaletted       = 3
	ctGrayscaleAlpha = 4
	ctTrueColorAlpha = 6
)

const ihdrLength = 13

// maxPixels caps width*height so the decoded buffer stays addressable.
const maxPixels = 1 << 28

// header holds the IHDR fields.
type header struct {
	Width       uint32
	Height      uint32
	BitDepth    uint8
	ColorType   uint8
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

func parseIHDR(data []byte) (header, error) {
	if len(data) != ihdrLength {
		return header{}, FormatError(fmt.Sprintf("bad IHDR length: %d", len(data)))
	}
	h := header{
		Width:       binary.BigEndian.Uint32(data[0:4]),
		Height:      binary.BigEndian.Uint32(data[4:8]),
		BitDepth:    data[8],
		ColorType:   data[9],
		Compression: data[10],
		Filter:      data[11],
		Interlace:   data[12],
	}
	if h.Width == 0 || h.Height == 0 || h.Width > maxChunkLength || h.Height > maxChunkLength {
		return header{}, FormatError(fmt.Sprintf("invalid dimensions %dx%d", h.Width, h.Height))
	}
	return h, nil
}

// checkSupported rejects anything but 8-bit truecolor+alpha, non-interlaced.
func (h header) checkSupported() error {
	if h.BitDepth != 8 {
		return UnsupportedError(fmt.Sprintf("bit depth %d", h.BitDepth))
	}
	if h.ColorType != ctTrueColorAlpha {
		return UnsupportedError(fmt.Sprintf("color type %d (%s)", h.ColorType, ColorTypeName(h.ColorType)))
	}
	if h.Interlace != 0 {
		return UnsupportedError(fmt.Sprintf("interlace method %d", h.Interlace))
	}
	if uint64(h.Width)*uint64(h.Height) > maxPixels {
		return UnsupportedError(fmt.Sprintf("image too large: %dx%d", h.Width, h.Height))
	}
	return nil
}

// DecodeOptions controls decoding.
type DecodeOptions struct {
	// SkipCRC disables per-chunk CRC-32 verification.
	SkipCRC bool
}

// Decode decodes an 8-bit RGBA, non-interlaced PNG held in memory.
//
// Errors are a FormatError for a malformed container, an UnsupportedError
// for a PNG outside that profile, or a *zlibx.DecompressionError when the
// image data cannot be inflated.
func Decode(data []byte) (*ir.Image, error) {
	return DecodeWithOptions(data, DecodeOptions{})
}

// DecodeWithOptions is Decode with explicit options.
func DecodeWithOptions(data []byte, opts DecodeOptions) (*ir.Image, error) {
	hdr, idat, err := readStream(data, !opts.SkipCRC)
	if err != nil {
		return nil, err
	}
	if err := hdr.checkSupported(); err != nil {
		return nil, err
	}

	// Inflate only what the scanlines need; reconstruct ignores the rest.
	width, height := int(hdr.Width), int(hdr.Height)
	need := int64(height) * int64(width*ir.BytesPerPixel+1)
	raw, err := zlibx.InflateLimit(idat, need)
	if err != nil {
		return nil, err
	}

	pixels, err := reconstruct(raw, width, height)
	if err != nil {
		return nil, err
	}
	return ir.New(width, height, pixels)
}

// readStream walks every chunk, returning the IHDR and the IDAT payloads
// concatenated in file order. Other chunk types are skipped.
func readStream(data []byte, verifyCRC bool) (header, []byte, error) {
	r, err := newChunkReader(data, verifyCRC)
	if err != nil {
		return header{}, nil, err
	}

	var (
		hdr     header
		seenHdr bool
		idat    []byte
	)
	for {
		c, ok, err := r.next()
		if err != nil {
			return header{}, nil, err
		}
		if !ok {
			break
		}

		switch c.typ {
		case typeIHDR:
			if seenHdr {
				return header{}, nil, FormatError("duplicate IHDR chunk")
			}
			if hdr, err = parseIHDR(c.data); err != nil {
				return header{}, nil, err
			}
			seenHdr = true
		case typeIDAT:
			idat = append(idat, c.data...)
		}
	}

	if !seenHdr {
		return header{}, nil, FormatError("missing IHDR chunk")
	}
	return hdr, idat, nil
}
