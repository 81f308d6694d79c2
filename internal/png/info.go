package png

import "fmt"

// ColorTypeName returns a string for a PNG IHDR color type.
func ColorTypeName(ct uint8) string {
	switch ct {
	case ctGrayscale:
		return "Grayscale"
	case ctTrueColor:
		return "RGB"
	case ctPaletted:
		return "Palette"
	case ctGrayscaleAlpha:
		return "GrayscaleAlpha"
	case ctTrueColorAlpha:
		return "RGBA"
	default:
		return fmt.Sprintf("ColorType(%d)", ct)
	}
}

// ImageInfo contains metadata about a PNG file.
type ImageInfo struct {
	Width     int
	Height    int
	BitDepth  int
	ColorType string
	Interlace bool
	Chunks    []string // chunk types in file order
	IDATCount int
	IDATBytes int
	// Unsupported is nil when Decode can handle the file.
	Unsupported error
}

// GetInfo reads PNG chunk metadata without inflating the image data.
func GetInfo(data []byte) (*ImageInfo, error) {
	r, err := newChunkReader(data, true)
	if err != nil {
		return nil, err
	}

	info := &ImageInfo{}
	var hdr *header
	for {
		c, ok, err := r.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		info.Chunks = append(info.Chunks, c.typ)

		switch c.typ {
		case typeIHDR:
			h, err := parseIHDR(c.data)
			if err != nil {
				return nil, err
			}
			hdr = &h
		case typeIDAT:
			info.IDATCount++
			info.IDATBytes += len(c.data)
		}
	}

	if hdr == nil {
		return nil, FormatError("missing IHDR chunk")
	}
	info.Width = int(hdr.Width)
	info.Height = int(hdr.Height)
	info.BitDepth = int(hdr.BitDepth)
	info.ColorType = ColorTypeName(hdr.ColorType)
	info.Interlace = hdr.Interlace != 0
	info.Unsupported = hdr.checkSupported()
	return info, nil
}
