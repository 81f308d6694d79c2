// Package ico builds Windows icon (ICO) containers whose entries are
// PNG-compressed images, and reads back their directory.
package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	headerSize = 6
	entrySize  = 16

	typeIcon = 1

	// MaxSize is the largest edge an ICO entry can describe.
	MaxSize = 256
	// MaxFrames is the largest count the 16-bit header field can hold.
	MaxFrames = 0xffff
)

var (
	ErrNoFrames     = errors.New("ico: no frames to pack")
	ErrInvalidFrame = errors.New("ico: invalid frame")
)

// Header represents the ICO file header.
type Header struct {
	Reserved uint16 // Always 0
	Type     uint16 // 1 for ICO, 2 for CUR
	Count    uint16 // Number of images
}

// DirectoryEntry represents an entry in the ICO directory.
type DirectoryEntry struct {
	Width        uint8  // Width in pixels (0 means 256)
	Height       uint8  // Height in pixels (0 means 256)
	ColorCount   uint8  // Number of colors in palette (0 means no palette)
	Reserved     uint8  // Always 0
	ColorPlanes  uint16 // Color planes
	BitsPerPixel uint16 // Bits per pixel
	Size         uint32 // Size of image data in bytes
	Offset       uint32 // Offset to image data from beginning of file
}

// GetWidth returns the actual width, handling the special case where 0 means 256.
func (e DirectoryEntry) GetWidth() int {
	if e.Width == 0 {
		return MaxSize
	}
	return int(e.Width)
}

// GetHeight returns the actual height, handling the special case where 0 means 256.
func (e DirectoryEntry) GetHeight() int {
	if e.Height == 0 {
		return MaxSize
	}
	return int(e.Height)
}

// Frame is one square PNG-encoded image to embed.
type Frame struct {
	Size int    // edge length in pixels, 1..256
	PNG  []byte // complete PNG file
}

// sizeByte encodes an edge length for the single-byte width/height fields.
func sizeByte(size int) uint8 {
	if size == MaxSize {
		return 0
	}
	return uint8(size)
}

// Pack lays out frames as an ICO file: header, one directory entry per frame,
// then the PNG payloads, all in the order given. Entries are neither sorted
// nor deduplicated.
func Pack(frames []Frame) ([]byte, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if len(frames) > MaxFrames {
		return nil, fmt.Errorf("ico: %d frames exceeds the limit of %d", len(frames), MaxFrames)
	}

	total := headerSize + entrySize*len(frames)
	for i, f := range frames {
		if f.Size < 1 || f.Size > MaxSize {
			return nil, fmt.Errorf("%w %d: size %d outside 1..%d", ErrInvalidFrame, i, f.Size, MaxSize)
		}
		if len(f.PNG) == 0 {
			return nil, fmt.Errorf("%w %d: empty payload", ErrInvalidFrame, i)
		}
		total += len(f.PNG)
	}
	if uint64(total) > 0xffffffff {
		return nil, fmt.Errorf("ico: %d bytes exceeds the 32-bit offset range", total)
	}

	buf := bytes.NewBuffer(make([]byte, 0, total))
	header := Header{
		Type:  typeIcon,
		Count: uint16(len(frames)),
	}
	if err := binary.Write(buf, binary.LittleEndian, header); err != nil {
		return nil, fmt.Errorf("writing ICO header: %w", err)
	}

	offset := uint32(headerSize + entrySize*len(frames))
	for i, f := range frames {
		entry := DirectoryEntry{
			Width:        sizeByte(f.Size),
			Height:       sizeByte(f.Size),
			ColorPlanes:  0,
			BitsPerPixel: 32,
			Size:         uint32(len(f.PNG)),
			Offset:       offset,
		}
		if err := binary.Write(buf, binary.LittleEndian, entry); err != nil {
			return nil, fmt.Errorf("writing directory entry %d: %w", i, err)
		}
		offset += entry.Size
	}

	for _, f := range frames {
		buf.Write(f.PNG)
	}
	return buf.Bytes(), nil
}
