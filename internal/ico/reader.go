package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Directory is the parsed header and entries of an ICO file.
type Directory struct {
	Header  Header
	Entries []DirectoryEntry
}

// ErrMalformed is wrapped by every ReadDirectory error.
var ErrMalformed = errors.New("ico: malformed file")

// ReadDirectory parses the header and directory of an ICO file and checks
// that every entry's data lies inside the file.
func ReadDirectory(data []byte) (*Directory, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrMalformed, len(data))
	}
	h := Header{
		Reserved: binary.LittleEndian.Uint16(data[0:2]),
		Type:     binary.LittleEndian.Uint16(data[2:4]),
		Count:    binary.LittleEndian.Uint16(data[4:6]),
	}
	switch {
	case h.Reserved != 0:
		return nil, fmt.Errorf("%w: reserved header word is %d", ErrMalformed, h.Reserved)
	case h.Type != typeIcon:
		return nil, fmt.Errorf("%w: resource type %d is not an icon", ErrMalformed, h.Type)
	case h.Count == 0:
		return nil, fmt.Errorf("%w: empty directory", ErrMalformed)
	}

	dirEnd := headerSize + int(h.Count)*entrySize
	if len(data) < dirEnd {
		return nil, fmt.Errorf("%w: directory of %d entries needs %d bytes, have %d",
			ErrMalformed, h.Count, dirEnd, len(data))
	}

	entries := make([]DirectoryEntry, h.Count)
	for i := range entries {
		b := data[headerSize+i*entrySize:]
		e := DirectoryEntry{
			Width:        b[0],
			Height:       b[1],
			ColorCount:   b[2],
			Reserved:     b[3],
			ColorPlanes:  binary.LittleEndian.Uint16(b[4:6]),
			BitsPerPixel: binary.LittleEndian.Uint16(b[6:8]),
			Size:         binary.LittleEndian.Uint32(b[8:12]),
			Offset:       binary.LittleEndian.Uint32(b[12:16]),
		}
		if end := uint64(e.Offset) + uint64(e.Size); uint64(e.Offset) < uint64(dirEnd) || end > uint64(len(data)) {
			return nil, fmt.Errorf("%w: entry %d data [%d, %d) outside %d..%d",
				ErrMalformed, i, e.Offset, end, dirEnd, len(data))
		}
		entries[i] = e
	}

	return &Directory{Header: h, Entries: entries}, nil
}

// Payload returns the embedded image bytes of entry i.
func (d *Directory) Payload(data []byte, i int) []byte {
	e := d.Entries[i]
	return data[e.Offset : e.Offset+e.Size]
}

// IsPNG reports whether entry i holds a PNG stream rather than a bare BMP.
func (d *Directory) IsPNG(data []byte, i int) bool {
	return bytes.HasPrefix(d.Payload(data, i), pngSignature)
}
