package png

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

const pngHeader = "\x89PNG\r\n\x1a\n"

// Chunk types this package reads or writes.
const (
	typeIHDR = "IHDR"
	typeIDAT = "IDAT"
	typeIEND = "IEND"
)

// chunkOverhead is length + type + CRC around each chunk's data.
const chunkOverhead = 12

// maxChunkLength is the largest length the PNG format allows (2^31-1).
const maxChunkLength = 0x7fffffff

type chunk struct {
	typ  string
	data []byte // aliases the input buffer
}

// chunkReader walks the chunks of an in-memory PNG one at a time.
type chunkReader struct {
	data      []byte
	off       int
	verifyCRC bool
	done      bool
}

func newChunkReader(data []byte, verifyCRC bool) (*chunkReader, error) {
	if len(data) < len(pngHeader) || string(data[:len(pngHeader)]) != pngHeader {
		return nil, FormatError("not a PNG file")
	}
	return &chunkReader{data: data, off: len(pngHeader), verifyCRC: verifyCRC}, nil
}

// next returns the following chunk. ok is false once the buffer is exhausted
// or after IEND has been returned.
func (r *chunkReader) next() (c chunk, ok bool, err error) {
	if r.done || r.off >= len(r.data) {
		return chunk{}, false, nil
	}

	rest := r.data[r.off:]
	if len(rest) < chunkOverhead {
		return chunk{}, false, FormatError(fmt.Sprintf("truncated chunk header at offset %d", r.off))
	}

	length := binary.BigEndian.Uint32(rest[:4])
	if length > maxChunkLength {
		return chunk{}, false, FormatError(fmt.Sprintf("bad chunk length: %d", length))
	}
	end := 8 + int(length)
	if end+4 > len(rest) {
		return chunk{}, false, FormatError(fmt.Sprintf("truncated %q chunk at offset %d", rest[4:8], r.off))
	}

	c = chunk{typ: string(rest[4:8]), data: rest[8:end]}
	if r.verifyCRC {
		want := binary.BigEndian.Uint32(rest[end : end+4])
		if got := crc32.ChecksumIEEE(rest[4:end]); got != want {
			return chunk{}, false, FormatError(fmt.Sprintf("invalid checksum in %q chunk", c.typ))
		}
	}

	r.off += chunkOverhead + int(length)
	if c.typ == typeIEND {
		r.done = true
	}
	return c, true, nil
}

// appendChunk frames data as a chunk of the given type: big-endian length,
// type, data, big-endian CRC-32 of type+data.
func appendChunk(dst []byte, typ string, data []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(data)))
	start := len(dst)
	dst = append(dst, typ...)
	dst = append(dst, data...)
	return binary.BigEndian.AppendUint32(dst, crc32.ChecksumIEEE(dst[start:]))
}
