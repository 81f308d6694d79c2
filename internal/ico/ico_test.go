package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func fakePNG(n int, fill byte) []byte {
	b := append([]byte(nil), pngSignature...)
	return append(b, bytes.Repeat([]byte{fill}, n)...)
}

func TestPackLayout16And256(t *testing.T) {
	p16 := fakePNG(40, 0x16)
	p256 := fakePNG(100, 0x25)

	data, err := Pack([]Frame{{Size: 16, PNG: p16}, {Size: 256, PNG: p256}})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	wantLen := 6 + 16*2 + len(p16) + len(p256)
	if len(data) != wantLen {
		t.Fatalf("len = %d, want %d", len(data), wantLen)
	}

	// Header
	if got := binary.LittleEndian.Uint16(data[0:2]); got != 0 {
		t.Errorf("reserved = %d", got)
	}
	if got := binary.LittleEndian.Uint16(data[2:4]); got != 1 {
		t.Errorf("type = %d", got)
	}
	if got := binary.LittleEndian.Uint16(data[4:6]); got != 2 {
		t.Errorf("count = %d", got)
	}

	// First entry
	e0 := data[6:22]
	if e0[0] != 16 || e0[1] != 16 {
		t.Errorf("entry 0 width/height = %d/%d", e0[0], e0[1])
	}
	if e0[2] != 0 || e0[3] != 0 {
		t.Errorf("entry 0 color count/reserved = %d/%d", e0[2], e0[3])
	}
	if got := binary.LittleEndian.Uint16(e0[4:6]); got != 0 {
		t.Errorf("entry 0 planes = %d", got)
	}
	if got := binary.LittleEndian.Uint16(e0[6:8]); got != 32 {
		t.Errorf("entry 0 bpp = %d", got)
	}
	if got := binary.LittleEndian.Uint32(e0[8:12]); got != uint32(len(p16)) {
		t.Errorf("entry 0 size = %d", got)
	}
	if got := binary.LittleEndian.Uint32(e0[12:16]); got != 6+16*2 {
		t.Errorf("entry 0 offset = %d, want %d", got, 6+16*2)
	}

	// Second entry: 256 is stored as 0
	e1 := data[22:38]
	if e1[0] != 0 || e1[1] != 0 {
		t.Errorf("entry 1 width/height = %d/%d, want 0/0", e1[0], e1[1])
	}
	if got := binary.LittleEndian.Uint32(e1[8:12]); got != uint32(len(p256)) {
		t.Errorf("entry 1 size = %d", got)
	}
	if got, want := binary.LittleEndian.Uint32(e1[12:16]), uint32(6+16*2+len(p16)); got != want {
		t.Errorf("entry 1 offset = %d, want %d", got, want)
	}

	// Payloads follow in order
	if !bytes.Equal(data[38:38+len(p16)], p16) || !bytes.Equal(data[38+len(p16):], p256) {
		t.Error("payloads not stored in input order")
	}
}

func TestPackKeepsOrderAndDuplicates(t *testing.T) {
	frames := []Frame{
		{Size: 48, PNG: fakePNG(3, 1)},
		{Size: 16, PNG: fakePNG(5, 2)},
		{Size: 48, PNG: fakePNG(7, 3)},
	}
	data, err := Pack(frames)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	dir, err := ReadDirectory(data)
	if err != nil {
		t.Fatalf("ReadDirectory: %v", err)
	}
	if len(dir.Entries) != 3 {
		t.Fatalf("entries = %d", len(dir.Entries))
	}
	for i, f := range frames {
		e := dir.Entries[i]
		if e.GetWidth() != f.Size || e.GetHeight() != f.Size {
			t.Errorf("entry %d: %dx%d, want %d", i, e.GetWidth(), e.GetHeight(), f.Size)
		}
		if !bytes.Equal(dir.Payload(data, i), f.PNG) {
			t.Errorf("entry %d: payload mismatch", i)
		}
		if !dir.IsPNG(data, i) {
			t.Errorf("entry %d: not detected as PNG", i)
		}
	}
}

func TestPackRejects(t *testing.T) {
	if _, err := Pack(nil); !errors.Is(err, ErrNoFrames) {
		t.Errorf("Pack(nil): expected ErrNoFrames, got %v", err)
	}
	for _, f := range []Frame{
		{Size: 0, PNG: fakePNG(1, 0)},
		{Size: 257, PNG: fakePNG(1, 0)},
		{Size: 32, PNG: nil},
	} {
		if _, err := Pack([]Frame{f}); !errors.Is(err, ErrInvalidFrame) {
			t.Errorf("Pack(size=%d, %d bytes): expected ErrInvalidFrame, got %v", f.Size, len(f.PNG), err)
		}
	}
}

func TestReadDirectoryErrors(t *testing.T) {
	good, err := Pack([]Frame{{Size: 1, PNG: fakePNG(4, 9)}})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	cases := map[string][]byte{
		"short":     good[:4],
		"reserved":  append([]byte{1, 0}, good[2:]...),
		"cursor":    append([]byte{0, 0, 2, 0}, good[4:]...),
		"no images": {0, 0, 1, 0, 0, 0},
		"truncated": good[:len(good)-1],
		"short dir": good[:headerSize+entrySize-1],
	}
	// An offset pointing back into the directory.
	overlap := append([]byte(nil), good...)
	binary.LittleEndian.PutUint32(overlap[headerSize+12:], 0)
	cases["overlap"] = overlap

	for name, data := range cases {
		if _, err := ReadDirectory(data); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
}

func TestDirectoryEntrySizes(t *testing.T) {
	e := DirectoryEntry{Width: 0, Height: 48}
	if e.GetWidth() != 256 || e.GetHeight() != 48 {
		t.Errorf("got %dx%d", e.GetWidth(), e.GetHeight())
	}
}
