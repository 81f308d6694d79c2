package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MD5Visual/QTask/internal/ico"
	"github.com/MD5Visual/QTask/internal/ir"
	"github.com/MD5Visual/QTask/internal/png"
	"github.com/MD5Visual/QTask/internal/resample"
	"github.com/MD5Visual/QTask/internal/targets"
)

// ErrPartialFailure is returned by Run when some outputs could not be
// produced. The Result still lists every output that was written.
var ErrPartialFailure = errors.New("some outputs failed")

// Options controls the full decode → resize → encode → write pipeline.
type Options struct {
	Workers     int                  // concurrent resize+encode jobs, default runtime.NumCPU()
	Compression png.CompressionLevel // PNG deflate level, default best
	SkipCRC     bool                 // accept source PNGs with bad chunk checksums
}

// Output is one file written by Run.
type Output struct {
	Path  string
	Size  int // edge length; 0 for the ICO
	Bytes int
}

// Failure is one output Run could not produce.
type Failure struct {
	Path string
	Size int
	Err  error
}

// Result holds the output of a pipeline run.
type Result struct {
	SrcWidth  int
	SrcHeight int
	Written   []Output
	Failures  []Failure
}

// Run decodes source once and writes every target in set below root.
// Targets are independent: a failing size is recorded in Result.Failures and
// the remaining targets are still written.
func Run(source []byte, root string, set targets.Set, opts Options) (*Result, error) {
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("targets: %w", err)
	}

	// 1. Decode the source PNG
	img, err := png.DecodeWithOptions(source, png.DecodeOptions{SkipCRC: opts.SkipCRC})
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	res := &Result{SrcWidth: img.Width, SrcHeight: img.Height}

	// 2. Resize and encode each distinct size once
	var sizes []int
	for _, t := range set.PNG {
		sizes = append(sizes, t.Size)
	}
	sizes = append(sizes, set.ICO.Sizes...)
	rendered := renderAll(img, sizes, opts)

	// 3. Write the PNG targets
	for _, t := range set.PNG {
		path := filepath.Join(root, filepath.FromSlash(t.Path))
		r := rendered[t.Size]
		if r.err != nil {
			res.Failures = append(res.Failures, Failure{Path: path, Size: t.Size, Err: r.err})
			continue
		}
		if err := WriteFile(path, r.data); err != nil {
			res.Failures = append(res.Failures, Failure{Path: path, Size: t.Size, Err: err})
			continue
		}
		res.Written = append(res.Written, Output{Path: path, Size: t.Size, Bytes: len(r.data)})
	}

	// 4. Assemble and write the ICO
	if set.ICO.Path != "" {
		path := filepath.Join(root, filepath.FromSlash(set.ICO.Path))
		data, err := packICO(rendered, set.ICO.Sizes)
		if err == nil {
			err = WriteFile(path, data)
		}
		if err != nil {
			res.Failures = append(res.Failures, Failure{Path: path, Err: err})
		} else {
			res.Written = append(res.Written, Output{Path: path, Bytes: len(data)})
		}
	}

	if n := len(res.Failures); n > 0 {
		return res, fmt.Errorf("%w: %d of %d", ErrPartialFailure, n, n+len(res.Written))
	}
	return res, nil
}

// RenderPNG resizes img to a size x size square and encodes it.
// Sizes above targets.MaxSize are rejected before anything is allocated.
func RenderPNG(img *ir.Image, size int, level png.CompressionLevel) ([]byte, error) {
	if size > targets.MaxSize {
		return nil, fmt.Errorf("resize to %d: %w (limit %d)", size, resample.ErrInvalidSize, targets.MaxSize)
	}
	resized, err := resample.Nearest(img, size)
	if err != nil {
		return nil, fmt.Errorf("resize to %d: %w", size, err)
	}
	data, err := png.EncodeWithOptions(resized, png.EncoderOptions{CompressionLevel: level})
	if err != nil {
		return nil, fmt.Errorf("encode %dx%d: %w", size, size, err)
	}
	return data, nil
}

// BuildICO renders img at each size and packs the results, in order, into
// one ICO file.
func BuildICO(img *ir.Image, sizes []int, level png.CompressionLevel) ([]byte, error) {
	rendered := renderAll(img, sizes, Options{Workers: 1, Compression: level})
	return packICO(rendered, sizes)
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func packICO(rendered map[int]rendition, sizes []int) ([]byte, error) {
	frames := make([]ico.Frame, 0, len(sizes))
	for _, size := range sizes {
		r := rendered[size]
		if r.err != nil {
			return nil, fmt.Errorf("ico frame %d: %w", size, r.err)
		}
		frames = append(frames, ico.Frame{Size: size, PNG: r.data})
	}
	return ico.Pack(frames)
}
