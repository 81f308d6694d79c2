// Package targets describes which icon files to generate and at what size.
package targets

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Target is one square PNG to write, relative to the project root.
type Target struct {
	Path string
	Size int
}

// ICO is the multi-resolution Windows icon to write.
type ICO struct {
	Path  string
	Sizes []int
}

// Set is the full list of outputs for one source image.
type Set struct {
	PNG []Target
	ICO ICO
}

// Validate checks paths and sizes.
func (s Set) Validate() error {
	if len(s.PNG) == 0 && len(s.ICO.Sizes) == 0 {
		return errors.New("target set is empty")
	}
	for i, t := range s.PNG {
		if t.Path == "" {
			return fmt.Errorf("png target %d: empty path", i)
		}
		if t.Size < 1 || t.Size > MaxSize {
			return fmt.Errorf("png target %s: size %d outside 1..%d", t.Path, t.Size, MaxSize)
		}
	}
	if len(s.ICO.Sizes) > 0 && s.ICO.Path == "" {
		return errors.New("ico: sizes given without a path")
	}
	if s.ICO.Path != "" && len(s.ICO.Sizes) == 0 {
		return fmt.Errorf("ico %s: no sizes", s.ICO.Path)
	}
	for _, size := range s.ICO.Sizes {
		if size < 1 || size > 256 {
			return fmt.Errorf("ico %s: size %d outside 1..256", s.ICO.Path, size)
		}
	}
	return nil
}

// file is the YAML layout:
//
//	png:
//	  - path: web/favicon.png
//	    size: 64
//	  - path: ios/.../Icon-App-83.5x83.5@2x.png
//	    size: 83.5*2
//	ico:
//	  path: windows/runner/resources/app_icon.ico
//	  sizes: [16, 32, 48, 64, 128, 256]
type file struct {
	PNG []struct {
		Path string   `yaml:"path"`
		Size SizeExpr `yaml:"size"`
	} `yaml:"png"`
	ICO struct {
		Path  string     `yaml:"path"`
		Sizes []SizeExpr `yaml:"sizes"`
	} `yaml:"ico"`
}

// Parse decodes a YAML target definition and validates it.
func Parse(data []byte) (Set, error) {
	var f file
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
			return Set{}, fmt.Errorf("parsing targets: %s", typeErr.Errors[0])
		}
		return Set{}, fmt.Errorf("parsing targets: %w", err)
	}

	var s Set
	for _, t := range f.PNG {
		size, err := t.Size.Eval()
		if err != nil {
			return Set{}, fmt.Errorf("png target %s: %w", t.Path, err)
		}
		s.PNG = append(s.PNG, Target{Path: t.Path, Size: size})
	}
	s.ICO.Path = f.ICO.Path
	for _, expr := range f.ICO.Sizes {
		size, err := expr.Eval()
		if err != nil {
			return Set{}, fmt.Errorf("ico %s: %w", f.ICO.Path, err)
		}
		s.ICO.Sizes = append(s.ICO.Sizes, size)
	}

	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// Load reads a target definition file. An empty path selects Default().
func Load(path string) (Set, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("reading targets file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
