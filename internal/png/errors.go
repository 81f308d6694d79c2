package png

// A FormatError reports that the input is not a valid PNG container:
// bad signature, truncated chunk, missing IHDR, checksum mismatch or too
// little pixel data.
type FormatError string

func (e FormatError) Error() string { return "png: invalid format: " + string(e) }

// An UnsupportedError reports that the input is a valid PNG that falls
// outside the 8-bit RGBA, non-interlaced profile this package handles.
type UnsupportedError string

func (e UnsupportedError) Error() string { return "png: unsupported feature: " + string(e) }
