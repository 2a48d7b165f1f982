package caption

import "errors"

// ErrMalformed reports input that does not form a valid caption file.
var ErrMalformed = errors.New("malformed caption file")

// ErrUnsupportedFormat reports a file format the toolkit cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported caption format")
