package reader

import "errors"

// ErrMalformedInput is the sentinel wrapped (via %w) around every
// parse failure in this package: truncated lines, non-integer tokens,
// or node ids outside [0, n).
var ErrMalformedInput = errors.New("reader: malformed input")
