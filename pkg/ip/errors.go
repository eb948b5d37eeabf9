package ip

import "errors"

// Error kinds returned by constructors and parsers. Callers discriminate
// with errors.Is; the wrapped message carries the offending input.
var (
	// ErrInvalidAddress marks out-of-range integers, wrong-length byte
	// sequences and malformed address text.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidPrefix marks prefix lengths outside 0..32 or 0..128,
	// family mismatches and EUI-64 derivation on a non-/64 prefix.
	ErrInvalidPrefix = errors.New("invalid prefix")

	// ErrParse marks textual input that doesn't have the expected shape,
	// like a prefix without '/' or a non-contiguous dotted-quad mask.
	ErrParse = errors.New("parse error")
)
