package qpack

import "github.com/pkg/errors"

// Failure sentinels. Every error returned by this package wraps exactly
// one of these; match with errors.Cause.
var (
	// ErrUnsupportedType means the host value has no wire
	// representation.
	ErrUnsupportedType = errors.New("type not supported")

	// ErrInvalidKey means a map key is not an integer, float, string,
	// or byte slice.
	ErrInvalidKey = errors.New("map key must be a number or string")

	// ErrExcessiveDepth means aggregate nesting exceeded the configured
	// encode or decode limit.
	ErrExcessiveDepth = errors.New("excessive nesting")

	// ErrSparseArray means an aggregate with integer keys was too
	// sparse to encode as an array and sparse conversion is disabled.
	ErrSparseArray = errors.New("excessively sparse array")

	// ErrEmptyInput means Decode was called on input holding no tokens.
	ErrEmptyInput = errors.New("cannot decode empty input")

	// ErrTruncated means a tag declared a payload extending past the
	// end of the buffer.
	ErrTruncated = errors.New("truncated input")

	// ErrUnknownTag means a byte in tag position matches no defined tag.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrMalformedStructure means a terminator or sentinel tag appeared
	// where a value was expected, or an open container was never
	// closed.
	ErrMalformedStructure = errors.New("malformed structure")

	// ErrTrailingBytes means a complete top-level value was followed by
	// additional input.
	ErrTrailingBytes = errors.New("trailing bytes after value")
)
