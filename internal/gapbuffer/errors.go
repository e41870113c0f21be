package gapbuffer

import "errors"

// Errors for buffer operations. Buffer methods themselves return no error;
// ErrOffsetOutOfRange is returned by callers that bounds-check positions
// before editing, such as core.Core.
var (
	// ErrOffsetOutOfRange indicates an offset is outside the valid buffer range.
	ErrOffsetOutOfRange = errors.New("gapbuffer: offset out of range")

	// ErrAllocationFailure is retained for the error taxonomy the buffer
	// contract documents, but Go's runtime aborts on genuine out-of-memory
	// conditions rather than surfacing them as recoverable errors, so no
	// buffer method in this package ever returns it.
	ErrAllocationFailure = errors.New("gapbuffer: allocation failure")
)
