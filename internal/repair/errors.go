package repair

import (
	"errors"
	"fmt"
)

var (
	// ErrTooSmall indicates the input is shorter than any accepted image shape.
	ErrTooSmall = errors.New("repair: image too small")
	// ErrTooBig indicates the input exceeds a full image plus footer leeway.
	ErrTooBig = errors.New("repair: image too big")
	// ErrMissingCriticalBlocks indicates a critical block has no usable copy.
	ErrMissingCriticalBlocks = errors.New("repair: missing critical blocks")
)

// FixError is returned when no output image could be produced.
type FixError struct {
	Result  Result   // exactly one fatal flag
	Size    int      // input length
	Missing []uint16 // critical block IDs without a copy, if any
	Cause   error    // one of the sentinel errors above
}

// Error implements the error interface.
func (e *FixError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("fix failed (%s) for %d-byte image: blocks %v: %v", e.Result, e.Size, e.Missing, e.Cause)
	}
	return fmt.Sprintf("fix failed (%s) for %d-byte image: %v", e.Result, e.Size, e.Cause)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *FixError) Unwrap() error {
	return e.Cause
}

func sizeError(res Result, size int) *FixError {
	cause := ErrTooSmall
	if res == TooBig {
		cause = ErrTooBig
	}
	return &FixError{Result: res, Size: size, Cause: cause}
}
