package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrSectorPosition indicates a sector index outside 0..SectorCount-1.
	ErrSectorPosition = errors.New("format: sector position out of range")
)
