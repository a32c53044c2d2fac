package save

import (
	"github.com/projectpokemon/recoversave/internal/format"
	"github.com/projectpokemon/recoversave/internal/repair"
	"github.com/projectpokemon/recoversave/pkg/types"
)

// Image geometry, re-exported for callers sizing buffers.
const (
	FullSize     = format.FullSize
	HalfSize     = format.HalfSize
	FooterLeeway = format.FooterLeeway
)

// Fix reconstructs data and returns a new FullSize image. data is neither
// modified nor retained. On failure the image is nil and the result holds
// exactly one of TooSmall, TooBig or MissingCriticalBlocks.
func Fix(data []byte, opts *Options) ([]byte, types.Result, error) {
	return repair.NewEngine(repair.Config{Logger: opts.logger()}).Fix(data)
}

// Inspect reports what Fix would find and do for data.
func Inspect(data []byte, opts *Options) *types.DiagnosticReport {
	return repair.NewEngine(repair.Config{Logger: opts.logger()}).Diagnose(data)
}

// IsSizeWorthLookingAt reports whether a file of size bytes could be an image.
func IsSizeWorthLookingAt(size int64) bool {
	return format.IsSizeWorthLookingAt(size)
}
