package types

import "github.com/projectpokemon/recoversave/internal/repair"

// Result is the status flag set of a fix.
// Re-exported from internal/repair for public API
type Result = repair.Result

const (
	None                  = repair.None
	TooSmall              = repair.TooSmall              // input shorter than any accepted shape
	TooBig                = repair.TooBig                // input longer than a full image plus footer
	MissingCriticalBlocks = repair.MissingCriticalBlocks // one of blocks 0..3 has no usable copy
	MissingBoxBlocks      = repair.MissingBoxBlocks      // blocks synthesized blank
	MissingExtraBlocks    = repair.MissingExtraBlocks    // supplemental sectors dropped
	Inflated              = repair.Inflated              // input was a half image
	Recovered             = repair.Recovered             // a complete image was produced
)

// FixError is returned when no image could be produced.
// Re-exported from internal/repair for public API
type FixError = repair.FixError

var (
	ErrTooSmall              = repair.ErrTooSmall
	ErrTooBig                = repair.ErrTooBig
	ErrMissingCriticalBlocks = repair.ErrMissingCriticalBlocks
)
