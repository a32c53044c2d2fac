package repair

import (
	"log/slog"

	"github.com/projectpokemon/recoversave/internal/format"
)

// Rebuild writes the selected blocks of sr into a fresh FullSize image.
// Lost non-critical blocks become blank placeholders, every block is
// resealed at sr.MaxCounter and copied to both mirror positions.
// The supplemental region of the returned image is left zeroed.
func Rebuild(sr *ScanResult, log *slog.Logger) ([]byte, Result, error) {
	if log == nil {
		log = discard
	}

	res := Recovered
	var lostCritical []uint16
	for _, id := range sr.Missing() {
		if format.IsCritical(id) {
			lostCritical = append(lostCritical, id)
		}
	}
	if len(lostCritical) > 0 {
		log.Warn("critical blocks missing", "blocks", lostCritical)
		return nil, MissingCriticalBlocks, &FixError{
			Result:  MissingCriticalBlocks,
			Size:    format.FullSize,
			Missing: lostCritical,
			Cause:   ErrMissingCriticalBlocks,
		}
	}

	out := make([]byte, format.FullSize)
	for id := uint16(0); id < format.BlockCount; id++ {
		primary, secondary := format.MirrorPositions(id)
		dst, err := format.SectorAt(out, primary)
		if err != nil {
			return nil, None, err
		}

		sel := sr.Blocks[id]
		if sel.State == StateMissing {
			// dst is freshly allocated, so the payload is already zero.
			dst.SetBlockID(id)
			res |= MissingBoxBlocks
			log.Debug("synthesized blank block", "block", id)
		} else {
			copy(dst.Raw(), sel.Sector.Raw())
		}
		dst.Seal(sr.MaxCounter)

		mirror, err := format.SectorAt(out, secondary)
		if err != nil {
			return nil, None, err
		}
		copy(mirror.Raw(), dst.Raw())
	}
	return out, res, nil
}
