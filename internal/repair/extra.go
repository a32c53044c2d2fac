package repair

import (
	"log/slog"

	"github.com/projectpokemon/recoversave/internal/format"
)

// ExtraSector is the verdict on one supplemental sector.
type ExtraSector struct {
	Position int    `json:"position"`
	Accepted bool   `json:"accepted"`
	Blank    bool   `json:"blank"`
	Stored   uint16 `json:"stored_checksum"`
	Computed uint16 `json:"computed_checksum"`
}

// ExtraResult summarizes RetrieveExtra.
type ExtraResult struct {
	Sectors  [format.ExtraSectorCount]ExtraSector `json:"sectors"`
	Accepted int                                  `json:"accepted"`
}

// RetrieveExtra validates the supplemental sectors of src and copies the
// acceptable ones verbatim to the same positions in dst. A sector made of
// only 0x00/0xFF bytes is accepted without a checksum check. The returned
// flag is MissingExtraBlocks when any sector was dropped, None otherwise.
func RetrieveExtra(src, dst []byte, log *slog.Logger) (ExtraResult, Result) {
	if log == nil {
		log = discard
	}

	var er ExtraResult
	for i := range er.Sectors {
		pos := format.ExtraFirstSector + i
		v := &er.Sectors[i]
		v.Position = pos

		s, err := format.SectorAt(src, pos)
		if err != nil {
			continue
		}
		out, err := format.SectorAt(dst, pos)
		if err != nil {
			continue
		}

		v.Blank = s.IsBlank()
		if !v.Blank {
			v.Stored = s.ExtraChecksum()
			v.Computed = s.ComputeChecksum()
			if v.Stored != v.Computed {
				log.Debug("dropping supplemental sector", "sector", pos,
					"stored", v.Stored, "computed", v.Computed)
				continue
			}
		}

		v.Accepted = true
		er.Accepted++
		copy(out.Raw(), s.Raw())
	}

	if er.Accepted == format.ExtraSectorCount {
		return er, None
	}
	return er, MissingExtraBlocks
}
