package repair

import (
	"log/slog"

	"github.com/projectpokemon/recoversave/internal/format"
)

// SectorInfo records how one sector position was classified by a scan.
type SectorInfo struct {
	Position int        `json:"position"`
	Kind     SectorKind `json:"kind"`
	BlockID  uint16     `json:"block_id"`
	Magic    uint32     `json:"signature"`
	Counter  uint16     `json:"counter"`
	Stored   uint16     `json:"stored_checksum"`
	Computed uint16     `json:"computed_checksum"`
}

// Candidate is the sector currently chosen for a logical block.
type Candidate struct {
	State    BlockState
	Position int // -1 when State is StateMissing
	Counter  uint16
	Checksum uint16 // computed over the payload
	Sector   format.Sector
}

// ScanResult holds the per-block selections of a full image scan.
type ScanResult struct {
	Blocks     [format.BlockCount]Candidate
	Sectors    [format.SectorCount]SectorInfo
	MaxCounter uint16
}

// Missing returns the block IDs without any candidate, ascending.
func (sr *ScanResult) Missing() []uint16 {
	var ids []uint16
	for id := range sr.Blocks {
		if sr.Blocks[id].State == StateMissing {
			ids = append(ids, uint16(id))
		}
	}
	return ids
}

// Scan walks every sector of a FullSize image and picks the best copy of
// each logical block. image is only read.
func Scan(image []byte, log *slog.Logger) *ScanResult {
	if log == nil {
		log = discard
	}
	sr := &ScanResult{}
	for id := range sr.Blocks {
		sr.Blocks[id].Position = -1
	}

	for pos := 0; pos < format.SectorCount; pos++ {
		s, err := format.SectorAt(image, pos)
		if err != nil {
			// Callers normalize to FullSize; a short image just has fewer sectors.
			break
		}
		info := classify(pos, s)
		sr.Sectors[pos] = info
		if info.Kind != KindBadChecksum && info.Kind != KindValid {
			continue
		}

		current := StateBadChecksum
		if info.Kind == KindValid {
			current = StateValid
		}
		sel := &sr.Blocks[info.BlockID]
		if sel.State != StateMissing && !pickBlock(sel.Counter, info.Counter, sel.State, current) {
			continue
		}
		if sel.State != StateMissing {
			log.Debug("replacing block selection",
				"block", info.BlockID,
				"from_sector", sel.Position, "from_state", sel.State, "from_counter", sel.Counter,
				"to_sector", pos, "to_state", current, "to_counter", info.Counter)
		}
		*sel = Candidate{
			State:    current,
			Position: pos,
			Counter:  info.Counter,
			Checksum: info.Computed,
			Sector:   s,
		}
	}

	for id := range sr.Blocks {
		if sr.Blocks[id].Counter > sr.MaxCounter {
			sr.MaxCounter = sr.Blocks[id].Counter
		}
	}
	return sr
}

func classify(pos int, s format.Sector) SectorInfo {
	info := SectorInfo{Position: pos, BlockID: s.BlockID(), Magic: s.Signature()}
	if info.BlockID >= format.BlockCount {
		info.Kind = KindNotBlock
		return info
	}
	if !s.HasSignature() {
		info.Kind = KindForeignSignature
		return info
	}
	info.Counter = s.Counter()
	info.Stored = s.Checksum()
	info.Computed = s.ComputeChecksum()
	if info.Stored == info.Computed {
		info.Kind = KindValid
	} else {
		info.Kind = KindBadChecksum
	}
	return info
}

// pickBlock reports whether a newly scanned candidate should replace the
// current selection. Validity dominates recency; otherwise the newer
// counter wins and ties keep the earlier sector.
func pickBlock(ctrPrev, ctrCurrent uint16, prev, current BlockState) bool {
	if (current == StateValid) != (prev == StateValid) {
		return current == StateValid
	}
	return format.CompareCounters(uint32(ctrPrev), uint32(ctrCurrent)) == format.CounterSecond
}
