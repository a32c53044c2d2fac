package repair

import (
	"fmt"

	"github.com/projectpokemon/recoversave/internal/format"
)

func sectorOffset(pos int) uint64 { return uint64(format.SectorOffset(pos)) }

// diagnoseSectors reports per-sector findings. For an inflated half image
// the erased fill past HalfSize is summarized once instead of per sector.
func diagnoseSectors(r *Report, sr *ScanResult, inflated bool) {
	const firstFilled = format.HalfSize / format.SectorSize
	if inflated {
		r.Add(Diagnostic{
			Severity: SevInfo,
			Category: DiagStructure,
			Offset:   sectorOffset(firstFilled),
			Sector:   -1,
			Block:    -1,
			Issue:    "half image: second half is erased fill, blocks come from the first half only",
			Actual:   r.Size,
		})
	}
	for _, info := range sr.Sectors {
		supplemental := info.Position >= format.ExtraFirstSector
		switch info.Kind {
		case KindNotBlock:
			if supplemental {
				continue // judged by diagnoseExtra
			}
			if inflated && info.Position >= firstFilled {
				continue
			}
			r.Add(Diagnostic{
				Severity: SevInfo,
				Category: DiagStructure,
				Offset:   sectorOffset(info.Position),
				Sector:   info.Position,
				Block:    -1,
				Issue:    fmt.Sprintf("sector does not hold a block (ID field %d)", info.BlockID),
				Actual:   info.BlockID,
			})
		case KindForeignSignature:
			if supplemental {
				continue
			}
			r.Add(Diagnostic{
				Severity: SevWarning,
				Category: DiagStructure,
				Offset:   sectorOffset(info.Position) + format.SignatureOffset,
				Sector:   info.Position,
				Block:    int(info.BlockID),
				Issue:    "block sector has a foreign signature and was ignored",
				Expected: format.Signature,
				Actual:   info.Magic,
			})
		case KindBadChecksum:
			repair := &RepairAction{Type: RepairReseal, Description: "reseal footer over the existing payload"}
			if sel := sr.Blocks[info.BlockID]; sel.State == StateValid {
				repair = &RepairAction{
					Type:        RepairReplace,
					Description: fmt.Sprintf("use the valid copy in sector %d", sel.Position),
				}
			}
			r.Add(Diagnostic{
				Severity: SevWarning,
				Category: DiagIntegrity,
				Offset:   sectorOffset(info.Position) + format.ChecksumOffset,
				Sector:   info.Position,
				Block:    int(info.BlockID),
				Issue:    "stored checksum does not match payload",
				Expected: info.Computed,
				Actual:   info.Stored,
				Repair:   repair,
			})
		}
	}
}

func diagnoseBlocks(r *Report, sr *ScanResult) {
	var counters [format.BlockCount][]uint16
	for _, info := range sr.Sectors {
		if info.Kind == KindValid || info.Kind == KindBadChecksum {
			counters[info.BlockID] = append(counters[info.BlockID], info.Counter)
		}
	}

	r.Blocks = make([]BlockSummary, format.BlockCount)
	for i, sel := range sr.Blocks {
		id := uint16(i)
		r.Blocks[i] = BlockSummary{
			ID:       id,
			State:    sel.State,
			Sector:   sel.Position,
			Counter:  sel.Counter,
			Copies:   len(counters[i]),
			Critical: format.IsCritical(id),
		}
		primary, _ := format.MirrorPositions(id)

		switch {
		case sel.State == StateMissing && format.IsCritical(id):
			r.Add(Diagnostic{
				Severity: SevCritical,
				Category: DiagStructure,
				Offset:   sectorOffset(primary),
				Sector:   -1,
				Block:    i,
				Issue:    "critical block has no copy in the image",
				Repair:   &RepairAction{Type: RepairNone, Description: "cannot be reconstructed"},
			})
			continue
		case sel.State == StateMissing:
			r.Add(Diagnostic{
				Severity: SevError,
				Category: DiagStructure,
				Offset:   sectorOffset(primary),
				Sector:   -1,
				Block:    i,
				Issue:    "block has no copy in the image",
				Repair:   &RepairAction{Type: RepairDefault, Description: "synthesize a blank block"},
			})
			continue
		case sel.State == StateBadChecksum:
			r.Add(Diagnostic{
				Severity: SevError,
				Category: DiagIntegrity,
				Offset:   sectorOffset(sel.Position),
				Sector:   sel.Position,
				Block:    i,
				Issue:    "every copy of the block fails its checksum",
				Repair:   &RepairAction{Type: RepairReseal, Description: "keep the newest payload and reseal it"},
			})
		}

		if c := counters[i]; len(c) > 1 && !allEqual(c) {
			r.Add(Diagnostic{
				Severity: SevInfo,
				Category: DiagHistory,
				Offset:   sectorOffset(sel.Position),
				Sector:   sel.Position,
				Block:    i,
				Issue:    "copies of the block disagree on the generation counter",
				Actual:   c,
			})
		}
		if sel.Counter != sr.MaxCounter {
			r.Add(Diagnostic{
				Severity: SevInfo,
				Category: DiagHistory,
				Offset:   sectorOffset(sel.Position) + format.CounterOffset,
				Sector:   sel.Position,
				Block:    i,
				Issue:    "block counter is behind the newest block",
				Expected: sr.MaxCounter,
				Actual:   sel.Counter,
				Repair:   &RepairAction{Type: RepairReseal, Description: "normalize counter"},
			})
		}
	}
}

func diagnoseExtra(r *Report, er *ExtraResult) {
	for _, v := range er.Sectors {
		if v.Accepted {
			continue
		}
		r.Add(Diagnostic{
			Severity: SevWarning,
			Category: DiagIntegrity,
			Offset:   sectorOffset(v.Position) + format.ExtraChecksumOffset,
			Sector:   v.Position,
			Block:    -1,
			Issue:    "supplemental sector checksum does not match payload",
			Expected: v.Computed,
			Actual:   v.Stored,
			Repair:   &RepairAction{Type: RepairRemove, Description: "leave the sector blank in the output"},
		})
	}
}

func allEqual(v []uint16) bool {
	for _, x := range v[1:] {
		if x != v[0] {
			return false
		}
	}
	return true
}
