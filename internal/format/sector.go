package format

import (
	"fmt"

	"github.com/projectpokemon/recoversave/internal/buf"
)

// Footer fields must sit inside the sector and after the payload.
var (
	_ [SectorSize - (CounterOffset + 2)]struct{}
	_ [BlockIDOffset - PayloadSize]struct{}
	_ [-(PayloadSize % 4)]struct{} // payload is checksummed in whole words
)

// Sector is a view over one 4 KiB sector of an image.
// Zero-copy: all accessors read and write s.raw directly.
type Sector struct {
	raw []byte // len == SectorSize
}

// NewSector wraps b, which must be exactly SectorSize bytes long.
func NewSector(b []byte) (Sector, error) {
	if len(b) != SectorSize {
		return Sector{}, fmt.Errorf("sector of %d bytes: %w", len(b), ErrTruncated)
	}
	return Sector{raw: b[:SectorSize:SectorSize]}, nil
}

// SectorAt returns a view of sector pos within image.
func SectorAt(image []byte, pos int) (Sector, error) {
	if pos < 0 || pos >= SectorCount {
		return Sector{}, fmt.Errorf("sector %d: %w", pos, ErrSectorPosition)
	}
	b, ok := buf.Slice(image, SectorOffset(pos), SectorSize)
	if !ok {
		return Sector{}, fmt.Errorf("sector %d in %d-byte image: %w", pos, len(image), ErrTruncated)
	}
	return NewSector(b)
}

// SectorOffset returns the absolute byte offset of sector pos.
func SectorOffset(pos int) int { return pos * SectorSize }

// MirrorPositions returns the primary and secondary sector positions of block id.
func MirrorPositions(id uint16) (primary, secondary int) {
	return int(id), int(id) + MirrorDistance
}

// IsCritical reports whether block id cannot be synthesized when lost.
func IsCritical(id uint16) bool { return id < CriticalBlockCount }

// Raw returns the sector's bytes.
func (s Sector) Raw() []byte { return s.raw }

// Payload returns the checksummed region.
func (s Sector) Payload() []byte { return s.raw[:PayloadSize] }

// BlockID returns the logical block ID field.
func (s Sector) BlockID() uint16 { return s.u16(BlockIDOffset) }

// Checksum returns the stored block checksum.
func (s Sector) Checksum() uint16 { return s.u16(ChecksumOffset) }

// Signature returns the stored magic.
func (s Sector) Signature() uint32 {
	v, _ := buf.U32At(s.raw, SignatureOffset)
	return v
}

// Counter returns the generation counter.
func (s Sector) Counter() uint16 { return s.u16(CounterOffset) }

// ExtraChecksum returns the checksum as stored by a supplemental sector.
func (s Sector) ExtraChecksum() uint16 { return s.u16(ExtraChecksumOffset) }

// u16 reads a footer field; a zero Sector reads as 0.
func (s Sector) u16(off int) uint16 {
	v, _ := buf.U16At(s.raw, off)
	return v
}

// HasSignature reports whether the stored magic matches Signature.
func (s Sector) HasSignature() bool { return s.Signature() == Signature }

// ComputeChecksum checksums the payload as it currently stands.
func (s Sector) ComputeChecksum() uint16 { return Checksum32(s.Payload()) }

// IsBlank reports whether every byte is 0x00 or 0xFF.
func (s Sector) IsBlank() bool { return buf.OnlyBytes(s.raw, ZeroByte, ErasedByte) }

// SetBlockID stores the logical block ID field.
func (s Sector) SetBlockID(id uint16) { buf.PutU16At(s.raw, BlockIDOffset, id) }

// SetChecksum stores the block checksum.
func (s Sector) SetChecksum(c uint16) { buf.PutU16At(s.raw, ChecksumOffset, c) }

// SetSignature stores the magic.
func (s Sector) SetSignature(sig uint32) { buf.PutU32At(s.raw, SignatureOffset, sig) }

// SetCounter stores the generation counter.
func (s Sector) SetCounter(c uint16) { buf.PutU16At(s.raw, CounterOffset, c) }

// Seal rewrites the footer so the sector is a valid block of generation
// counter: checksum over the current payload, the format magic and counter.
func (s Sector) Seal(counter uint16) {
	s.SetChecksum(s.ComputeChecksum())
	s.SetSignature(Signature)
	s.SetCounter(counter)
}
