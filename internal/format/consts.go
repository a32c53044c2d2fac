// Package format houses the low-level layout of a third-generation handheld
// save image: sector geometry, footer field offsets, the integrity checksum
// and the generation counter ordering. Higher-level packages use these
// pieces to scan and rebuild an image without touching raw offsets.
package format

// Signature marks a sector as belonging to this save format generation.
// It is stored little-endian in every block and supplemental footer.
const Signature uint32 = 0x0801_2025

const (
	// SectorSize is the size of one physical sector.
	SectorSize = 0x1000

	// SectorCount is the number of sector positions in a full image.
	SectorCount = 32

	// FullSize is the size of a complete image (two mirrored halves).
	FullSize = SectorSize * SectorCount // 0x20000

	// HalfSize is the size of an image that only carries the first half.
	HalfSize = FullSize / 2 // 0x10000

	// FooterLeeway allows for the RTC footers some dumpers append,
	// usually 0x10 or 0x20 bytes.
	FooterLeeway = 0x40

	// PayloadSize is the checksummed span at the start of each sector.
	PayloadSize = 0xF80
)

const (
	// BlockCount is the number of logical blocks (IDs 0..13).
	BlockCount = 14

	// CriticalBlockCount is the number of leading block IDs whose loss
	// makes the save unusable.
	CriticalBlockCount = 4

	// MirrorDistance is the distance, in sectors, between a block's
	// primary and secondary positions.
	MirrorDistance = BlockCount

	// ExtraFirstSector is the first supplemental (unmirrored) sector.
	ExtraFirstSector = BlockCount * 2 // 0x1C

	// ExtraSectorCount is the number of supplemental sectors.
	ExtraSectorCount = SectorCount - ExtraFirstSector
)

// Block footer layout, relative to the start of a sector. All fields are
// little-endian.
//
//	Offset  Size  Description
//	------  ----  ---------------------------------------
//	 0x000  3968  Payload (checksummed)
//	 0xFF4     2  Block ID (blocks) / checksum (supplemental sectors)
//	 0xFF6     2  Checksum of payload (blocks)
//	 0xFF8     4  Signature
//	 0xFFC     2  Generation counter
const (
	BlockIDOffset   = 0xFF4
	ChecksumOffset  = 0xFF6
	SignatureOffset = 0xFF8
	CounterOffset   = 0xFFC

	// ExtraChecksumOffset is where supplemental sectors store their checksum.
	ExtraChecksumOffset = 0xFF4
)

// Fill bytes used for blank storage.
const (
	ErasedByte = 0xFF
	ZeroByte   = 0x00
)
