package repair

// BlockState classifies the best copy found for a logical block.
type BlockState int

const (
	StateMissing     BlockState = iota // no sector with matching ID and signature
	StateBadChecksum                   // signature matches, stored checksum does not
	StateValid                         // signature and checksum both match
)

func (s BlockState) String() string {
	switch s {
	case StateMissing:
		return "MISSING"
	case StateBadChecksum:
		return "BAD_CHECKSUM"
	case StateValid:
		return "VALID"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s BlockState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// SectorKind classifies one physical sector position during a scan.
type SectorKind int

const (
	KindNotBlock         SectorKind = iota // block ID field >= 14
	KindForeignSignature                   // block ID in range, signature wrong
	KindBadChecksum                        // candidate with mismatching checksum
	KindValid                              // candidate with matching checksum
)

func (k SectorKind) String() string {
	switch k {
	case KindNotBlock:
		return "NOT_BLOCK"
	case KindForeignSignature:
		return "FOREIGN_SIGNATURE"
	case KindBadChecksum:
		return "BAD_CHECKSUM"
	case KindValid:
		return "VALID"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k SectorKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Severity classifies how serious a diagnostic issue is
type Severity int

const (
	SevInfo     Severity = iota // Informational (unusual but harmless)
	SevWarning                  // Recoverable from another copy
	SevError                    // Data lost, replaced with a placeholder
	SevCritical                 // Save cannot be reconstructed
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// DiagCategory classifies the type of issue found
type DiagCategory int

const (
	DiagStructure DiagCategory = iota // size, signature, missing blocks
	DiagIntegrity                     // checksums
	DiagHistory                       // generation counters, mirror disagreement
)

func (c DiagCategory) String() string {
	switch c {
	case DiagStructure:
		return "STRUCTURE"
	case DiagIntegrity:
		return "INTEGRITY"
	case DiagHistory:
		return "HISTORY"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c DiagCategory) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// RepairType describes what the fixer does about an issue
type RepairType int

const (
	RepairNone     RepairType = iota // nothing to do, or nothing possible
	RepairReplace                    // use the other mirror copy
	RepairReseal                     // rewrite checksum, signature and counter
	RepairDefault                    // synthesize a blank placeholder
	RepairRemove                     // drop the sector from the output
)

func (r RepairType) String() string {
	switch r {
	case RepairNone:
		return "NONE"
	case RepairReplace:
		return "REPLACE"
	case RepairReseal:
		return "RESEAL"
	case RepairDefault:
		return "DEFAULT"
	case RepairRemove:
		return "REMOVE"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r RepairType) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// RepairAction describes how the fixer handles the issue
type RepairAction struct {
	Type        RepairType `json:"type"`
	Description string     `json:"description"`
}

// Diagnostic represents a single finding in a save image
type Diagnostic struct {
	// Classification
	Severity Severity     `json:"severity"`
	Category DiagCategory `json:"category"`

	// Location; Sector and Block are -1 when the finding is image-wide.
	Offset uint64 `json:"offset"`
	Sector int    `json:"sector"`
	Block  int    `json:"block"`

	// Description
	Issue    string `json:"issue"`
	Expected any    `json:"expected,omitempty"`
	Actual   any    `json:"actual,omitempty"`

	Repair *RepairAction `json:"repair,omitempty"`
}
