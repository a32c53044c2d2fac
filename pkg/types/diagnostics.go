package types

import "github.com/projectpokemon/recoversave/internal/repair"

// Severity classifies how serious a diagnostic issue is
// Re-exported from internal/repair for public API
type Severity = repair.Severity

const (
	SevInfo     = repair.SevInfo     // Informational (unusual but harmless)
	SevWarning  = repair.SevWarning  // Recoverable from another copy
	SevError    = repair.SevError    // Data lost, replaced with a placeholder
	SevCritical = repair.SevCritical // Save cannot be reconstructed
)

// DiagCategory classifies the type of issue found
// Re-exported from internal/repair for public API
type DiagCategory = repair.DiagCategory

const (
	DiagStructure = repair.DiagStructure
	DiagIntegrity = repair.DiagIntegrity
	DiagHistory   = repair.DiagHistory
)

// BlockState classifies the copy chosen for a block.
// Re-exported from internal/repair for public API
type BlockState = repair.BlockState

const (
	StateMissing     = repair.StateMissing
	StateBadChecksum = repair.StateBadChecksum
	StateValid       = repair.StateValid
)

// RepairType describes what the fixer does about an issue
// Re-exported from internal/repair for public API
type RepairType = repair.RepairType

// RepairAction describes how the fixer handles the issue
// Re-exported from internal/repair for public API
type RepairAction = repair.RepairAction

// Diagnostic represents a single finding in a save image
// Re-exported from internal/repair for public API
type Diagnostic = repair.Diagnostic

// BlockSummary describes the selection made for one block.
type BlockSummary = repair.BlockSummary

// SectorInfo describes how one sector was classified.
type SectorInfo = repair.SectorInfo

// DiagnosticReport collects everything found while inspecting an image.
type DiagnosticReport = repair.Report
