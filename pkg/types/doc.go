// Package types exposes the public result and diagnostic types of the save
// fixer. They are aliases of the engine's own types so values flow between
// packages without conversion.
//
// This package has no dependencies beyond the standard library and the
// engine it re-exports.
package types
