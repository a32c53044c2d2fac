// Package mmfile provides platform-specific helpers for memory-mapping save files.
package mmfile
