// Package buf contains helpers for endian-safe decoding routines.
package buf

import "encoding/binary"

// U16At reads the little-endian uint16 at b[off:off+2].
// ok is false when the field does not fit inside b.
func U16At(b []byte, off int) (uint16, bool) {
	f, ok := Slice(b, off, 2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(f), true
}

// U32At reads the little-endian uint32 at b[off:off+4].
// ok is false when the field does not fit inside b.
func U32At(b []byte, off int) (uint32, bool) {
	f, ok := Slice(b, off, 4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(f), true
}

// PutU16At writes v little-endian at b[off:off+2]. Reports false, leaving b
// untouched, when the field does not fit.
func PutU16At(b []byte, off int, v uint16) bool {
	f, ok := Slice(b, off, 2)
	if !ok {
		return false
	}
	binary.LittleEndian.PutUint16(f, v)
	return true
}

// PutU32At writes v little-endian at b[off:off+4]. Reports false, leaving b
// untouched, when the field does not fit.
func PutU32At(b []byte, off int, v uint32) bool {
	f, ok := Slice(b, off, 4)
	if !ok {
		return false
	}
	binary.LittleEndian.PutUint32(f, v)
	return true
}
