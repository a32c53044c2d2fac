package format

import "encoding/binary"

// Checksum32 sums b as little-endian 32-bit words into a wrapping 32-bit
// accumulator, folds the high half into the low half and returns the low
// 16 bits. Trailing bytes that do not fill a whole word are ignored; every
// region this format checksums is a multiple of 4.
func Checksum32(b []byte) uint16 {
	var chk uint32
	for len(b) >= 4 {
		chk += binary.LittleEndian.Uint32(b)
		b = b[4:]
	}
	return uint16(chk + (chk >> 16))
}
