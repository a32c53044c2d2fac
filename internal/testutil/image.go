// Package testutil builds synthetic save images for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/projectpokemon/recoversave/internal/format"
)

// Image is a mutable FullSize save image under construction.
type Image struct {
	t   testing.TB
	Raw []byte
}

// NewImage returns a self-consistent image: every block present at both
// mirror positions with a distinct payload and the given counter, and the
// supplemental region zeroed.
//
// Example:
//
//	img := testutil.NewImage(t, 10)
//	img.CorruptPayload(3)
//	out, res, err := repair.Fix(img.Bytes())
func NewImage(t testing.TB, counter uint16) *Image {
	t.Helper()
	im := &Image{t: t, Raw: make([]byte, format.FullSize)}
	for id := uint16(0); id < format.BlockCount; id++ {
		primary, secondary := format.MirrorPositions(id)
		im.WriteBlock(primary, id, counter, byte(id+1))
		im.WriteBlock(secondary, id, counter, byte(id+1))
	}
	return im
}

// Bytes returns a copy of the image.
func (im *Image) Bytes() []byte { return append([]byte(nil), im.Raw...) }

// Half returns a copy of the first half of the image.
func (im *Image) Half() []byte { return append([]byte(nil), im.Raw[:format.HalfSize]...) }

// Sector returns a view of sector pos.
func (im *Image) Sector(pos int) format.Sector {
	im.t.Helper()
	s, err := format.SectorAt(im.Raw, pos)
	if err != nil {
		im.t.Fatalf("sector %d: %v", pos, err)
	}
	return s
}

// Pattern is the payload WriteBlock and WriteExtra store for seed.
func Pattern(seed byte) []byte {
	p := make([]byte, format.PayloadSize)
	for i := range p {
		p[i] = seed + byte(i*7)
	}
	return p
}

// WriteBlock stores a valid block at pos: Pattern(seed) as payload, then a
// sealed footer for id and counter.
func (im *Image) WriteBlock(pos int, id, counter uint16, seed byte) {
	im.t.Helper()
	s := im.Sector(pos)
	clear(s.Raw())
	copy(s.Payload(), Pattern(seed))
	s.SetBlockID(id)
	s.Seal(counter)
}

// CorruptPayload flips one payload byte of pos without touching the footer.
func (im *Image) CorruptPayload(pos int) {
	im.t.Helper()
	im.Sector(pos).Payload()[0x40] ^= 0x5A
}

// SetCounter changes the counter of pos. The counter lives outside the
// payload, so the stored checksum stays valid.
func (im *Image) SetCounter(pos int, counter uint16) {
	im.t.Helper()
	im.Sector(pos).SetCounter(counter)
}

// SetBlockID changes the block ID field of pos.
func (im *Image) SetBlockID(pos int, id uint16) {
	im.t.Helper()
	im.Sector(pos).SetBlockID(id)
}

// SetSignature changes the signature of pos.
func (im *Image) SetSignature(pos int, sig uint32) {
	im.t.Helper()
	im.Sector(pos).SetSignature(sig)
}

// Erase fills pos with 0xFF, as blank flash reads.
func (im *Image) Erase(pos int) {
	im.t.Helper()
	s := im.Sector(pos).Raw()
	for i := range s {
		s[i] = format.ErasedByte
	}
}

// Zero fills pos with 0x00.
func (im *Image) Zero(pos int) {
	im.t.Helper()
	clear(im.Sector(pos).Raw())
}

// RemoveBlock erases both mirror copies of block id.
func (im *Image) RemoveBlock(id uint16) {
	im.t.Helper()
	primary, secondary := format.MirrorPositions(id)
	im.Erase(primary)
	im.Erase(secondary)
}

// WriteExtra stores supplemental data at pos with a checksum that is
// correct when valid is true and off by one otherwise.
func (im *Image) WriteExtra(pos int, seed byte, valid bool) {
	im.t.Helper()
	s := im.Sector(pos)
	clear(s.Raw())
	copy(s.Payload(), Pattern(seed))
	sum := s.ComputeChecksum()
	if !valid {
		sum++
	}
	raw := s.Raw()
	raw[format.ExtraChecksumOffset] = byte(sum)
	raw[format.ExtraChecksumOffset+1] = byte(sum >> 8)
}

// WriteFile stores data as dir/name and returns the path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}
