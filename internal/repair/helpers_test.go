package repair

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/projectpokemon/recoversave/internal/format"
)

// requireConsistent checks the invariants every successful output holds.
func requireConsistent(t *testing.T, out []byte) uint16 {
	t.Helper()
	require.Len(t, out, format.FullSize)

	first, err := format.SectorAt(out, 0)
	require.NoError(t, err)
	counter := first.Counter()

	for id := uint16(0); id < format.BlockCount; id++ {
		primary, secondary := format.MirrorPositions(id)
		p, err := format.SectorAt(out, primary)
		require.NoError(t, err)
		m, err := format.SectorAt(out, secondary)
		require.NoError(t, err)

		require.Equal(t, id, p.BlockID(), "block %d id field", id)
		require.Equal(t, p.ComputeChecksum(), p.Checksum(), "block %d checksum", id)
		require.True(t, p.HasSignature(), "block %d signature", id)
		require.Equal(t, counter, p.Counter(), "block %d counter", id)
		require.True(t, bytes.Equal(p.Raw(), m.Raw()), "block %d mirrors differ", id)
	}
	return counter
}
