package save

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectpokemon/recoversave/internal/testutil"
	"github.com/projectpokemon/recoversave/internal/writer"
	"github.com/projectpokemon/recoversave/pkg/types"
)

func TestFixInMemory(t *testing.T) {
	img := testutil.NewImage(t, 21)
	img.RemoveBlock(10)

	out, res, err := Fix(img.Bytes(), nil)
	require.NoError(t, err)
	require.Len(t, out, FullSize)
	assert.Equal(t, types.Recovered|types.MissingBoxBlocks, res)
}

func TestFixErrorsUnwrap(t *testing.T) {
	_, res, err := Fix(make([]byte, FullSize+FooterLeeway+1), nil)
	assert.Equal(t, types.TooBig, res)
	assert.True(t, errors.Is(err, types.ErrTooBig))

	var fe *types.FixError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, types.TooBig, fe.Result)
}

func TestFixedPath(t *testing.T) {
	assert.Equal(t, filepath.Join("dir", "game.sav.fixed"), FixedPath(filepath.Join("dir", "game.sav"), ""))
	assert.Equal(t, filepath.Join("dir", "game.sav.new"), FixedPath(filepath.Join("dir", "game.sav"), ".new"))
	assert.Equal(t, "game.sav.fixed", FixedPath("game.sav", ""))
}

func TestFixFileWritesSibling(t *testing.T) {
	dir := t.TempDir()
	img := testutil.NewImage(t, 5)
	img.CorruptPayload(3)
	in := img.Bytes()
	path := testutil.WriteFile(t, dir, "game.sav", in)

	fr, err := FixFile(path, nil)
	require.NoError(t, err)
	assert.True(t, fr.Written)
	assert.Equal(t, path+".fixed", fr.Output)
	assert.Equal(t, int64(FullSize), fr.Size)
	assert.Equal(t, types.Recovered, fr.Result)
	assert.Nil(t, fr.Report)

	got, err := os.ReadFile(fr.Output)
	require.NoError(t, err)
	want, _, err := Fix(in, nil)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(want, got))

	orig, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(in, orig), "input file modified")
}

func TestFixFileHalfImage(t *testing.T) {
	img := testutil.NewImage(t, 5)
	path := testutil.WriteFile(t, t.TempDir(), "half.sav", img.Half())

	fr, err := FixFile(path, &Options{OutputSuffix: ".out", Diagnose: true})
	require.NoError(t, err)
	assert.True(t, fr.Result.Has(types.Inflated|types.Recovered))
	assert.Equal(t, path+".out", fr.Output)
	require.NotNil(t, fr.Report)
	assert.Equal(t, "half", fr.Report.SizeClass)
	assert.Equal(t, path, fr.Report.FilePath)

	info, err := os.Stat(fr.Output)
	require.NoError(t, err)
	assert.Equal(t, int64(FullSize), info.Size())
}

func TestFixFileDryRun(t *testing.T) {
	img := testutil.NewImage(t, 5)
	path := testutil.WriteFile(t, t.TempDir(), "game.sav", img.Bytes())

	fr, err := FixFile(path, &Options{DryRun: true})
	require.NoError(t, err)
	assert.False(t, fr.Written)
	_, err = os.Stat(fr.Output)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFixFileRefusesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	img := testutil.NewImage(t, 5)
	path := testutil.WriteFile(t, dir, "game.sav", img.Bytes())
	testutil.WriteFile(t, dir, "game.sav.fixed", []byte("keep me"))

	_, err := FixFile(path, nil)
	require.True(t, errors.Is(err, writer.ErrExists))

	fr, err := FixFile(path, &Options{Overwrite: true})
	require.NoError(t, err)
	assert.True(t, fr.Written)
}

func TestFixFileFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	img := testutil.NewImage(t, 5)
	img.RemoveBlock(2)
	path := testutil.WriteFile(t, dir, "game.sav", img.Bytes())

	fr, err := FixFile(path, nil)
	require.True(t, errors.Is(err, types.ErrMissingCriticalBlocks))
	assert.Equal(t, types.MissingCriticalBlocks, fr.Result)
	assert.False(t, fr.Written)
	_, statErr := os.Stat(path + ".fixed")
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestFixFileTooLargeIsNotRead(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "big.bin", make([]byte, FullSize+FooterLeeway+1))

	fr, err := FixFile(path, nil)
	require.True(t, errors.Is(err, types.ErrTooBig))
	assert.Equal(t, types.TooBig, fr.Result)
}

func TestFixFileMissing(t *testing.T) {
	_, err := FixFile(filepath.Join(t.TempDir(), "nope.sav"), nil)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestInspectFile(t *testing.T) {
	img := testutil.NewImage(t, 5)
	img.WriteExtra(31, 0x99, false)
	path := testutil.WriteFile(t, t.TempDir(), "game.sav", img.Bytes())

	r, err := InspectFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, r.FilePath)
	assert.Equal(t, types.Recovered|types.MissingExtraBlocks, r.Result)
	assert.Equal(t, 1, r.Summary.Warnings)

	_, err = os.Stat(path + ".fixed")
	assert.True(t, errors.Is(err, os.ErrNotExist), "inspect must not write")
}

func TestIsSizeWorthLookingAt(t *testing.T) {
	assert.True(t, IsSizeWorthLookingAt(HalfSize))
	assert.True(t, IsSizeWorthLookingAt(FullSize+FooterLeeway))
	assert.False(t, IsSizeWorthLookingAt(FullSize+FooterLeeway+1))
}

func TestWriteImageToSink(t *testing.T) {
	img := testutil.NewImage(t, 8)
	out, _, err := Fix(img.Bytes(), nil)
	require.NoError(t, err)

	var mem writer.MemWriter
	require.NoError(t, writeImage(&mem, out))
	assert.Equal(t, 1, mem.Writes)
	assert.True(t, bytes.Equal(out, mem.Buf))
}

func TestInspectFileOversizeReportsCritical(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "big.bin", make([]byte, FullSize+FooterLeeway+1))

	r, err := InspectFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, r.FilePath)
	assert.Equal(t, types.TooBig, r.Result)
	assert.Equal(t, "too big", r.SizeClass)
	assert.True(t, r.HasCriticalIssues())
	assert.Nil(t, r.Blocks)
}
