package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectpokemon/recoversave/internal/testutil"
	"github.com/projectpokemon/recoversave/pkg/save"
)

func TestFixCommand(t *testing.T) {
	tests := []struct {
		name           string
		build          func(t *testing.T) []byte
		dryRun         bool
		json           bool
		wantErr        bool
		wantWritten    bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name: "intact save",
			build: func(t *testing.T) []byte {
				return testutil.NewImage(t, 3).Bytes()
			},
			wantWritten: true,
			wantContain: []string{"✓", "wrote", "game.sav.fixed"},
		},
		{
			name: "lost box block",
			build: func(t *testing.T) []byte {
				img := testutil.NewImage(t, 3)
				img.RemoveBlock(9)
				return img.Bytes()
			},
			wantWritten: true,
			wantContain: []string{"box blocks were lost"},
		},
		{
			name: "half image",
			build: func(t *testing.T) []byte {
				return testutil.NewImage(t, 3).Half()
			},
			wantWritten: true,
			wantContain: []string{"inflated"},
		},
		{
			name: "dry run",
			build: func(t *testing.T) []byte {
				return testutil.NewImage(t, 3).Bytes()
			},
			dryRun:         true,
			wantContain:    []string{"would write"},
			wantNotContain: []string{"✓ game.sav: wrote"},
		},
		{
			name: "lost critical block",
			build: func(t *testing.T) []byte {
				img := testutil.NewImage(t, 3)
				img.RemoveBlock(1)
				return img.Bytes()
			},
			wantErr:        true,
			wantNotContain: []string{"✓"},
		},
		{
			name: "too small",
			build: func(t *testing.T) []byte {
				return make([]byte, 100)
			},
			wantErr: true,
		},
		{
			name: "json output",
			build: func(t *testing.T) []byte {
				return testutil.NewImage(t, 3).Bytes()
			},
			json:        true,
			wantWritten: true,
			wantContain: []string{`"result": "Recovered"`, `"written": true`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			fixDryRun = tt.dryRun
			jsonOut = tt.json

			path := testutil.WriteFile(t, t.TempDir(), "game.sav", tt.build(t))
			output, err := captureOutput(t, func() error {
				return runFix([]string{path})
			})

			if tt.wantErr {
				require.Error(t, err)
				var ee *exitError
				require.True(t, errors.As(err, &ee))
				assert.Equal(t, 1, ee.code)
			} else {
				require.NoError(t, err, "output: %s", output)
			}
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)

			_, statErr := os.Stat(path + ".fixed")
			assert.Equal(t, tt.wantWritten, statErr == nil)
		})
	}
}

func TestFixCommandBatchContinuesPastFailures(t *testing.T) {
	resetFlags()
	jsonOut = true
	dir := t.TempDir()

	good := testutil.WriteFile(t, dir, "good.sav", testutil.NewImage(t, 1).Bytes())
	bad := testutil.WriteFile(t, dir, "bad.sav", make([]byte, 10))
	missing := filepath.Join(dir, "missing.sav")

	output, err := captureOutput(t, func() error {
		return runFix([]string{bad, good, missing})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3")

	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "TooSmall", entries[0]["result"])
	assert.NotEmpty(t, entries[0]["error"])
	assert.Equal(t, true, entries[1]["written"])
	assert.NotEmpty(t, entries[2]["error"])

	_, statErr := os.Stat(good + ".fixed")
	assert.NoError(t, statErr)
}

func TestFixCommandSuffixFromConfig(t *testing.T) {
	resetFlags()
	cfg.OutputSuffix = ".repaired"
	path := testutil.WriteFile(t, t.TempDir(), "game.sav", testutil.NewImage(t, 1).Bytes())

	_, err := captureOutput(t, func() error { return runFix([]string{path}) })
	require.NoError(t, err)
	_, statErr := os.Stat(path + ".repaired")
	assert.NoError(t, statErr)

	fixSuffix = ".flag"
	_, err = captureOutput(t, func() error { return runFix([]string{path}) })
	require.NoError(t, err)
	_, statErr = os.Stat(path + ".flag")
	assert.NoError(t, statErr, "flag overrides config")
}

func TestFixCommandOverwrite(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "game.sav", testutil.NewImage(t, 1).Bytes())
	testutil.WriteFile(t, dir, "game.sav.fixed", []byte("old"))

	_, err := captureOutput(t, func() error { return runFix([]string{path}) })
	require.Error(t, err)

	fixOverwrite = true
	_, err = captureOutput(t, func() error { return runFix([]string{path}) })
	require.NoError(t, err)
	info, statErr := os.Stat(path + ".fixed")
	require.NoError(t, statErr)
	assert.Equal(t, int64(save.FullSize), info.Size())
}

func TestFixCommandDiagnoseText(t *testing.T) {
	resetFlags()
	fixDiagnose = true
	img := testutil.NewImage(t, 2)
	img.CorruptPayload(4)
	path := testutil.WriteFile(t, t.TempDir(), "game.sav", img.Bytes())

	output, err := captureOutput(t, func() error { return runFix([]string{path}) })
	require.NoError(t, err)
	assertContains(t, output, []string{"Blocks:", "[WARNING]", "sector 4 block 4", "✓"})
}

func TestFixCommandDiagnoseJSON(t *testing.T) {
	resetFlags()
	fixDiagnose = true
	jsonOut = true
	path := testutil.WriteFile(t, t.TempDir(), "game.sav", testutil.NewImage(t, 2).Bytes())

	output, err := captureOutput(t, func() error { return runFix([]string{path}) })
	require.NoError(t, err)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	require.Len(t, entries, 1)
	assert.NotNil(t, entries[0]["report"])
}
