package save

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectpokemon/recoversave/internal/config"
	"github.com/projectpokemon/recoversave/internal/mmfile"
	"github.com/projectpokemon/recoversave/internal/repair"
	"github.com/projectpokemon/recoversave/internal/writer"
	"github.com/projectpokemon/recoversave/pkg/types"
)

// FileResult describes the outcome of FixFile.
type FileResult struct {
	Input   string                  `json:"input"`
	Output  string                  `json:"output,omitempty"`
	Size    int64                   `json:"size"`
	Result  types.Result            `json:"result"`
	Written bool                    `json:"written"`
	Report  *types.DiagnosticReport `json:"report,omitempty"`
}

// FixedPath returns the sibling path the fixed image of path is written to.
func FixedPath(path, suffix string) string {
	if suffix == "" {
		suffix = config.DefaultSuffix
	}
	return filepath.Join(filepath.Dir(path), filepath.Base(path)+suffix)
}

// FixFile reads the image at path, fixes it and writes the result to
// FixedPath(path, opts.OutputSuffix). The input file is never modified.
func FixFile(path string, opts *Options) (*FileResult, error) {
	fr := &FileResult{Input: path}
	data, cleanup, err := openImage(path, fr)
	if err != nil {
		return fr, err
	}
	defer cleanup()

	engine := repair.NewEngine(repair.Config{Logger: opts.logger()})
	if opts != nil && opts.Diagnose {
		fr.Report = engine.Diagnose(data)
		fr.Report.FilePath = path
	}

	out, res, err := engine.Fix(data)
	fr.Result = res
	if err != nil {
		return fr, err
	}

	fr.Output = FixedPath(path, opts.suffix())
	if opts != nil && opts.DryRun {
		return fr, nil
	}
	w := &writer.FileWriter{Path: fr.Output, Overwrite: opts != nil && opts.Overwrite}
	if err := writeImage(w, out); err != nil {
		return fr, err
	}
	fr.Written = true
	return fr, nil
}

// InspectFile reports on the image at path without writing anything.
func InspectFile(path string, opts *Options) (*types.DiagnosticReport, error) {
	fr := &FileResult{Input: path}
	data, cleanup, err := openImage(path, fr)
	var fe *types.FixError
	if errors.As(err, &fe) && fe.Result == types.TooBig {
		report := repair.DiagnoseRejected(fe.Size)
		report.FilePath = path
		return report, nil
	}
	if err != nil {
		return nil, err
	}
	defer cleanup()

	report := Inspect(data, opts)
	report.FilePath = path
	return report, nil
}

func writeImage(sink writer.Sink, out []byte) error {
	if err := sink.WriteImage(out); err != nil {
		return fmt.Errorf("write fixed image: %w", err)
	}
	return nil
}

// openImage stats and maps path. Files too large to be an image are
// rejected before any byte is read.
func openImage(path string, fr *FileResult) ([]byte, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("%s: is a directory", path)
	}
	fr.Size = info.Size()
	if !IsSizeWorthLookingAt(fr.Size) {
		fr.Result = types.TooBig
		size := int(min(fr.Size, int64(^uint(0)>>1)))
		return nil, nil, &types.FixError{Result: types.TooBig, Size: size, Cause: types.ErrTooBig}
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read save file: %w", err)
	}
	return data, cleanup, nil
}
