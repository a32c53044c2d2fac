package save

import (
	"log/slog"

	"github.com/projectpokemon/recoversave/internal/config"
)

// Options controls fixing and inspection. A nil *Options uses defaults.
type Options struct {
	// Logger receives structured traces of every decision. Nil discards them.
	Logger *slog.Logger

	// OutputSuffix is appended to the input path to name the output.
	// Default: ".fixed"
	OutputSuffix string

	// Overwrite allows FixFile to replace an existing output file.
	Overwrite bool

	// DryRun runs the reconstruction but writes nothing.
	DryRun bool

	// Diagnose attaches a DiagnosticReport to the FileResult.
	Diagnose bool
}

func (o *Options) suffix() string {
	if o == nil || o.OutputSuffix == "" {
		return config.DefaultSuffix
	}
	return o.OutputSuffix
}

func (o *Options) logger() *slog.Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}
