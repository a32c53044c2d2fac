// Package repair reconstructs a damaged save image: it scans every sector,
// selects the best surviving copy of each block, synthesizes lost
// non-critical blocks, normalizes generation counters, reseals footers,
// mirrors both halves and carries over valid supplemental sectors.
package repair

import (
	"errors"
	"log/slog"
	"time"

	"github.com/projectpokemon/recoversave/internal/buf"
	"github.com/projectpokemon/recoversave/internal/format"
)

var discard = slog.New(slog.DiscardHandler)

// Config contains configuration options for the repair engine.
type Config struct {
	// Logger receives debug traces of every decision. Nil discards them.
	Logger *slog.Logger
}

// Engine runs fixes. It holds no per-image state and is safe for
// concurrent use.
type Engine struct {
	log *slog.Logger
}

// NewEngine creates a new repair engine with the given configuration.
func NewEngine(config Config) *Engine {
	log := config.Logger
	if log == nil {
		log = discard
	}
	return &Engine{log: log}
}

// Fix reconstructs data with a default engine.
func Fix(data []byte) ([]byte, Result, error) {
	return NewEngine(Config{}).Fix(data)
}

// Fix reconstructs data into a new FullSize image. data is never modified
// or retained. On failure out is nil, res holds exactly one fatal flag and
// err is a *FixError.
func (e *Engine) Fix(data []byte) ([]byte, Result, error) {
	o := e.run(data)
	return o.out, o.res, o.err
}

// outcome carries every intermediate of one run so Diagnose can report on
// exactly what Fix would do.
type outcome struct {
	size  int
	class format.SizeClass
	image []byte // FullSize working image after inflate/truncate
	scan  *ScanResult
	extra ExtraResult
	out   []byte
	res   Result
	err   error
}

func (e *Engine) run(data []byte) outcome {
	o := outcome{size: len(data), class: format.ClassifySize(len(data))}

	switch o.class {
	case format.SizeTooSmall:
		o.res, o.err = TooSmall, sizeError(TooSmall, o.size)
	case format.SizeTooBig:
		o.res, o.err = TooBig, sizeError(TooBig, o.size)
	case format.SizeHalf:
		o.image = make([]byte, format.FullSize)
		buf.Fill(o.image, format.ErasedByte)
		copy(o.image, data)
	case format.SizeFull:
		o.image = data[:format.FullSize:format.FullSize]
	}
	if o.err != nil {
		e.log.Info("rejected image", "size", o.size, "result", o.res)
		return o
	}

	o.scan = Scan(o.image, e.log)
	out, res, err := Rebuild(o.scan, e.log)
	if err != nil {
		var fe *FixError
		if errors.As(err, &fe) {
			fe.Size = o.size
		}
		o.res, o.err = res, err
		e.log.Info("fix failed", "size", o.size, "result", o.res)
		return o
	}

	extra, flag := RetrieveExtra(o.image, out, e.log)
	res |= flag
	if o.class == format.SizeHalf {
		res |= Inflated
	}
	o.extra, o.out, o.res = extra, out, res

	e.log.Info("fix complete", "size", o.size, "result", o.res, "max_counter", o.scan.MaxCounter)
	return o
}

// BlockSummary describes the selection made for one logical block.
type BlockSummary struct {
	ID       uint16     `json:"id"`
	State    BlockState `json:"state"`
	Sector   int        `json:"sector"`
	Counter  uint16     `json:"counter"`
	Copies   int        `json:"copies"`
	Critical bool       `json:"critical"`
}

// DiagSummary provides quick statistics
type DiagSummary struct {
	Critical int `json:"critical"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Report describes an image and what fixing it would do.
type Report struct {
	FilePath   string        `json:"file_path,omitempty"`
	Size       int           `json:"size"`
	SizeClass  string        `json:"size_class"`
	ScanTime   time.Duration `json:"scan_time"`
	MaxCounter uint16        `json:"max_counter"`
	Result     Result        `json:"result"`

	Blocks  []BlockSummary `json:"blocks,omitempty"`
	Sectors []SectorInfo   `json:"sectors,omitempty"`
	Extra   *ExtraResult   `json:"extra,omitempty"`

	Diagnostics []Diagnostic `json:"diagnostics"`
	Summary     DiagSummary  `json:"summary"`
}

// Add appends a diagnostic and updates the summary.
func (r *Report) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	switch d.Severity {
	case SevCritical:
		r.Summary.Critical++
	case SevError:
		r.Summary.Errors++
	case SevWarning:
		r.Summary.Warnings++
	case SevInfo:
		r.Summary.Info++
	}
}

// HasCriticalIssues returns true if any critical issues were found
func (r *Report) HasCriticalIssues() bool { return r.Summary.Critical > 0 }

// HasErrors returns true if any errors or critical issues were found
func (r *Report) HasErrors() bool { return r.Summary.Critical > 0 || r.Summary.Errors > 0 }

// Diagnose runs the same pipeline as Fix without keeping the output and
// reports what it found.
func (e *Engine) Diagnose(data []byte) *Report {
	start := time.Now()
	o := e.run(data)
	r := &Report{
		Size:      o.size,
		SizeClass: o.class.String(),
		Result:    o.res,
	}
	defer func() { r.ScanTime = time.Since(start) }()

	if o.scan == nil {
		addSizeDiagnostic(r)
		return r
	}

	r.MaxCounter = o.scan.MaxCounter
	r.Sectors = o.scan.Sectors[:]
	diagnoseSectors(r, o.scan, o.class == format.SizeHalf)
	diagnoseBlocks(r, o.scan)
	if o.out != nil {
		extra := o.extra
		r.Extra = &extra
		diagnoseExtra(r, &extra)
	}
	return r
}

// DiagnoseRejected reports on an input of size bytes that was refused
// before any of it was read.
func DiagnoseRejected(size int) *Report {
	class := format.ClassifySize(size)
	r := &Report{Size: size, SizeClass: class.String(), Result: TooSmall}
	if class == format.SizeTooBig {
		r.Result = TooBig
	}
	addSizeDiagnostic(r)
	return r
}

func addSizeDiagnostic(r *Report) {
	r.Add(Diagnostic{
		Severity: SevCritical,
		Category: DiagStructure,
		Sector:   -1,
		Block:    -1,
		Issue:    "image size is not a half or full save",
		Expected: []int{format.HalfSize, format.FullSize},
		Actual:   r.Size,
	})
}
