// Package pipeline runs drehfreudig checks over files and literal inputs.
//
// This package is the batch driver around the pure core: it finds input
// files, reads their first line, runs parse → layout → evaluate, decides
// whether to render the tree, and collects one [FileReport] per input. It is
// shared by every CLI command so that all entry points report the same way.
//
// # Architecture
//
// For each input the pipeline runs:
//
//  1. Read: first line of the file ([ReadTreeLine])
//  2. Check: [tree.ParseWithLimit] then [drehfreudig.Evaluate]
//  3. Render: ASCII rows from [text.RenderWithLimit], depending on
//     [Options.Render] and bounded by [Options.MaxRenderWidth]
//
// Failures are recorded in the report of the file that caused them and the
// batch moves on to the next file; one bad file never aborts a run.
//
// # Usage
//
//	runner := pipeline.NewRunner(pipeline.Options{Dir: "aufgaben"}, logger)
//	batch, err := runner.Run(ctx, nil) // discover files in Dir
//	if err != nil {
//	    return err
//	}
//	for _, rep := range batch.Reports {
//	    fmt.Println(rep.Path, rep.Err, rep.Result)
//	}
//
// [tree.ParseWithLimit]: github.com/matzehuels/drehfreudig/pkg/tree.ParseWithLimit
// [drehfreudig.Evaluate]: github.com/matzehuels/drehfreudig/pkg/drehfreudig.Evaluate
// [text.RenderWithLimit]: github.com/matzehuels/drehfreudig/pkg/render/text.RenderWithLimit
package pipeline

import (
	"io"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/drehfreudig/pkg/config"
	"github.com/matzehuels/drehfreudig/pkg/drehfreudig"
	errs "github.com/matzehuels/drehfreudig/pkg/errors"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Dir is scanned when Run is called without explicit paths.
	Dir string `json:"dir,omitempty"`

	// Pattern is the glob matched against paths below Dir.
	Pattern string `json:"pattern,omitempty"`

	// MaxDepth bounds tree nesting; zero disables the limit.
	MaxDepth int `json:"max_depth,omitempty"`

	// Render is one of config.RenderAuto, RenderAlways or RenderNever.
	Render string `json:"render,omitempty"`

	// MaxRenderWidth bounds drawings; wider trees are checked but not drawn.
	// Zero selects config.DefaultMaxRenderWidth.
	MaxRenderWidth int `json:"max_render_width,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// FromConfig builds pipeline options from a loaded configuration.
func FromConfig(cfg config.Config) Options {
	return Options{
		Dir:      cfg.Dir,
		Pattern:  cfg.Pattern,
		MaxDepth: cfg.MaxDepth,
		Render:   cfg.Render,

		MaxRenderWidth: cfg.MaxRenderWidth,
	}
}

// SetDefaults fills empty fields with the configuration defaults.
func (o *Options) SetDefaults() {
	if o.Dir == "" {
		o.Dir = config.DefaultDir
	}
	if o.Pattern == "" {
		o.Pattern = config.DefaultPattern
	}
	if o.Render == "" {
		o.Render = config.RenderAuto
	}
	if o.MaxRenderWidth == 0 {
		o.MaxRenderWidth = config.DefaultMaxRenderWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the render policy, the pattern and the depth bound.
func (o *Options) Validate() error {
	if err := config.ValidateRender(o.Render); err != nil {
		return err
	}
	if !doublestar.ValidatePattern(o.Pattern) {
		return errs.New(errs.ErrCodeInvalidConfig, "invalid pattern: %q", o.Pattern)
	}
	if o.MaxDepth < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "max depth must not be negative, got %d", o.MaxDepth)
	}
	if o.MaxRenderWidth < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "max render width must not be negative, got %d", o.MaxRenderWidth)
	}
	return nil
}

// =============================================================================
// Reports
// =============================================================================

// FileReport is the outcome of checking one input.
type FileReport struct {
	// Path is the file path, or a label such as "<arg>" for literal input.
	Path string

	// Input is the tree description as read, surrounding whitespace removed.
	Input string

	// Result is nil when Err is set.
	Result *drehfreudig.Result

	// Lines holds the ASCII rendering when the render policy asked for it.
	Lines []string

	// RenderErr is set when a drawing was due but the tree was too wide.
	// It does not make the report fail.
	RenderErr error

	Err      error
	Duration time.Duration
}

// OK reports whether the input was checked without error.
func (r FileReport) OK() bool { return r.Err == nil && r.Result != nil }

// Batch collects the reports of one run.
type Batch struct {
	// ID identifies the run in logs.
	ID       string
	Reports  []FileReport
	Duration time.Duration
}

// Failed returns the number of inputs that could not be checked.
func (b *Batch) Failed() int {
	n := 0
	for _, r := range b.Reports {
		if !r.OK() {
			n++
		}
	}
	return n
}

// Drehfreudig returns the number of inputs whose tree is drehfreudig.
func (b *Batch) Drehfreudig() int {
	n := 0
	for _, r := range b.Reports {
		if r.OK() && r.Result.IsDrehfreudig {
			n++
		}
	}
	return n
}
