package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/drehfreudig/pkg/drehfreudig"
	errs "github.com/matzehuels/drehfreudig/pkg/errors"
	"github.com/matzehuels/drehfreudig/pkg/observability"
	"github.com/matzehuels/drehfreudig/pkg/tree"
)

// Runner executes checks with shared options and logging.
//
// The Runner keeps no state between checks; every input gets its own tree.
type Runner struct {
	Options Options
	Logger  *log.Logger
}

// NewRunner creates a runner. Empty option fields get their defaults.
// If logger is nil, log.Default() is used.
func NewRunner(opts Options, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logger
	}
	opts.SetDefaults()
	return &Runner{Options: opts, Logger: logger}
}

// Run checks every path in order. When paths is empty the files are
// discovered in Options.Dir with Options.Pattern.
//
// Per-file failures end up in the reports; Run itself only fails for
// invalid options, a failed discovery or a cancelled context. On
// cancellation the reports gathered so far are returned with the error.
func (r *Runner) Run(ctx context.Context, paths []string) (*Batch, error) {
	if err := r.Options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	if len(paths) == 0 {
		found, err := Discover(r.Options.Dir, r.Options.Pattern)
		if err != nil {
			return nil, err
		}
		r.Logger.Debug("discovered inputs", "dir", r.Options.Dir, "pattern", r.Options.Pattern, "files", len(found))
		paths = found
	}

	batch := &Batch{
		ID:      uuid.NewString(),
		Reports: make([]FileReport, 0, len(paths)),
	}
	logger := r.Logger.With("run_id", batch.ID)
	start := time.Now()
	observability.Batch().OnBatchStart(ctx, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			batch.Duration = time.Since(start)
			return batch, err
		}
		rep := r.checkFile(ctx, logger, path)
		batch.Reports = append(batch.Reports, rep)
	}

	batch.Duration = time.Since(start)
	observability.Batch().OnBatchComplete(ctx, len(paths), batch.Failed(), batch.Duration)
	logger.Info("checked inputs",
		"files", len(batch.Reports),
		"drehfreudig", batch.Drehfreudig(),
		"failed", batch.Failed(),
		"duration", batch.Duration)

	return batch, nil
}

// CheckFile reads the first line of path and checks it.
func (r *Runner) CheckFile(ctx context.Context, path string) FileReport {
	return r.checkFile(ctx, r.Logger, path)
}

// CheckString checks a literal tree description. source labels the input
// in reports, logs and hooks.
func (r *Runner) CheckString(ctx context.Context, source, input string) FileReport {
	return r.check(ctx, r.Logger, source, input)
}

func (r *Runner) checkFile(ctx context.Context, logger *log.Logger, path string) FileReport {
	line, err := ReadTreeLine(path)
	if err != nil {
		logger.Warn("cannot read input", "file", path, "err", errs.UserMessage(err))
		return FileReport{Path: path, Err: err}
	}
	return r.check(ctx, logger, path, line)
}

func (r *Runner) check(ctx context.Context, logger *log.Logger, source, input string) FileReport {
	input = strings.TrimSpace(input)
	rep := FileReport{Path: source, Input: input}

	observability.Check().OnCheckStart(ctx, source)
	start := time.Now()

	root, err := tree.ParseWithLimit(input, r.Options.MaxDepth)
	if err == nil && root == nil {
		err = errs.New(errs.ErrCodeEmptyInput, "input is empty or contains no tree")
	}
	var res *drehfreudig.Result
	if err == nil {
		res, err = drehfreudig.Evaluate(root)
	}

	rep.Duration = time.Since(start)
	if err != nil {
		rep.Err = err
		observability.Check().OnCheckComplete(ctx, source, 0, false, rep.Duration, err)
		logger.Warn("invalid input", "file", source, "code", errs.GetCode(err), "err", errs.UserMessage(err))
		return rep
	}

	rep.Result = res
	rep.Lines, rep.RenderErr = renderLines(r.Options.Render, r.Options.MaxRenderWidth, root, res)
	if rep.RenderErr != nil {
		logger.Warn("skipped drawing", "file", source, "total_width", res.TotalWidth, "limit", r.Options.MaxRenderWidth)
	}
	observability.Check().OnCheckComplete(ctx, source, len(res.LeafWidths), res.IsDrehfreudig, rep.Duration, nil)
	logger.Debug("checked tree",
		"file", source,
		"leaves", len(res.LeafWidths),
		"total_width", res.TotalWidth,
		"drehfreudig", res.IsDrehfreudig,
		"duration", rep.Duration)
	return rep
}
