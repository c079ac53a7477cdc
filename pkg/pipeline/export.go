package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/drehfreudig/pkg/drehfreudig"
	errs "github.com/matzehuels/drehfreudig/pkg/errors"
)

type batchJSON struct {
	RunID       string       `json:"run_id"`
	Files       int          `json:"files"`
	Drehfreudig int          `json:"drehfreudig"`
	Failed      int          `json:"failed"`
	Reports     []reportJSON `json:"reports"`
}

type reportJSON struct {
	Path      string              `json:"path"`
	Input     string              `json:"input,omitempty"`
	Result    *drehfreudig.Result `json:"result,omitempty"`
	Rendering []string            `json:"rendering,omitempty"`
	ErrorCode string              `json:"error_code,omitempty"`
	Error     string              `json:"error,omitempty"`

	RenderError string `json:"render_error,omitempty"`
}

func toReportJSON(r FileReport) reportJSON {
	out := reportJSON{
		Path:      r.Path,
		Input:     r.Input,
		Result:    r.Result,
		Rendering: r.Lines,
	}
	if r.Err != nil {
		out.ErrorCode = string(errs.GetCode(r.Err))
		out.Error = errs.UserMessage(r.Err)
	}
	if r.RenderErr != nil {
		out.RenderError = errs.UserMessage(r.RenderErr)
	}
	return out
}

// WriteJSON encodes the batch with all reports as indented JSON.
// Errors are written as their code and user-facing message.
func (b *Batch) WriteJSON(w io.Writer) error {
	out := batchJSON{
		RunID:       b.ID,
		Files:       len(b.Reports),
		Drehfreudig: b.Drehfreudig(),
		Failed:      b.Failed(),
		Reports:     make([]reportJSON, len(b.Reports)),
	}
	for i, r := range b.Reports {
		out.Reports[i] = toReportJSON(r)
	}
	return encode(w, out)
}

// WriteJSON encodes a single report as indented JSON.
func (r FileReport) WriteJSON(w io.Writer) error {
	return encode(w, toReportJSON(r))
}

// ExportJSON writes the batch to a JSON file at path.
func (b *Batch) ExportJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return b.WriteJSON(f)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
