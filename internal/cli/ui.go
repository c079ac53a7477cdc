package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/drehfreudig/pkg/drehfreudig"
	errs "github.com/matzehuels/drehfreudig/pkg/errors"
	"github.com/matzehuels/drehfreudig/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - drehfreudig
	colorYellow = lipgloss.Color("220") // Amber - unreadable input
	colorRed    = lipgloss.Color("167") // Soft red - not drehfreudig, broken trees
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for file names.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleFailure for negative verdicts.
	StyleFailure = lipgloss.NewStyle().Foreground(colorRed)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleTree = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printTree prints rendered rows indented under a report.
func printTree(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, "    "+styleTree.Render(l))
	}
}

// =============================================================================
// Reports
// =============================================================================

// printReport prints the verdict for one input, its reason when the tree is
// not drehfreudig and the rendering if there is one.
func printReport(w io.Writer, rep pipeline.FileReport) {
	name := StyleTitle.Render(rep.Path)
	if rep.Err != nil {
		// Broken trees are the input's fault; anything else is the environment's.
		if errs.IsInputError(rep.Err) {
			printError(w, "%s: %s", name, StyleFailure.Render(errs.UserMessage(rep.Err)))
		} else {
			printWarning(w, "%s: %s", rep.Path, errs.UserMessage(rep.Err))
		}
		if code := errs.GetCode(rep.Err); code != "" {
			printDetail(w, "%s", code)
		}
		return
	}

	res := rep.Result
	if res.IsDrehfreudig {
		printSuccess(w, "%s %s", name, StyleSuccess.Render("is drehfreudig"))
	} else {
		printError(w, "%s %s", name, StyleFailure.Render("is not drehfreudig"))
	}
	printDetail(w, "widths %s  depths %s  total %d", formatInts(res.LeafWidths), formatInts(res.LeafDepths), res.TotalWidth)
	if m := res.WidthMismatch; m != nil {
		printDetail(w, "leaf widths %d and %d differ (%d vs %d)", m.Left, m.Right, m.LeftValue, m.RightValue)
	}
	if m := res.DepthMismatch; m != nil {
		printDetail(w, "depths of leaves %d and %d sum to %d, expected %d", m.Left, m.Right, m.LeftValue, m.RightValue)
	}
	if rep.RenderErr != nil {
		printDetail(w, "not drawn: %s", errs.UserMessage(rep.RenderErr))
	}
	printTree(w, rep.Lines)
}

// printSummary prints the one-line batch summary.
func printSummary(w io.Writer, b *pipeline.Batch) {
	parts := []string{
		fmt.Sprintf("%s files", StyleNumber.Render(fmt.Sprint(len(b.Reports)))),
		fmt.Sprintf("%s drehfreudig", StyleNumber.Render(fmt.Sprint(b.Drehfreudig()))),
	}
	if failed := b.Failed(); failed > 0 {
		parts = append(parts, StyleWarning.Render(fmt.Sprintf("%d failed", failed)))
	}
	printInfo(w, "%s", strings.Join(parts, StyleDim.Render(" · ")))
}

// verdict returns a one-word description of a result for log lines.
func verdict(res *drehfreudig.Result) string {
	if res != nil && res.IsDrehfreudig {
		return "drehfreudig"
	}
	return "not drehfreudig"
}

func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
