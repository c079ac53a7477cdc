package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drehfreudig/pkg/config"
	errs "github.com/matzehuels/drehfreudig/pkg/errors"
	"github.com/matzehuels/drehfreudig/pkg/layout"
	"github.com/matzehuels/drehfreudig/pkg/render/nodelink"
	"github.com/matzehuels/drehfreudig/pkg/render/text"
	"github.com/matzehuels/drehfreudig/pkg/tree"
)

const (
	renderFormatText = "text" // ASCII rows as in check reports
	renderFormatDOT  = "dot"  // Graphviz source
	renderFormatSVG  = "svg"  // node-link diagram rendered by Graphviz
)

// validRenderFormats is the set of supported render output formats.
var validRenderFormats = map[string]bool{renderFormatText: true, renderFormatDOT: true, renderFormatSVG: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path, stdout when empty
	format   string // output format: "text", "dot", "svg"
	detailed bool   // add depths to node-link labels
	maxWidth int    // widest tree drawn as text
}

// renderCommand creates the render command for drawing a single tree.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: renderFormatText}

	cmd := &cobra.Command{
		Use:   "render <tree>",
		Short: "Draw a tree as text, DOT or SVG",
		Long: `Render lays out a bracket tree and draws it regardless of whether it is
drehfreudig. Pass - to read the first line of stdin.

Text drawings are limited to --max-render-width characters; DOT and SVG
output is not.`,
		Example: `  drehfreudig render '(()(()())())'
  drehfreudig render '(()())' --format svg -o tree.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRenderFormat(opts.format); err != nil {
				return err
			}
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			input, _, err := readTreeArg(cmd, args[0])
			if err != nil {
				return err
			}
			return c.runRender(cmd, cfg, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, dot, svg")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show depths in node-link labels (dot, svg)")
	cmd.Flags().Int("max-depth", config.DefaultMaxDepth, "maximum nesting depth, 0 for no limit")
	cmd.Flags().Int("max-render-width", config.DefaultMaxRenderWidth, "widest tree drawn as text")

	return cmd
}

// validateRenderFormat checks that the format is one of text, dot or svg.
func validateRenderFormat(f string) error {
	if !validRenderFormats[f] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %s (must be 'text', 'dot', or 'svg')", f)
	}
	return nil
}

func (c *CLI) runRender(cmd *cobra.Command, cfg config.Config, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	root, err := tree.ParseWithLimit(input, cfg.MaxDepth)
	if err != nil {
		return err
	}
	if root == nil {
		return errs.New(errs.ErrCodeEmptyInput, "input is empty or contains no tree")
	}
	total, err := layout.Apply(root)
	if err != nil {
		return err
	}
	logger.Debug("laid out tree", "nodes", root.Size(), "height", root.Height(), "total_width", total)

	opts.maxWidth = cfg.MaxRenderWidth
	data, err := renderTree(ctx, root, opts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess(cmd.OutOrStdout(), "Rendered %s", opts.format)
	printFile(cmd.OutOrStdout(), opts.output)
	return nil
}

// renderTree produces the bytes for a laid-out tree in the requested format.
func renderTree(ctx context.Context, root *tree.Node, opts *renderOpts) ([]byte, error) {
	switch opts.format {
	case renderFormatDOT:
		return []byte(nodelink.ToDOT(root, nodelink.Options{Detailed: opts.detailed})), nil
	case renderFormatSVG:
		dot := nodelink.ToDOT(root, nodelink.Options{Detailed: opts.detailed})
		return nodelink.RenderSVG(ctx, dot)
	default:
		lines, err := text.RenderWithLimit(root, opts.maxWidth)
		if err != nil {
			return nil, err
		}
		return []byte(strings.Join(lines, "\n") + "\n"), nil
	}
}
