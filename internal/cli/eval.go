package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/drehfreudig/pkg/config"
	errs "github.com/matzehuels/drehfreudig/pkg/errors"
	"github.com/matzehuels/drehfreudig/pkg/pipeline"
)

const (
	sourceArg   = "<arg>"
	sourceStdin = "<stdin>"
)

// evalCommand creates the eval command for checking a single literal tree.
func (c *CLI) evalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <tree>",
		Short: "Check one tree given as argument",
		Long: `Eval checks a single bracket tree such as "(()())". Pass - to read the first
line of stdin instead.`,
		Example: `  drehfreudig eval '(()())'
  echo '((()())())' | drehfreudig eval - --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			return c.runEval(cmd, cfg, args[0])
		},
	}

	cmd.Flags().String("format", config.FormatText, "report format: text, json")
	cmd.Flags().String("render", config.RenderAuto, "draw the tree: auto (drehfreudig only), always, never")
	cmd.Flags().Int("max-depth", config.DefaultMaxDepth, "maximum nesting depth, 0 for no limit")
	cmd.Flags().Int("max-render-width", config.DefaultMaxRenderWidth, "widest tree drawn as text")

	return cmd
}

func (c *CLI) runEval(cmd *cobra.Command, cfg config.Config, arg string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	input, source, err := readTreeArg(cmd, arg)
	if err != nil {
		return err
	}

	rep := newRunner(cfg, logger).CheckString(ctx, source, input)
	if rep.Result != nil {
		logger.Debug("evaluated", "source", source, "verdict", verdict(rep.Result))
	}

	if cfg.Format == config.FormatJSON {
		if err := rep.WriteJSON(out); err != nil {
			return err
		}
	} else {
		printReport(out, rep)
	}
	return rep.Err
}

// readTreeArg resolves a tree argument, reading stdin for "-".
func readTreeArg(cmd *cobra.Command, arg string) (input, source string, err error) {
	if arg != "-" {
		return arg, sourceArg, nil
	}
	line, err := pipeline.ReadLine(cmd.InOrStdin())
	if err != nil {
		return "", "", errs.Wrap(errs.ErrCodeFileUnreadable, err, "read stdin")
	}
	return line, sourceStdin, nil
}
