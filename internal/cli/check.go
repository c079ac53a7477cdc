package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drehfreudig/pkg/config"
)

// checkCommand creates the check command for batch checking input files.
// Without arguments it discovers files in the configured directory.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Check input files for the drehfreudig property",
		Long: `Check reads the first line of every input file, parses it as a bracket tree
and reports whether the tree is drehfreudig.

Without arguments all files in --dir matching --pattern are checked in name
order. A file that cannot be read or parsed is reported and skipped; the
command then exits with an error after all files were processed.`,
		Example: `  drehfreudig check
  drehfreudig check --dir aufgaben --pattern '**/*.txt' --render always
  drehfreudig check a.txt b.txt --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			return c.runCheck(cmd, cfg, args)
		},
	}

	cmd.Flags().String("dir", config.DefaultDir, "directory scanned when no files are given (env "+config.EnvDir+")")
	cmd.Flags().String("pattern", config.DefaultPattern, "glob selecting input files in --dir")
	cmd.Flags().String("format", config.FormatText, "report format: text, json")
	cmd.Flags().String("render", config.RenderAuto, "draw trees: auto (drehfreudig only), always, never")
	cmd.Flags().Int("max-depth", config.DefaultMaxDepth, "maximum nesting depth, 0 for no limit")
	cmd.Flags().Int("max-render-width", config.DefaultMaxRenderWidth, "widest tree drawn as text")

	return cmd
}

func (c *CLI) runCheck(cmd *cobra.Command, cfg config.Config, paths []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	prog := newProgress(logger)
	batch, err := newRunner(cfg, logger).Run(ctx, paths)
	if err != nil {
		return err
	}
	prog.done("Checked %d files", len(batch.Reports))

	if cfg.Format == config.FormatJSON {
		if err := batch.WriteJSON(out); err != nil {
			return err
		}
	} else {
		for _, rep := range batch.Reports {
			printReport(out, rep)
		}
		printSummary(out, batch)
	}

	if failed := batch.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be checked", failed, len(batch.Reports))
	}
	return nil
}
