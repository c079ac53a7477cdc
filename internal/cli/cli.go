// Package cli implements the drehfreudig command-line interface.
//
// The CLI checks bracket-encoded trees for the drehfreudig property, either
// one literal tree at a time or in batches read from a directory, and draws
// them as text, DOT or SVG. It is built using cobra and logs via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - check: Check every input file in a directory (or the given files)
//   - eval: Check a single tree given on the command line or stdin
//   - render: Draw a tree as text, Graphviz DOT or SVG
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Configuration
//
// Defaults come from a TOML file (see [config.DefaultPath]) which --config
// replaces. Command flags override both.
//
// [config.DefaultPath]: github.com/matzehuels/drehfreudig/pkg/config.DefaultPath
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/drehfreudig/pkg/buildinfo"
	"github.com/matzehuels/drehfreudig/pkg/config"
	"github.com/matzehuels/drehfreudig/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          config.AppName,
		Short:        "Drehfreudig checks whether trees look the same upside down",
		Long:         `Drehfreudig reads trees written as nested brackets, lays them out so that every node splits its width evenly between its children, and checks whether the drawing survives a half turn.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/drehfreudig/config.toml)")

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.evalCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the config file and lets explicitly set flags win.
// Only flags that exist on cmd are considered.
func (c *CLI) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Dir, _ = flags.GetString("dir")
	}
	if flags.Changed("pattern") {
		cfg.Pattern, _ = flags.GetString("pattern")
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("max-render-width") {
		cfg.MaxRenderWidth, _ = flags.GetInt("max-render-width")
	}
	if flags.Changed("render") {
		cfg.Render, _ = flags.GetString("render")
	}
	if flags.Changed("format") && cmd.Name() != "render" {
		cfg.Format, _ = flags.GetString("format")
	}

	return cfg, cfg.Validate()
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func newRunner(cfg config.Config, logger *log.Logger) *pipeline.Runner {
	return pipeline.NewRunner(pipeline.FromConfig(cfg), logger)
}
