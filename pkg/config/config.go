// Package config loads drehfreudig settings from a TOML file.
//
// The file is optional. When no path is given, Load looks for
// $XDG_CONFIG_HOME/drehfreudig/config.toml, falling back to
// ~/.config/drehfreudig/config.toml, and uses the defaults when neither
// exists:
//
//	# directory scanned when no files are given
//	dir = "aufgaben"
//	# glob matched against file names in dir
//	pattern = "*.txt"
//	# deepest nesting accepted by the parser (0 disables the limit)
//	max_depth = 10000
//	# when to draw the tree: auto (drehfreudig trees only), always, never
//	render = "auto"
//	# report format: text or json
//	format = "text"
//
// The DREHFREUDIG_DIR environment variable overrides dir.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"

	errs "github.com/matzehuels/drehfreudig/pkg/errors"
)

const (
	// AppName names the config directory.
	AppName = "drehfreudig"

	// EnvDir overrides Config.Dir when set.
	EnvDir = "DREHFREUDIG_DIR"

	DefaultDir      = "aufgaben"
	DefaultPattern  = "*.txt"
	DefaultMaxDepth = 10000

	// DefaultMaxRenderWidth bounds text drawings in characters.
	DefaultMaxRenderWidth = 4096
)

// Render policies.
const (
	RenderAuto   = "auto"
	RenderAlways = "always"
	RenderNever  = "never"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidRenderModes is the set of supported render policies.
var ValidRenderModes = map[string]bool{
	RenderAuto:   true,
	RenderAlways: true,
	RenderNever:  true,
}

// ValidFormats is the set of supported report formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// Config holds the user-tunable settings.
type Config struct {
	Dir      string `toml:"dir"`
	Pattern  string `toml:"pattern"`
	MaxDepth int    `toml:"max_depth"`
	Render   string `toml:"render"`
	Format   string `toml:"format"`

	// MaxRenderWidth is the widest tree drawn as text; zero selects
	// DefaultMaxRenderWidth.
	MaxRenderWidth int `toml:"max_render_width"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dir:      DefaultDir,
		Pattern:  DefaultPattern,
		MaxDepth: DefaultMaxDepth,
		Render:   RenderAuto,
		Format:   FormatText,

		MaxRenderWidth: DefaultMaxRenderWidth,
	}
}

// Load reads the config file at path on top of [Default], applies the
// environment override and validates the result.
//
// An empty path selects [DefaultPath]; a missing file there is not an
// error. A missing file at an explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		case errors.Is(err, fs.ErrNotExist):
			return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "config file %s", path)
		default:
			return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode %s", path)
		}
	}

	if dir := os.Getenv(EnvDir); dir != "" {
		cfg.Dir = dir
	}
	cfg.SetDefaults()
	return cfg, cfg.Validate()
}

// Decode parses TOML data on top of [Default] without touching the file
// system or the environment.
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode config")
	}
	cfg.SetDefaults()
	return cfg, cfg.Validate()
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/drehfreudig/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// SetDefaults fills empty fields. MaxDepth is left alone since zero is
// meaningful (no limit).
func (c *Config) SetDefaults() {
	if c.Dir == "" {
		c.Dir = DefaultDir
	}
	if c.Pattern == "" {
		c.Pattern = DefaultPattern
	}
	if c.Render == "" {
		c.Render = RenderAuto
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.MaxRenderWidth == 0 {
		c.MaxRenderWidth = DefaultMaxRenderWidth
	}
}

// Validate checks enum values and the file pattern.
func (c Config) Validate() error {
	if err := ValidateRender(c.Render); err != nil {
		return err
	}
	if err := ValidateFormat(c.Format); err != nil {
		return err
	}
	if !doublestar.ValidatePattern(c.Pattern) {
		return errs.New(errs.ErrCodeInvalidConfig, "invalid pattern: %q", c.Pattern)
	}
	if c.MaxDepth < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.MaxRenderWidth < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "max_render_width must not be negative, got %d", c.MaxRenderWidth)
	}
	return nil
}

// ValidateRender checks that a render policy is valid.
func ValidateRender(mode string) error {
	if !ValidRenderModes[mode] {
		return errs.New(errs.ErrCodeInvalidConfig, "invalid render mode: %q (must be one of: auto, always, never)", mode)
	}
	return nil
}

// ValidateFormat checks that a report format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}
