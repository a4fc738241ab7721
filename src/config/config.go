// Package config resolves plot options from an optional .env file and the
// environment. Values found here are only defaults; command-line flags win.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mark-i-m/zippynfs/src/logging"
	"github.com/mark-i-m/zippynfs/src/render"
)

// Environment variables read by Load.
const (
	EnvBackend  = "ZIPPYPLOTS_BACKEND"
	EnvFormat   = "ZIPPYPLOTS_FORMAT"
	EnvWidth    = "ZIPPYPLOTS_WIDTH"
	EnvHeight   = "ZIPPYPLOTS_HEIGHT"
	EnvOut      = "ZIPPYPLOTS_OUT"
	EnvHints    = "ZIPPYPLOTS_HINTS"
	EnvLogLevel = "ZIPPYPLOTS_LOG_LEVEL"
)

const defaultLogLevel = "info"

// Config is the resolved run configuration.
type Config struct {
	Render render.Options
	// OutDir, when set, writes charts to files instead of opening a window.
	OutDir   string
	LogLevel string `validate:"oneof=debug info warn warning error"`
}

// Load reads .env files (missing files are not an error) and then the
// process environment on top of the built-in defaults.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		logging.Debugf("no .env file loaded: %v", err)
	}
	cfg := &Config{
		Render:   render.DefaultOptions(),
		LogLevel: defaultLogLevel,
	}
	if v, ok := lookup(EnvBackend); ok {
		cfg.Render.Backend = strings.ToLower(v)
	}
	if v, ok := lookup(EnvFormat); ok {
		cfg.Render.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvWidth, err)
		}
		cfg.Render.Width, cfg.Render.Height = render.ChartDimensions(n)
	}
	if v, ok := lookup(EnvHeight); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvHeight, err)
		}
		cfg.Render.Height = n
	}
	if v, ok := lookup(EnvOut); ok {
		cfg.OutDir = v
	}
	if v, ok := lookup(EnvHints); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvHints, err)
		}
		cfg.Render.Hints = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	return cfg, nil
}

// Validate checks the render options and log level.
func (c *Config) Validate() error {
	if err := c.Render.Validate(); err != nil {
		return err
	}
	return render.ValidateStruct(c)
}

// Headless reports whether charts go to files rather than a window.
func (c *Config) Headless() bool { return strings.TrimSpace(c.OutDir) != "" }

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
