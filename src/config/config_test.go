package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mark-i-m/zippynfs/src/render"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvBackend, EnvFormat, EnvWidth, EnvHeight, EnvOut, EnvHints, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Render != render.DefaultOptions() {
		t.Fatalf("render defaults: %+v", cfg.Render)
	}
	if cfg.Headless() || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBackend, "GONUM")
	t.Setenv(EnvFormat, "svg")
	t.Setenv(EnvWidth, "1200")
	t.Setenv(EnvOut, "charts")
	t.Setenv(EnvHints, "true")
	t.Setenv(EnvLogLevel, "debug")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Render.Backend != render.BackendGonum || cfg.Render.Format != render.FormatSVG {
		t.Fatalf("backend/format: %+v", cfg.Render)
	}
	if cfg.Render.Width != 1200 || cfg.Render.Height != 792 {
		t.Fatalf("size %dx%d want 1200x792", cfg.Render.Width, cfg.Render.Height)
	}
	if !cfg.Render.Hints || !cfg.Headless() || cfg.OutDir != "charts" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	// t.Setenv("") leaves the keys set; unset so godotenv may fill them.
	os.Unsetenv(EnvFormat)
	os.Unsetenv(EnvHeight)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ZIPPYPLOTS_FORMAT=svg\nZIPPYPLOTS_HEIGHT=500\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv(EnvFormat)
		os.Unsetenv(EnvHeight)
	})
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Render.Format != "svg" || cfg.Render.Height != 500 {
		t.Fatalf(".env values not applied: %+v", cfg.Render)
	}
}

func TestLoad_BadValues(t *testing.T) {
	cases := []struct {
		key, val string
	}{
		{EnvWidth, "wide"},
		{EnvHeight, "tall"},
		{EnvHints, "maybe"},
	}
	for _, c := range cases {
		clearEnv(t)
		t.Setenv(c.key, c.val)
		if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
			t.Fatalf("%s=%s: expected error", c.key, c.val)
		}
	}
}

func TestValidate_Rejects(t *testing.T) {
	clearEnv(t)
	cfg, _ := Load(filepath.Join(t.TempDir(), "missing.env"))
	cfg.LogLevel = "chatty"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected invalid log level error")
	}
	cfg.LogLevel = "info"
	cfg.Render.Format = "gif"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected invalid format error")
	}
}
