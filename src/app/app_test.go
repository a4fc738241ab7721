package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark-i-m/zippynfs/src/config"
	"github.com/mark-i-m/zippynfs/src/dataset"
	"github.com/mark-i-m/zippynfs/src/render"
	"github.com/mark-i-m/zippynfs/src/viewer"
)

func newCfg() *config.Config {
	return &config.Config{Render: render.DefaultOptions(), LogLevel: "info"}
}

func TestRun_ShowsAllPagesInOneWindow(t *testing.T) {
	var got []viewer.Page
	var title string
	r := &Runner{Cfg: newCfg(), Stdout: &bytes.Buffer{}, Show: func(tt string, pages []viewer.Page) error {
		title, got = tt, pages
		return nil
	}}
	if err := r.Run(context.Background(), dataset.Names()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(got) != 3 || got[0].Title != dataset.NameFailure {
		t.Fatalf("unexpected pages: %d", len(got))
	}
	if !strings.Contains(title, "sync") {
		t.Fatalf("window title %q", title)
	}
	if _, err := viewer.Decode(got); err != nil {
		t.Fatalf("pages are not png: %v", err)
	}
}

func TestRun_HeadlessWritesFiles(t *testing.T) {
	cfg := newCfg()
	cfg.OutDir = t.TempDir()
	var out bytes.Buffer
	r := &Runner{Cfg: cfg, Stdout: &out, Show: func(string, []viewer.Page) error {
		t.Fatalf("viewer must not open with an output directory")
		return nil
	}}
	if err := r.Run(context.Background(), []string{dataset.NameScale}); err != nil {
		t.Fatalf("run: %v", err)
	}
	p := filepath.Join(cfg.OutDir, "scale.png")
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("expected %s: %v", p, err)
	}
	if strings.TrimSpace(out.String()) != p {
		t.Fatalf("stdout %q want %q", out.String(), p)
	}
}

func TestRun_Errors(t *testing.T) {
	noShow := func(string, []viewer.Page) error { return viewer.ErrNoDisplay }
	cases := []struct {
		name   string
		charts []string
		mutate func(*config.Config)
		want   error
	}{
		{"unknown chart", []string{"latency"}, func(*config.Config) {}, nil},
		{"no charts", nil, func(*config.Config) {}, nil},
		{"svg to window", []string{dataset.NameSync}, func(c *config.Config) { c.Render.Format = render.FormatSVG }, nil},
		{"bad backend", []string{dataset.NameSync}, func(c *config.Config) { c.Render.Backend = "ascii" }, nil},
		{"no display", []string{dataset.NameSync}, func(*config.Config) {}, viewer.ErrNoDisplay},
	}
	for _, c := range cases {
		cfg := newCfg()
		c.mutate(cfg)
		r := &Runner{Cfg: cfg, Stdout: &bytes.Buffer{}, Show: noShow}
		err := r.Run(context.Background(), c.charts)
		if err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		if c.want != nil && !errors.Is(err, c.want) {
			t.Fatalf("%s: got %v want %v", c.name, err, c.want)
		}
	}
}
