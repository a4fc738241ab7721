// Package app ties configuration, rendering and output together for the commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mark-i-m/zippynfs/src/config"
	"github.com/mark-i-m/zippynfs/src/dataset"
	"github.com/mark-i-m/zippynfs/src/export"
	"github.com/mark-i-m/zippynfs/src/logging"
	"github.com/mark-i-m/zippynfs/src/render"
	"github.com/mark-i-m/zippynfs/src/viewer"
)

// ShowFunc displays rendered pages and blocks until the user is done.
type ShowFunc func(title string, pages []viewer.Page) error

// Runner renders charts and either writes them or shows them.
type Runner struct {
	Cfg    *config.Config
	Stdout io.Writer
	Show   ShowFunc
}

// NewRunner returns a Runner that shows charts with the desktop viewer.
func NewRunner(cfg *config.Config, stdout io.Writer) *Runner {
	return &Runner{Cfg: cfg, Stdout: stdout, Show: viewer.Show}
}

// Run renders the named charts. With an output directory configured the
// files are written and nothing is displayed.
func (r *Runner) Run(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return errors.New("no charts selected")
	}
	if err := r.Cfg.Validate(); err != nil {
		return err
	}
	for _, n := range names {
		if _, err := dataset.Lookup(n); err != nil {
			return err
		}
	}
	if r.Cfg.Headless() {
		paths, err := export.Write(ctx, r.Cfg.OutDir, names, r.Cfg.Render, render.Named)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(r.Stdout, p)
		}
		return nil
	}

	if r.Cfg.Render.Format != render.FormatPNG {
		return fmt.Errorf("the window can only show png output; use --out to write %s files", r.Cfg.Render.Format)
	}
	pages := make([]viewer.Page, 0, len(names))
	for _, n := range names {
		b, err := render.Named(n, r.Cfg.Render)
		if err != nil {
			return err
		}
		pages = append(pages, viewer.Page{Title: n, PNG: b})
	}
	return r.Show("zippynfs: "+strings.Join(names, ", "), pages)
}

// Main is the entry point of the single-chart commands. It returns the process
// exit code: 0 on success, 1 on any error.
func Main(name string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if err := NewRunner(cfg, os.Stdout).Run(context.Background(), []string{name}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
