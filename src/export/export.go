// Package export writes rendered charts to a directory without opening a window.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/mark-i-m/zippynfs/src/logging"
	"github.com/mark-i-m/zippynfs/src/render"
)

// RenderFunc renders one named chart.
type RenderFunc func(name string, opts render.Options) ([]byte, error)

// Write renders every named chart and writes <outDir>/<name>.<format>.
// Charts render concurrently; files are written only after all of them
// rendered, so a construction error leaves no partial output behind.
func Write(ctx context.Context, outDir string, names []string, opts render.Options, fn RenderFunc) ([]string, error) {
	if fn == nil {
		fn = render.Named
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	out := make([][]byte, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := fn(name, opts)
			if err != nil {
				return err
			}
			out[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(names))
	for i, name := range names {
		p := filepath.Join(outDir, name+opts.Ext())
		if err := os.WriteFile(p, out[i], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", p, err)
		}
		logging.Infof("wrote %s (%d bytes)", p, len(out[i]))
		paths = append(paths, p)
	}
	return paths, nil
}
