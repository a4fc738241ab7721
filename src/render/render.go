// Package render draws laid-out charts to PNG or SVG.
//
// Two backends are available: go-chart (default) and gonum/plot. Both receive
// the same layout geometry, so bar positions, ticks, limits and colors do
// not depend on the backend.
package render

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/mark-i-m/zippynfs/src/dataset"
	"github.com/mark-i-m/zippynfs/src/layout"
	"github.com/mark-i-m/zippynfs/src/logging"
)

// Renderer writes one chart image to w.
type Renderer interface {
	RenderBars(w io.Writer, g layout.GroupedBars) error
	RenderLine(w io.Writer, l layout.Line) error
}

// New returns the backend selected by opts.
func New(opts Options) (Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	switch opts.Backend {
	case BackendGonum:
		return gonumRenderer{opts: opts}, nil
	default:
		return goChartRenderer{opts: opts}, nil
	}
}

var hints = map[string]string{
	dataset.NameFailure: "Hint: latency on a log scale, lower is better. Failure injected just before COMMIT.",
	dataset.NameSync:    "Hint: latency on a log scale, lower is better. One bar per client/server placement.",
	dataset.NameScale:   "Hint: total bandwidth = per-client bandwidth x number of clients.",
}

// Chart lays out c and renders it with opts. Rendering is all-or-nothing:
// on error no bytes are returned.
func Chart(name string, c dataset.Chart, opts Options) ([]byte, error) {
	defer logging.TimeTrack(time.Now(), "render "+name)
	r, err := New(opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	switch {
	case c.Bars != nil:
		g, err := layout.BuildGroupedBars(*c.Bars)
		if err != nil {
			return nil, err
		}
		if err := r.RenderBars(&buf, g); err != nil {
			return nil, err
		}
	case c.Line != nil:
		l, err := layout.BuildLine(*c.Line)
		if err != nil {
			return nil, err
		}
		if err := r.RenderLine(&buf, l); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("chart %q has no definition", name)
	}
	out := buf.Bytes()
	if opts.Hints {
		if opts.Format != FormatPNG {
			logging.Warnf("hints are only drawn on png output; skipping for %s", name)
			return out, nil
		}
		text, ok := hints[name]
		if !ok {
			return out, nil
		}
		return stampHint(out, text)
	}
	return out, nil
}

// Named renders one of the embedded dataset charts.
func Named(name string, opts Options) ([]byte, error) {
	c, err := dataset.Lookup(name)
	if err != nil {
		return nil, err
	}
	logging.Debugf("rendering %s with %s (%dx%d %s)", name, opts.Backend, opts.Width, opts.Height, opts.Format)
	return Chart(name, c, opts)
}
