// Package describe prints chart geometry without rendering pixels.
package describe

import (
	"fmt"
	"io"
	"math"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/charmbracelet/lipgloss"
	"go.yaml.in/yaml/v4"

	"github.com/mark-i-m/zippynfs/src/dataset"
	"github.com/mark-i-m/zippynfs/src/layout"
)

// Geometry is the computed layout of one chart. Exactly one field is set.
type Geometry struct {
	Bars *layout.GroupedBars `yaml:"bars,omitempty"`
	Line *layout.Line        `yaml:"line,omitempty"`
}

// Build computes the geometry of the named chart.
func Build(name string) (Geometry, error) {
	c, err := dataset.Lookup(name)
	if err != nil {
		return Geometry{}, err
	}
	switch {
	case c.Bars != nil:
		g, err := layout.BuildGroupedBars(*c.Bars)
		if err != nil {
			return Geometry{}, err
		}
		return Geometry{Bars: &g}, nil
	case c.Line != nil:
		l, err := layout.BuildLine(*c.Line)
		if err != nil {
			return Geometry{}, err
		}
		return Geometry{Line: &l}, nil
	}
	return Geometry{}, fmt.Errorf("chart %q has no definition", name)
}

// YAML writes the geometry of each named chart as one YAML document keyed by name.
func YAML(w io.Writer, names []string) error {
	doc := make(map[string]Geometry, len(names))
	for _, n := range names {
		g, err := Build(n)
		if err != nil {
			return err
		}
		doc[n] = g
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal geometry: %w", err)
	}
	_, err = w.Write(out)
	return err
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1F78B4"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#969696"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#252525")).
			Padding(0, 1)
)

func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}

// Summary writes a short styled overview of each named chart.
func Summary(w io.Writer, names []string) error {
	blocks := make([]string, 0, len(names))
	for _, n := range names {
		g, err := Build(n)
		if err != nil {
			return err
		}
		if g.Bars != nil {
			blocks = append(blocks, boxStyle.Render(barSummary(*g.Bars)))
		} else {
			blocks = append(blocks, boxStyle.Render(lineSummary(*g.Line)))
		}
	}
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, blocks...))
	return err
}

func barSummary(g layout.GroupedBars) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(g.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s: %d bars, width %.2f, y %g..%g (log)", g.Name, len(g.Bars), g.BarWidth, g.YMin, g.YMax)))
	for j, e := range g.Legend {
		vals := make([]string, 0, len(g.XTicks))
		for i := range g.XTicks {
			if bar, ok := g.BarAt(j, i); ok {
				vals = append(vals, fmt.Sprintf("%gs", bar.Value))
			}
		}
		fmt.Fprintf(&b, "\n%s %s %s %s", swatch(e.Color), e.Label, dimStyle.Render(e.Color), strings.Join(vals, " "))
	}
	return b.String()
}

func lineSummary(l layout.Line) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(l.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s: %d points, marker %s", l.Name, len(l.Points), l.Marker)))
	for _, p := range l.Points {
		fmt.Fprintf(&b, "\n%s %2.0f clients  %5.1f MB/s  %s", swatch(l.Color), p.X, p.Y, dimStyle.Render("("+Bandwidth(p.Y)+")"))
	}
	return b.String()
}

// megabyte is the decimal unit the benchmark reports bandwidth in.
const megabyte = 1e6

// Bandwidth converts decimal MB/s to bytes per second and formats them in
// bytefmt's binary units, e.g. 18.9 MB/s -> "18M/s" (MiB).
func Bandwidth(mbps float64) string {
	if mbps <= 0 {
		return "0B/s"
	}
	return bytefmt.ByteSize(uint64(math.Round(mbps*megabyte))) + "/s"
}
