// Package layout turns chart definitions into render-ready geometry.
//
// Everything here is a pure function of its input: bar positions, tick
// positions, axis limits and colors are computed once and handed to a
// renderer, so two runs over the same literals produce identical geometry.
package layout

import (
	"math"
	"strings"

	"github.com/mark-i-m/zippynfs/src/dataset"
	"github.com/mark-i-m/zippynfs/src/types"
)

// Tick is one labeled axis position.
type Tick struct {
	Value float64 `yaml:"value"`
	Label string  `yaml:"label"`
}

// Bar is a single bar. It spans [X, X+Width] on the x axis and [YMin, Value] on the y axis.
type Bar struct {
	Series   int     `yaml:"series"`
	Category int     `yaml:"category"`
	X        float64 `yaml:"x"`
	Width    float64 `yaml:"width"`
	Value    float64 `yaml:"value"`
	Color    string  `yaml:"color"`
}

// LegendEntry maps a series label to its display color.
type LegendEntry struct {
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

// GroupedBars is the geometry of a grouped bar chart.
type GroupedBars struct {
	Name     string        `yaml:"name"`
	Title    string        `yaml:"title"`
	XLabel   string        `yaml:"x_label,omitempty"`
	YLabel   string        `yaml:"y_label,omitempty"`
	BarWidth float64       `yaml:"bar_width"`
	Bars     []Bar         `yaml:"bars"`
	XTicks   []Tick        `yaml:"x_ticks"`
	XMin     float64       `yaml:"x_min"`
	XMax     float64       `yaml:"x_max"`
	YTicks   []Tick        `yaml:"y_ticks"`
	YMin     float64       `yaml:"y_min"`
	YMax     float64       `yaml:"y_max"`
	LogY     bool          `yaml:"log_y"`
	Legend   []LegendEntry `yaml:"legend"`
	Grid     bool          `yaml:"grid"`
}

// latencyTicks maps seconds to human readable time labels.
var latencyTicks = []Tick{
	{Value: 0.1, Label: "100ms"},
	{Value: 1.0, Label: "1s"},
	{Value: 10, Label: "10s"},
	{Value: 100, Label: "100s"},
	{Value: 1000, Label: "1ks"},
}

// LatencyTicks returns a copy of the fixed log-axis ticks used by every latency chart.
func LatencyTicks() []Tick {
	return append([]Tick(nil), latencyTicks...)
}

// BuildGroupedBars validates spec and lays out its bars.
//
// Series j's bar for category i starts at i + j*w. The K bars of a group cover
// [i, i+K*w], the category tick sits at the group midpoint i + K*w/2 and the
// x axis spans [0, N-1 + K*w].
func BuildGroupedBars(spec types.BarChartSpec) (GroupedBars, error) {
	n := len(spec.CategoryLabels)
	k := len(spec.Series)
	if n == 0 || k == 0 {
		return GroupedBars{}, constructionErr(spec.Name, -1, -1, ErrEmpty)
	}
	w := spec.BarWidth
	if !(w > 0) || math.IsInf(w, 0) {
		return GroupedBars{}, constructionErr(spec.Name, -1, -1, ErrBarWidth)
	}

	colors := make([]string, k)
	minV, maxV := math.MaxFloat64, -math.MaxFloat64
	for j, s := range spec.Series {
		if len(s.Values) != n {
			return GroupedBars{}, constructionErr(spec.Name, j, -1, ErrLengthMismatch)
		}
		for i, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return GroupedBars{}, constructionErr(spec.Name, j, i, ErrNotFinite)
			}
			if v <= 0 {
				return GroupedBars{}, constructionErr(spec.Name, j, i, ErrNonPositive)
			}
			minV = math.Min(minV, v)
			maxV = math.Max(maxV, v)
		}
		c, ok := seriesColor(s)
		if !ok {
			return GroupedBars{}, constructionErr(spec.Name, j, -1, ErrColor)
		}
		colors[j] = c
	}

	g := GroupedBars{
		Name:     spec.Name,
		Title:    spec.Title,
		XLabel:   spec.XLabel,
		YLabel:   spec.YLabel,
		BarWidth: w,
		Bars:     make([]Bar, 0, n*k),
		XTicks:   make([]Tick, n),
		XMin:     0,
		XMax:     float64(n-1) + float64(k)*w,
		YTicks:   LatencyTicks(),
		LogY:     true,
		Legend:   make([]LegendEntry, k),
		Grid:     true,
	}
	for j, s := range spec.Series {
		for i, v := range s.Values {
			g.Bars = append(g.Bars, Bar{
				Series:   j,
				Category: i,
				X:        float64(i) + float64(j)*w,
				Width:    w,
				Value:    v,
				Color:    colors[j],
			})
		}
		g.Legend[j] = LegendEntry{Label: s.Label, Color: colors[j]}
	}
	for i, label := range spec.CategoryLabels {
		g.XTicks[i] = Tick{Value: float64(i) + float64(k)*w/2, Label: label}
	}
	g.YMin, g.YMax = logBounds(minV, maxV, latencyTicks[0].Value, latencyTicks[len(latencyTicks)-1].Value)
	return g, nil
}

// BarAt returns the bar for series j and category i.
func (g GroupedBars) BarAt(j, i int) (Bar, bool) {
	for _, b := range g.Bars {
		if b.Series == j && b.Category == i {
			return b, true
		}
	}
	return Bar{}, false
}

// logBounds widens [lo, hi] by whole decades so that every value in [minV, maxV] fits.
func logBounds(minV, maxV, lo, hi float64) (float64, float64) {
	if minV < lo {
		lo = math.Pow(10, math.Floor(math.Log10(minV)))
	}
	if maxV > hi {
		hi = math.Pow(10, math.Ceil(math.Log10(maxV)))
	}
	return lo, hi
}

func seriesColor(s types.Series) (string, bool) {
	if c := strings.TrimSpace(s.Color); c != "" {
		return c, true
	}
	if s.ColorIndex < 0 || s.ColorIndex >= len(dataset.Palette) {
		return "", false
	}
	return dataset.Palette[s.ColorIndex], true
}
