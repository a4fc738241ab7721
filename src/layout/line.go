package layout

import (
	"math"

	"github.com/mark-i-m/zippynfs/src/types"
)

// Point is one (client count, total bandwidth) marker.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Line is the geometry of a marker line chart on linear axes.
type Line struct {
	Name   string  `yaml:"name"`
	Title  string  `yaml:"title"`
	XLabel string  `yaml:"x_label"`
	YLabel string  `yaml:"y_label"`
	Color  string  `yaml:"color"`
	Marker string  `yaml:"marker"`
	Points []Point `yaml:"points"`
	Grid   bool    `yaml:"grid"`
}

// BuildLine pairs the reversed per-client bandwidth with ascending client counts
// and scales each value by its count: total[i] = reversed[i] * counts[i].
func BuildLine(spec types.LineChartSpec) (Line, error) {
	if len(spec.ClientCounts) == 0 {
		return Line{}, constructionErr(spec.Name, -1, -1, ErrEmpty)
	}
	if len(spec.ClientCounts) != len(spec.PerClient) {
		return Line{}, constructionErr(spec.Name, 0, -1, ErrLengthMismatch)
	}
	rev := Reverse(spec.PerClient)
	l := Line{
		Name:   spec.Name,
		Title:  spec.Title,
		XLabel: spec.XLabel,
		YLabel: spec.YLabel,
		Color:  spec.Color,
		Marker: "circle",
		Points: make([]Point, len(rev)),
		Grid:   true,
	}
	if l.Color == "" {
		l.Color = "#000000"
	}
	for i, bw := range rev {
		if math.IsNaN(bw) || math.IsInf(bw, 0) {
			// index into the literal, not the reversed copy
			return Line{}, constructionErr(spec.Name, 0, len(rev)-1-i, ErrNotFinite)
		}
		n := spec.ClientCounts[i]
		l.Points[i] = Point{X: float64(n), Y: bw * float64(n)}
	}
	return l, nil
}

// Reverse returns a reversed copy of vs.
func Reverse(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}
