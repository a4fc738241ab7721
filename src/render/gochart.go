package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mark-i-m/zippynfs/src/layout"
)

var gridStyle = chart.Style{
	StrokeColor: drawing.ColorFromHex("d0d0d0"),
	StrokeWidth: 1.0,
}

// hexColor parses "#RRGGBB" (leading # optional).
func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(strings.TrimSpace(s), "#"))
}

type goChartRenderer struct {
	opts Options
}

func (g goChartRenderer) provider() chart.RendererProvider {
	if g.opts.Format == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

func (g goChartRenderer) RenderBars(w io.Writer, gb layout.GroupedBars) error {
	series := make([]chart.Series, 0, len(gb.Legend))
	for j, le := range gb.Legend {
		col := hexColor(le.Color)
		bs := barSeries{
			Name:  le.Label,
			Style: chart.Style{StrokeColor: col, FillColor: col, StrokeWidth: 1},
		}
		for _, b := range gb.Bars {
			if b.Series == j {
				bs.Bars = append(bs.Bars, b)
			}
		}
		series = append(series, bs)
	}

	// go-chart derives an axis range from its ticks, so unlabeled ticks pin the limits.
	ch := chart.Chart{
		Title:      gb.Title,
		Width:      g.opts.Width,
		Height:     g.opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           gb.XLabel,
			Range:          &chart.ContinuousRange{Min: gb.XMin, Max: gb.XMax},
			Ticks:          boundedTicks(gb.XTicks, gb.XMin, gb.XMax),
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           gb.YLabel,
			Range:          &logRange{Min: gb.YMin, Max: gb.YMax},
			Ticks:          boundedTicks(gb.YTicks, gb.YMin, gb.YMax),
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{barLegend(&ch)}
	if err := ch.Render(g.provider(), w); err != nil {
		return fmt.Errorf("render %s: %w", gb.Name, err)
	}
	return nil
}

func (g goChartRenderer) RenderLine(w io.Writer, l layout.Line) error {
	xs := make([]float64, len(l.Points))
	ys := make([]float64, len(l.Points))
	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for i, p := range l.Points {
		xs[i], ys[i] = p.X, p.Y
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	col := hexColor(l.Color)
	st := chart.Style{StrokeColor: col, StrokeWidth: 2, DotColor: col, DotWidth: 4}
	if l.Marker == "" {
		st.DotWidth = 0
	}
	// Pad to at least two X values for go-chart
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
		maxX = xs[1]
	}
	yMin, yMax := niceAxisBounds(minY, maxY)
	ch := chart.Chart{
		Title:      l.Title,
		Width:      g.opts.Width,
		Height:     g.opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           l.XLabel,
			Range:          &chart.ContinuousRange{Min: minX, Max: maxX},
			Ticks:          integerTicks(minX, maxX),
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           l.YLabel,
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks:          niceTicks(yMin, yMax, 6),
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{chart.ContinuousSeries{Name: l.YLabel, XValues: xs, YValues: ys, Style: st}},
	}
	if err := ch.Render(g.provider(), w); err != nil {
		return fmt.Errorf("render %s: %w", l.Name, err)
	}
	return nil
}

var (
	legendText   = drawing.ColorFromHex("333333")
	legendBorder = drawing.ColorFromHex("b0b0b0")
)

type swatchEntry struct {
	Label string
	Color drawing.Color
}

// legendEntries lists the visible named series with their fill colors.
func legendEntries(series []chart.Series) []swatchEntry {
	var out []swatchEntry
	for _, s := range series {
		st := s.GetStyle()
		if st.Hidden || s.GetName() == "" {
			continue
		}
		out = append(out, swatchEntry{Label: s.GetName(), Color: st.GetFillColor(st.GetStrokeColor())})
	}
	return out
}

// barLegend draws a boxed legend in the top-left corner of the plot area with
// one filled bar swatch per series.
func barLegend(c *chart.Chart) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		entries := legendEntries(c.Series)
		if len(entries) == 0 {
			return
		}
		const pad, swatchW, gap = 5, 14, 6
		font := defaults.GetFont()
		r.SetFont(font)
		r.SetFontSize(8)
		lineH, textW := 0, 0
		for _, e := range entries {
			tb := r.MeasureText(e.Label)
			lineH = max(lineH, tb.Height())
			textW = max(textW, tb.Width())
		}
		left, top := cb.Left+2*pad, cb.Top+2*pad
		frame := chart.Box{
			Top:    top,
			Left:   left,
			Right:  left + 2*pad + swatchW + gap + textW,
			Bottom: top + pad + len(entries)*(lineH+pad),
		}
		fillRect(r, frame, drawing.ColorWhite, legendBorder)

		y := top + pad
		for _, e := range entries {
			fillRect(r, chart.Box{Top: y, Left: left + pad, Right: left + pad + swatchW, Bottom: y + lineH}, e.Color, e.Color)
			r.SetFont(font)
			r.SetFontSize(8)
			r.SetFontColor(legendText)
			r.Text(e.Label, left+pad+swatchW+gap, y+lineH)
			y += lineH + pad
		}
	}
}

func fillRect(r chart.Renderer, b chart.Box, fill, stroke drawing.Color) {
	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(1)
	r.MoveTo(b.Left, b.Top)
	r.LineTo(b.Right, b.Top)
	r.LineTo(b.Right, b.Bottom)
	r.LineTo(b.Left, b.Bottom)
	r.LineTo(b.Left, b.Top)
	r.Close()
	r.FillStroke()
}

// boundedTicks returns ticks plus unlabeled ticks at lo and hi when missing.
func boundedTicks(ticks []layout.Tick, lo, hi float64) []chart.Tick {
	out := make([]chart.Tick, 0, len(ticks)+2)
	haveLo, haveHi := false, false
	for _, t := range ticks {
		haveLo = haveLo || t.Value == lo
		haveHi = haveHi || t.Value == hi
	}
	if !haveLo {
		out = append(out, chart.Tick{Value: lo, Label: ""})
	}
	for _, t := range ticks {
		out = append(out, chart.Tick{Value: t.Value, Label: t.Label})
	}
	if !haveHi {
		out = append(out, chart.Tick{Value: hi, Label: ""})
	}
	return out
}

// barSeries draws one series of a grouped bar chart as filled boxes in data coordinates.
type barSeries struct {
	Name  string
	Style chart.Style
	Bars  []layout.Bar
}

func (bs barSeries) GetName() string           { return bs.Name }
func (bs barSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (bs barSeries) GetStyle() chart.Style     { return bs.Style }

func (bs barSeries) Validate() error {
	if len(bs.Bars) == 0 {
		return fmt.Errorf("bar series %q has no bars", bs.Name)
	}
	return nil
}

func (bs barSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := bs.Style.InheritFrom(defaults)
	base := yrange.GetMin()
	top := yrange.GetMax()
	for _, b := range bs.Bars {
		v := math.Min(math.Max(b.Value, base), top)
		x0 := canvasBox.Left + xrange.Translate(b.X)
		x1 := canvasBox.Left + xrange.Translate(b.X+b.Width)
		y0 := canvasBox.Bottom - yrange.Translate(base)
		y1 := canvasBox.Bottom - yrange.Translate(v)

		fillRect(r, chart.Box{Top: y1, Left: x0, Right: x1, Bottom: y0}, style.GetFillColor(), style.GetStrokeColor())
	}
}

// logRange is a base-10 logarithmic chart.Range.
type logRange struct {
	Min        float64
	Max        float64
	Domain     int
	Descending bool
}

func (r *logRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0 && r.Domain == 0
}

func (r *logRange) GetMin() float64 { return r.Min }

// SetMin ignores non-positive values, which have no logarithm.
func (r *logRange) SetMin(min float64) {
	if min > 0 {
		r.Min = min
	}
}

func (r *logRange) GetMax() float64 { return r.Max }

func (r *logRange) SetMax(max float64) {
	if max > 0 {
		r.Max = max
	}
}

func (r *logRange) GetDelta() float64 { return r.Max - r.Min }

func (r *logRange) GetDomain() int { return r.Domain }

func (r *logRange) SetDomain(domain int) { r.Domain = domain }

func (r *logRange) IsDescending() bool { return r.Descending }

func (r *logRange) String() string {
	return fmt.Sprintf("LogRange [%.4g,%.4g] => %d", r.Min, r.Max, r.Domain)
}

// Translate maps value to a pixel offset in [0, Domain], proportional to its decade position.
func (r *logRange) Translate(value float64) int {
	if r.Min <= 0 || r.Max <= r.Min {
		return 0
	}
	if value < r.Min {
		value = r.Min
	}
	lo, hi := math.Log10(r.Min), math.Log10(r.Max)
	ratio := (math.Log10(value) - lo) / (hi - lo)
	px := int(math.Ceil(ratio * float64(r.Domain)))
	if r.Descending {
		return r.Domain - px
	}
	return px
}
