package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mark-i-m/zippynfs/src/layout"
)

// gonum renders at its default 96 DPI; pixel sizes convert to points through it.
const gonumDPI = 96

type gonumRenderer struct {
	opts Options
}

func (g gonumRenderer) size() (vg.Length, vg.Length) {
	px := vg.Inch / gonumDPI
	return vg.Length(g.opts.Width) * px, vg.Length(g.opts.Height) * px
}

func (g gonumRenderer) save(w io.Writer, p *plot.Plot, name string) error {
	width, height := g.size()
	wt, err := p.WriterTo(width, height, g.opts.Format)
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (g gonumRenderer) RenderBars(w io.Writer, gb layout.GroupedBars) error {
	p := plot.New()
	p.Title.Text = gb.Title
	p.X.Label.Text = gb.XLabel
	p.Y.Label.Text = gb.YLabel
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.ConstantTicks(plotTicks(gb.YTicks))
	p.X.Tick.Marker = plot.ConstantTicks(plotTicks(gb.XTicks))
	p.Legend.Top = true
	p.Legend.Padding = 1 * vg.Millimeter

	if gb.Grid {
		p.Add(plotter.NewGrid())
	}
	for j, le := range gb.Legend {
		group := barGroup{color: hexColor(le.Color)}
		for _, b := range gb.Bars {
			if b.Series == j {
				group.bars = append(group.bars, b)
			}
		}
		p.Add(group)
		p.Legend.Add(le.Label, group)
	}
	// Limits are fixed by the layout, not by the data.
	p.X.Min, p.X.Max = gb.XMin, gb.XMax
	p.Y.Min, p.Y.Max = gb.YMin, gb.YMax
	return g.save(w, p, gb.Name)
}

func (g gonumRenderer) RenderLine(w io.Writer, l layout.Line) error {
	p := plot.New()
	p.Title.Text = l.Title
	p.X.Label.Text = l.XLabel
	p.Y.Label.Text = l.YLabel

	xys := make(plotter.XYs, len(l.Points))
	for i, pt := range l.Points {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("render %s: %w", l.Name, err)
	}
	col := hexColor(l.Color)
	line.Color = col
	line.Width = vg.Points(1.5)
	points.Shape = draw.CircleGlyph{}
	points.Color = col
	points.Radius = vg.Points(3)

	if l.Grid {
		p.Add(plotter.NewGrid())
	}
	p.Add(line)
	if l.Marker != "" {
		p.Add(points)
	}
	return g.save(w, p, l.Name)
}

func plotTicks(ticks []layout.Tick) []plot.Tick {
	out := make([]plot.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

// barGroup plots one series of a grouped bar chart. Bars are drawn in data
// coordinates so their width follows the x axis.
type barGroup struct {
	bars  []layout.Bar
	color color.Color
}

func (bg barGroup) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	base := plt.Y.Min
	for _, b := range bg.bars {
		x0, x1 := trX(b.X), trX(b.X+b.Width)
		y0, y1 := trY(base), trY(math.Max(b.Value, base))
		pts := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		c.FillPolygon(bg.color, c.ClipPolygonXY(pts))
	}
}

func (bg barGroup) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, b := range bg.bars {
		xmin = math.Min(xmin, b.X)
		xmax = math.Max(xmax, b.X+b.Width)
		ymin = math.Min(ymin, b.Value)
		ymax = math.Max(ymax, b.Value)
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail draws the legend swatch.
func (bg barGroup) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(bg.color, pts)
}
