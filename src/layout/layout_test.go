package layout

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/mark-i-m/zippynfs/src/dataset"
	"github.com/mark-i-m/zippynfs/src/types"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestFailureChart_BarPositions(t *testing.T) {
	g, err := BuildGroupedBars(dataset.FailureLatency())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(g.Bars) != 6 {
		t.Fatalf("expected 6 bars, got %d", len(g.Bars))
	}
	for i := 0; i < 3; i++ {
		fail, ok := g.BarAt(0, i)
		if !ok || !near(fail.X, float64(i)) {
			t.Fatalf("failure bar %d at %v want %v", i, fail.X, float64(i))
		}
		noFail, ok := g.BarAt(1, i)
		if !ok || !near(noFail.X, float64(i)+0.35) {
			t.Fatalf("no-failure bar %d at %v want %v", i, noFail.X, float64(i)+0.35)
		}
		if !near(g.XTicks[i].Value, float64(i)+0.35) {
			t.Fatalf("x tick %d at %v want %v", i, g.XTicks[i].Value, float64(i)+0.35)
		}
	}
	if g.XMin != 0 || !near(g.XMax, 2.7) {
		t.Fatalf("x limits [%v,%v] want [0,2.7]", g.XMin, g.XMax)
	}
	if g.Legend[0] != (LegendEntry{Label: "Failure", Color: "#DEA4BD"}) || g.Legend[1] != (LegendEntry{Label: "No failure", Color: "#B74576"}) {
		t.Fatalf("legend mismatch: %#v", g.Legend)
	}
}

func TestSyncChart_BarPositionsAndTicks(t *testing.T) {
	g, err := BuildGroupedBars(dataset.SyncLatency())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	offsets := []float64{0, 0.20, 0.40}
	for i := 0; i < 2; i++ {
		for j, off := range offsets {
			b, ok := g.BarAt(j, i)
			if !ok {
				t.Fatalf("missing bar series=%d category=%d", j, i)
			}
			if !near(b.X, float64(i)+off) {
				t.Fatalf("bar series=%d category=%d at %v want %v", j, i, b.X, float64(i)+off)
			}
			if b.Color != dataset.Palette[j] {
				t.Fatalf("bar series=%d color %s want %s", j, b.Color, dataset.Palette[j])
			}
		}
		if !near(g.XTicks[i].Value, float64(i)+0.30) {
			t.Fatalf("x tick %d at %v want %v", i, g.XTicks[i].Value, float64(i)+0.30)
		}
	}
	if g.XTicks[0].Label != "FILE_SYNC" || g.XTicks[1].Label != "UNSTABLE + Commit" {
		t.Fatalf("x tick labels: %#v", g.XTicks)
	}
	if !near(g.XMax, 1.6) {
		t.Fatalf("x max %v want 1.6", g.XMax)
	}
}

func TestLatencyTicks_FixedRegardlessOfInput(t *testing.T) {
	want := []Tick{{0.1, "100ms"}, {1, "1s"}, {10, "10s"}, {100, "100s"}, {1000, "1ks"}}
	specs := []types.BarChartSpec{dataset.FailureLatency(), dataset.SyncLatency()}
	tiny := dataset.SyncLatency()
	tiny.Series[0].Values = []float64{0.001, 0.002}
	huge := dataset.FailureLatency()
	huge.Series[1].Values = []float64{1e5, 2e5, 3e5}
	specs = append(specs, tiny, huge)
	for _, s := range specs {
		g, err := BuildGroupedBars(s)
		if err != nil {
			t.Fatalf("%s build: %v", s.Name, err)
		}
		if !reflect.DeepEqual(g.YTicks, want) {
			t.Fatalf("%s y ticks %#v", s.Name, g.YTicks)
		}
		if !g.LogY {
			t.Fatalf("%s: y axis should be logarithmic", s.Name)
		}
	}
}

func TestYBounds_WidenByDecades(t *testing.T) {
	s := dataset.FailureLatency()
	g, _ := BuildGroupedBars(s)
	if g.YMin != 0.1 || g.YMax != 1000 {
		t.Fatalf("default bounds [%v,%v]", g.YMin, g.YMax)
	}
	s.Series[0].Values = []float64{0.003, 1, 4200}
	g, err := BuildGroupedBars(s)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !near(g.YMin, 0.001) || !near(g.YMax, 10000) {
		t.Fatalf("widened bounds [%v,%v] want [0.001,10000]", g.YMin, g.YMax)
	}
}

func TestBuildGroupedBars_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*types.BarChartSpec)
		want   error
		series int
		index  int
	}{
		{"zero", func(s *types.BarChartSpec) { s.Series[1].Values[2] = 0 }, ErrNonPositive, 1, 2},
		{"negative", func(s *types.BarChartSpec) { s.Series[0].Values[0] = -1 }, ErrNonPositive, 0, 0},
		{"nan", func(s *types.BarChartSpec) { s.Series[0].Values[1] = math.NaN() }, ErrNotFinite, 0, 1},
		{"short", func(s *types.BarChartSpec) { s.Series[1].Values = s.Series[1].Values[:2] }, ErrLengthMismatch, 1, -1},
		{"long", func(s *types.BarChartSpec) { s.Series[0].Values = append(s.Series[0].Values, 1) }, ErrLengthMismatch, 0, -1},
		{"no series", func(s *types.BarChartSpec) { s.Series = nil }, ErrEmpty, -1, -1},
		{"no categories", func(s *types.BarChartSpec) { s.CategoryLabels = nil }, ErrEmpty, -1, -1},
		{"bar width", func(s *types.BarChartSpec) { s.BarWidth = 0 }, ErrBarWidth, -1, -1},
		{"color", func(s *types.BarChartSpec) { s.Series[1].ColorIndex = len(dataset.Palette) }, ErrColor, 1, -1},
	}
	for _, c := range cases {
		s := dataset.FailureLatency()
		c.mutate(&s)
		_, err := BuildGroupedBars(s)
		if !errors.Is(err, c.want) {
			t.Fatalf("%s: got %v want %v", c.name, err, c.want)
		}
		var ce *ConstructionError
		if !errors.As(err, &ce) {
			t.Fatalf("%s: expected *ConstructionError, got %T", c.name, err)
		}
		if ce.Series != c.series || ce.Index != c.index {
			t.Fatalf("%s: error location series=%d index=%d want %d/%d", c.name, ce.Series, ce.Index, c.series, c.index)
		}
	}
}

func TestBuildGroupedBars_ExplicitColorWins(t *testing.T) {
	s := dataset.FailureLatency()
	s.Series[0].Color = "#123456"
	s.Series[0].ColorIndex = 99
	g, err := BuildGroupedBars(s)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if g.Legend[0].Color != "#123456" {
		t.Fatalf("explicit color not used: %s", g.Legend[0].Color)
	}
}

func TestBuildGroupedBars_Deterministic(t *testing.T) {
	a, err := BuildGroupedBars(dataset.SyncLatency())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, _ := BuildGroupedBars(dataset.SyncLatency())
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("geometry differs between runs")
	}
}

func TestBuildLine_ReversesAndScales(t *testing.T) {
	l, err := BuildLine(dataset.ScaleBandwidth())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	lit := dataset.ScaleBandwidth().PerClient
	if len(l.Points) != 9 {
		t.Fatalf("expected 9 points, got %d", len(l.Points))
	}
	for n := 1; n <= 9; n++ {
		p := l.Points[n-1]
		want := lit[9-n] * float64(n)
		if p.X != float64(n) || !near(p.Y, want) {
			t.Fatalf("count=%d point (%v,%v) want (%d,%v)", n, p.X, p.Y, n, want)
		}
	}
	if !near(l.Points[0].Y, 7.2) || !near(l.Points[8].Y, 18.9) {
		t.Fatalf("endpoints %v / %v want 7.2 / 18.9", l.Points[0].Y, l.Points[8].Y)
	}
	if l.XLabel != "Number of clients" || l.YLabel != "Total Bandwidth (MB/s)" || l.Marker != "circle" || !l.Grid {
		t.Fatalf("line config mismatch: %+v", l)
	}
}

func TestBuildLine_LengthMismatch(t *testing.T) {
	s := dataset.ScaleBandwidth()
	s.PerClient = s.PerClient[:8]
	if _, err := BuildLine(s); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected length mismatch, got %v", err)
	}
}

func TestReverse_DoesNotMutate(t *testing.T) {
	in := []float64{1, 2, 3}
	out := Reverse(in)
	if !reflect.DeepEqual(out, []float64{3, 2, 1}) || !reflect.DeepEqual(in, []float64{1, 2, 3}) {
		t.Fatalf("reverse: in=%v out=%v", in, out)
	}
}
