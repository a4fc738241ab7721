package describe

import (
	"bytes"
	"strings"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/mark-i-m/zippynfs/src/dataset"
)

func TestYAML_RoundTripsGeometry(t *testing.T) {
	var buf bytes.Buffer
	if err := YAML(&buf, dataset.Names()); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var doc map[string]Geometry
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	sync := doc[dataset.NameSync]
	if sync.Bars == nil || len(sync.Bars.Bars) != 6 {
		t.Fatalf("sync geometry missing bars: %+v", sync)
	}
	scale := doc[dataset.NameScale]
	if scale.Line == nil || len(scale.Line.Points) != 9 {
		t.Fatalf("scale geometry missing points: %+v", scale)
	}
	if got := strings.Count(buf.String(), "label: 1ks"); got != 2 {
		t.Fatalf("expected 1ks tick on both bar charts, found %d", got)
	}
}

func TestYAML_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := YAML(&a, dataset.Names()); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if err := YAML(&b, dataset.Names()); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("geometry dump differs between runs")
	}
}

func TestBuild_UnknownChart(t *testing.T) {
	if _, err := Build("throughput"); err == nil {
		t.Fatalf("expected error for unknown chart")
	}
}

func TestSummary_MentionsSeries(t *testing.T) {
	var buf bytes.Buffer
	if err := Summary(&buf, dataset.Names()); err != nil {
		t.Fatalf("summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"No failure", "Client: seclab8, Server: AWS", "18.9 MB/s", "(18M/s)", "#DEA4BD"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestBandwidth(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{7.2, "6.9M/s"},    // 7,200,000 B = 6.87 MiB
		{18.9, "18M/s"},    // 18,900,000 B = 18.02 MiB
		{1.048576, "1M/s"}, // exactly one MiB
		{0, "0B/s"},
	}
	for _, c := range cases {
		if got := Bandwidth(c.in); got != c.want {
			t.Fatalf("Bandwidth(%v)=%q want %q", c.in, got, c.want)
		}
	}
}
