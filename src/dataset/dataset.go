// Package dataset embeds the zippynfs benchmark measurements plotted by the charts.
//
// All values are literals recorded from the external benchmark runs; nothing is read at runtime.
// Latencies are in seconds, bandwidth in MB/s per client.
package dataset

import (
	"fmt"
	"sort"

	"github.com/mark-i-m/zippynfs/src/types"
)

// Palette is applied to series in order; charts pick colors by index.
var Palette = []string{"#DEA4BD", "#B74576", "#A6CEE3", "#1F78B4", "#969696", "#252525"}

// Chart names accepted by Lookup and the CLI.
const (
	NameFailure = "failure"
	NameSync    = "sync"
	NameScale   = "scale"
)

// Placement labels: where the client and server ran (aws-aws, aws-lh, lh-lh).
var placements = []string{
	"Client: AWS, Server: AWS",
	"Client: seclab8, Server: AWS",
	"Client: seclab8, Server: seclab8",
}

// FailureLatency is the latency of 10MiB UNSTABLE writes with and without a
// server failure injected just before COMMIT.
func FailureLatency() types.BarChartSpec {
	// [aws_aws, aws_lh, lh_lh]
	fail := []float64{5.6, 294.7, 3.5}
	noFail := []float64{1.4, 145.9, 0.3}
	return types.BarChartSpec{
		Name:           NameFailure,
		Title:          "Latency of 10MiB UNSTABLE Writes with Failure Just Before COMMIT",
		XLabel:         "Location of Client and Server",
		YLabel:         "Latency",
		CategoryLabels: append([]string(nil), placements...),
		Series: []types.Series{
			{Label: "Failure", Values: fail, ColorIndex: 0},
			{Label: "No failure", Values: noFail, ColorIndex: 1},
		},
		BarWidth: 0.35,
	}
}

// SyncLatency compares a 10MiB FILE_SYNC write to UNSTABLE writes followed by COMMIT,
// one series per placement.
func SyncLatency() types.BarChartSpec {
	// [sync, async]
	awsAWS := []float64{218.5, 1.4}
	awsLH := []float64{259.7, 145.9}
	lhLH := []float64{446.4, 0.3}
	return types.BarChartSpec{
		Name:           NameSync,
		Title:          "Latency of 10MiB write with FILE_SYNC vs UNSTABLE Writes",
		YLabel:         "Latency",
		CategoryLabels: []string{"FILE_SYNC", "UNSTABLE + Commit"},
		Series: []types.Series{
			{Label: placements[0], Values: awsAWS, ColorIndex: 0},
			{Label: placements[1], Values: awsLH, ColorIndex: 1},
			{Label: placements[2], Values: lhLH, ColorIndex: 2},
		},
		BarWidth: 0.20,
	}
}

// ScaleBandwidth is per-client bandwidth of 1MiB writes with 1..9 concurrent clients.
// The literal is ordered largest client count first.
func ScaleBandwidth() types.LineChartSpec {
	counts := make([]int, 9)
	for i := range counts {
		counts[i] = i + 1
	}
	return types.LineChartSpec{
		Name:         NameScale,
		Title:        "Total Bandwidth for 1MiB writes for Multiple Clients",
		XLabel:       "Number of clients",
		YLabel:       "Total Bandwidth (MB/s)",
		ClientCounts: counts,
		PerClient:    []float64{2.1, 2.2, 2.5, 2.7, 3.1, 3.5, 3.8, 4.6, 7.2},
		Color:        "#000000",
	}
}

// Chart is either a bar or a line chart definition.
type Chart struct {
	Bars *types.BarChartSpec
	Line *types.LineChartSpec
}

var registry = map[string]func() Chart{
	NameFailure: func() Chart { s := FailureLatency(); return Chart{Bars: &s} },
	NameSync:    func() Chart { s := SyncLatency(); return Chart{Bars: &s} },
	NameScale:   func() Chart { s := ScaleBandwidth(); return Chart{Line: &s} },
}

// Names returns the known chart names in a stable order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Lookup returns a fresh copy of the named chart definition.
func Lookup(name string) (Chart, error) {
	fn, ok := registry[name]
	if !ok {
		return Chart{}, fmt.Errorf("unknown chart %q (known: %v)", name, Names())
	}
	return fn(), nil
}
