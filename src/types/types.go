// Package types holds the chart input definitions shared by the dataset,
// layout and render packages.
package types

// Series is one named, ordered sequence of values plotted as one set of bars.
// Color is either a palette index (ColorIndex) or an explicit hex string (Color);
// an explicit Color wins when both are set.
type Series struct {
	Label      string    `yaml:"label"`
	Values     []float64 `yaml:"values"`
	ColorIndex int       `yaml:"color_index"`
	Color      string    `yaml:"color,omitempty"`
}

// BarChartSpec configures a grouped bar chart on a logarithmic latency axis.
// Values are seconds; bars of one category are placed side by side, BarWidth apart.
type BarChartSpec struct {
	Name           string   `yaml:"name"`
	Title          string   `yaml:"title"`
	XLabel         string   `yaml:"x_label,omitempty"`
	YLabel         string   `yaml:"y_label,omitempty"`
	CategoryLabels []string `yaml:"category_labels"`
	Series         []Series `yaml:"series"`
	BarWidth       float64  `yaml:"bar_width"`
}

// LineChartSpec configures the bandwidth scaling chart.
// PerClient is stored largest-client-count-first, the way the measurements were logged;
// it is reversed before being paired with ClientCounts (ascending).
type LineChartSpec struct {
	Name         string    `yaml:"name"`
	Title        string    `yaml:"title"`
	XLabel       string    `yaml:"x_label"`
	YLabel       string    `yaml:"y_label"`
	ClientCounts []int     `yaml:"client_counts"`
	PerClient    []float64 `yaml:"per_client"`
	Color        string    `yaml:"color"`
}
