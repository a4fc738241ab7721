package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mark-i-m/zippynfs/src/app"
	"github.com/mark-i-m/zippynfs/src/config"
	"github.com/mark-i-m/zippynfs/src/dataset"
	"github.com/mark-i-m/zippynfs/src/describe"
	"github.com/mark-i-m/zippynfs/src/logging"
	"github.com/mark-i-m/zippynfs/src/render"
)

type flags struct {
	backend  string
	format   string
	width    int
	height   int
	out      string
	hints    bool
	logLevel string
	envFile  string
	yaml     bool
}

// cli holds the resolved configuration shared by every subcommand.
type cli struct {
	f      flags
	cfg    *config.Config
	stdout io.Writer
	show   app.ShowFunc
}

func newRootCmd(stdout io.Writer, show app.ShowFunc) *cobra.Command {
	c := &cli{stdout: stdout, show: show}
	def := render.DefaultOptions()

	root := &cobra.Command{
		Use:   "zippyplots",
		Short: "Render the zippynfs benchmark charts",
		Long: `zippyplots renders the zippynfs evaluation charts: write latency with and
without a server failure, FILE_SYNC vs UNSTABLE writes, and bandwidth scaling
with concurrent clients.

Without --out the charts open in a window; with --out they are written to files.

Environment Variables:
  ZIPPYPLOTS_BACKEND, ZIPPYPLOTS_FORMAT, ZIPPYPLOTS_WIDTH, ZIPPYPLOTS_HEIGHT,
  ZIPPYPLOTS_OUT, ZIPPYPLOTS_HINTS, ZIPPYPLOTS_LOG_LEVEL (flags take precedence)`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.resolve,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&c.f.backend, "backend", def.Backend, "plotting backend: gochart or gonum")
	pf.StringVar(&c.f.format, "format", def.Format, "output format: png or svg")
	pf.IntVar(&c.f.width, "width", def.Width, "image width in pixels (height follows unless --height is set)")
	pf.IntVar(&c.f.height, "height", def.Height, "image height in pixels")
	pf.StringVar(&c.f.out, "out", "", "write charts into this directory instead of opening a window")
	pf.BoolVar(&c.f.hints, "hints", false, "stamp a short caption on PNG charts")
	pf.StringVar(&c.f.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&c.f.envFile, "env-file", ".env", "optional dotenv file with ZIPPYPLOTS_* defaults")

	for _, name := range []string{dataset.NameFailure, dataset.NameSync, dataset.NameScale} {
		root.AddCommand(c.chartCmd(name))
	}
	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Render every chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), dataset.Names())
		},
	})

	desc := &cobra.Command{
		Use:   "describe [chart...]",
		Short: "Print chart geometry without rendering",
		Long:  "Print bar positions, ticks, limits and colors. Charts default to all of them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = dataset.Names()
			}
			if c.f.yaml {
				return describe.YAML(c.stdout, names)
			}
			return describe.Summary(c.stdout, names)
		},
	}
	desc.Flags().BoolVar(&c.f.yaml, "yaml", false, "dump full geometry as YAML")
	root.AddCommand(desc)
	return root
}

var chartShort = map[string]string{
	dataset.NameFailure: "Latency of UNSTABLE writes with and without a failure before COMMIT",
	dataset.NameSync:    "Latency of FILE_SYNC vs UNSTABLE writes per placement",
	dataset.NameScale:   "Total bandwidth for 1..9 concurrent clients",
}

func (c *cli) chartCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: chartShort[name],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), []string{name})
		},
	}
}

// resolve loads env defaults then applies the flags the user actually set.
func (c *cli) resolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.f.envFile)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("backend") {
		cfg.Render.Backend = c.f.backend
	}
	if fl.Changed("format") {
		cfg.Render.Format = c.f.format
	}
	if fl.Changed("width") {
		cfg.Render.Width, cfg.Render.Height = render.ChartDimensions(c.f.width)
	}
	if fl.Changed("height") {
		cfg.Render.Height = c.f.height
	}
	if fl.Changed("out") {
		cfg.OutDir = c.f.out
	}
	if fl.Changed("hints") {
		cfg.Render.Hints = c.f.hints
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = c.f.logLevel
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	logging.Debugf("config: %+v out=%q", cfg.Render, cfg.OutDir)
	c.cfg = cfg
	return nil
}

func (c *cli) run(ctx context.Context, names []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	r := app.NewRunner(c.cfg, c.stdout)
	if c.show != nil {
		r.Show = c.show
	}
	return r.Run(ctx, names)
}

func execute(args []string, stdout, stderr io.Writer, show app.ShowFunc) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(stdout, show)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
