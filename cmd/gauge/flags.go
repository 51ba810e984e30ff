package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettladley/gaugeview/internal/config"
	"github.com/garrettladley/gaugeview/internal/gauge"
	"github.com/garrettladley/gaugeview/internal/xslog"
)

// gaugeFlags are persistent flags that override the environment config when set.
type gaugeFlags struct {
	minValue   float64
	maxValue   float64
	tickCount  int
	tickLength float64
	fontSize   float64
	labelMode  string
	sideLength float64
}

func bindGaugeFlags(cmd *cobra.Command) *gaugeFlags {
	f := &gaugeFlags{}
	pf := cmd.PersistentFlags()
	pf.Float64Var(&f.minValue, "min", 0, "minimum gauge value")
	pf.Float64Var(&f.maxValue, "max", 0, "maximum gauge value")
	pf.IntVar(&f.tickCount, "ticks", 0, "number of major ticks (at least 2)")
	pf.Float64Var(&f.tickLength, "tick-length", 0, "tick length in viewport units")
	pf.Float64Var(&f.fontSize, "font-size", 0, "label font size in viewport units")
	pf.StringVar(&f.labelMode, "label-mode", "", "label formula: max-fraction or range")
	pf.Float64Var(&f.sideLength, "side", 0, "viewport side length")
	return f
}

// env is the resolved input of a command: config from the environment with flag overrides applied.
type env struct {
	cfg      config.Config
	settings gauge.Settings
	viewport gauge.Viewport
	logger   *slog.Logger
}

func (f *gaugeFlags) resolve(cmd *cobra.Command) (env, error) {
	cfg, err := config.Read()
	if err != nil {
		return env{}, fmt.Errorf("failed to read config: %w", err)
	}

	changed := cmd.Flags().Changed
	g := &cfg.Gauge
	if changed("min") {
		g.MinValue = f.minValue
	}
	if changed("max") {
		g.MaxValue = f.maxValue
	}
	if changed("ticks") {
		g.TickCount = f.tickCount
	}
	if changed("tick-length") {
		g.TickLength = f.tickLength
	}
	if changed("font-size") {
		g.FontSize = f.fontSize
	}
	if changed("label-mode") {
		g.LabelMode = f.labelMode
	}
	if changed("side") {
		g.SideLength = f.sideLength
	}

	logger := xslog.NewLogger(os.Stderr, cfg.LogLevel).With(xslog.Version())
	cmd.SetContext(xslog.WithLogger(contextOf(cmd), logger))

	return env{
		cfg:      cfg,
		settings: g.Settings(),
		viewport: g.Viewport(),
		logger:   logger,
	}, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
