package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/gaugeview/internal/gauge"
	"github.com/garrettladley/gaugeview/internal/xslog"
)

func TestReadFrom_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := ReadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}

	if diff := cmp.Diff(gauge.DefaultSettings(), cfg.Gauge.Settings()); diff != "" {
		t.Errorf("default settings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(gauge.Viewport{SideLength: 364}, cfg.Gauge.Viewport()); diff != "" {
		t.Errorf("default viewport mismatch (-want +got):\n%s", diff)
	}
	if cfg.Gauge.BrailleDots != 64 {
		t.Errorf("BrailleDots = %d, want 64", cfg.Gauge.BrailleDots)
	}
	if cfg.LogLevel != xslog.LevelInfo {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestReadFrom_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := ReadFrom(map[string]string{
		"GAUGE_MIN_VALUE":   "-40",
		"GAUGE_MAX_VALUE":   "120",
		"GAUGE_TICK_COUNT":  "5",
		"GAUGE_TICK_LENGTH": "12.5",
		"GAUGE_FONT_SIZE":   "11",
		"GAUGE_LABEL_MODE":  "range",
		"GAUGE_SIDE_LENGTH": "512",
		"LOG_LEVEL":         "DEBUG",
	})
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}

	want := gauge.Settings{
		MinValue:   -40,
		MaxValue:   120,
		TickCount:  5,
		TickLength: 12.5,
		FontSize:   11,
		LabelMode:  gauge.LabelModeRange,
	}
	if diff := cmp.Diff(want, cfg.Gauge.Settings()); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
	if cfg.Gauge.SideLength != 512 {
		t.Errorf("SideLength = %v, want 512", cfg.Gauge.SideLength)
	}
	if cfg.LogLevel != xslog.LevelDebug {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestReadFrom_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"tick count not a number", map[string]string{"GAUGE_TICK_COUNT": "nine"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ReadFrom(tt.environ); err == nil {
				t.Error("ReadFrom() error = nil, want parse error")
			}
		})
	}
}
