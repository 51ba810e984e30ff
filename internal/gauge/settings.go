package gauge

import (
	"fmt"
	"math"

	"github.com/garrettladley/gaugeview/internal/geom"
)

// LabelMode selects how a tick's label value is derived from the settings.
type LabelMode string

var _ fmt.Stringer = (*LabelMode)(nil)

const (
	// LabelModeMaxFraction labels tick i with floor(MaxValue/TickCount)*i and ignores MinValue.
	LabelModeMaxFraction LabelMode = "max-fraction"
	// LabelModeRange spreads labels evenly from MinValue to MaxValue.
	LabelModeRange LabelMode = "range"
)

func ParseLabelMode(s string) (LabelMode, error) {
	switch m := LabelMode(s); m {
	case LabelModeMaxFraction, LabelModeRange:
		return m, nil
	default:
		return "", fmt.Errorf("invalid label mode: %q (valid: %s, %s)", s, LabelModeMaxFraction, LabelModeRange)
	}
}

func (m LabelMode) String() string { return string(m) }

type Settings struct {
	MinValue   float64   `json:"min_value"`
	MaxValue   float64   `json:"max_value"`
	TickCount  int       `json:"tick_count"`
	TickLength float64   `json:"tick_length"`
	FontSize   float64   `json:"font_size"`
	LabelMode  LabelMode `json:"label_mode"`
}

func DefaultSettings() Settings {
	return Settings{
		MinValue:   0,
		MaxValue:   180,
		TickCount:  9,
		TickLength: 18,
		FontSize:   16,
		LabelMode:  LabelModeMaxFraction,
	}
}

// MaxValueMagnitude bounds |MinValue| and |MaxValue| so every label value is an exact integer.
const MaxValueMagnitude = 1 << 53

func (s Settings) Validate() map[string]string {
	errs := make(map[string]string)
	switch {
	case !finite(s.MinValue):
		errs["min_value"] = "must be finite"
	case math.Abs(s.MinValue) > MaxValueMagnitude:
		errs["min_value"] = "must be between -2^53 and 2^53"
	}
	switch {
	case !finite(s.MaxValue):
		errs["max_value"] = "must be finite"
	case math.Abs(s.MaxValue) > MaxValueMagnitude:
		errs["max_value"] = "must be between -2^53 and 2^53"
	case finite(s.MinValue) && s.MaxValue <= s.MinValue:
		errs["max_value"] = "must be greater than min_value"
	}
	if s.TickCount < 2 {
		errs["tick_count"] = "must be at least 2"
	}
	if !finite(s.TickLength) || s.TickLength <= 0 {
		errs["tick_length"] = "must be positive"
	}
	if !finite(s.FontSize) || s.FontSize <= 0 {
		errs["font_size"] = "must be positive"
	}
	if _, err := ParseLabelMode(string(s.LabelMode)); err != nil {
		errs["label_mode"] = err.Error()
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Viewport is the square the gauge is laid out in. origin top-left, y-down.
type Viewport struct {
	SideLength float64 `json:"side_length"`
}

func (v Viewport) Center() geom.Point {
	return geom.Point{X: v.SideLength / 2, Y: v.SideLength / 2}
}

func (v Viewport) Validate() map[string]string {
	if !finite(v.SideLength) || v.SideLength <= 0 {
		return map[string]string{"side_length": "must be positive"}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
