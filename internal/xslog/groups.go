package xslog

import (
	"fmt"
	"log/slog"

	"github.com/garrettladley/gaugeview/internal/gauge"
	"github.com/garrettladley/gaugeview/internal/xerrors"
)

const (
	groupSettings = "settings"
	groupScene    = "scene"
	groupError    = "error"
)

const (
	keyMinValue   = "min_value"
	keyMaxValue   = "max_value"
	keyTickLength = "tick_length"
	keyFontSize   = "font_size"
	keyLabelMode  = "label_mode"
	keyCircles    = "circles"
	keyLines      = "lines"
	keyTexts      = "texts"
	keyMessage    = "message"
	keyType       = "type"
	keyKind       = "kind"
	keyFields     = "fields"
)

func SettingsGroup(s gauge.Settings) slog.Attr {
	return slog.Group(groupSettings,
		slog.Float64(keyMinValue, s.MinValue),
		slog.Float64(keyMaxValue, s.MaxValue),
		TickCount(s.TickCount),
		slog.Float64(keyTickLength, s.TickLength),
		slog.Float64(keyFontSize, s.FontSize),
		slog.String(keyLabelMode, s.LabelMode.String()),
	)
}

func SceneGroup(scene gauge.Scene) slog.Attr {
	c := scene.Counts()
	return slog.Group(groupScene,
		SideLength(scene.Viewport.SideLength),
		slog.Int(keyCircles, c.Circles),
		slog.Int(keyLines, c.Lines),
		slog.Int(keyTexts, c.Texts),
	)
}

// ErrorGroup describes err; validation errors carry their field messages.
func ErrorGroup(err error) slog.Attr {
	if err == nil {
		return slog.Group(groupError)
	}
	attrs := []any{
		slog.String(keyMessage, err.Error()),
		slog.String(keyType, fmt.Sprintf("%T", err)),
	}
	if xe := xerrors.As(err); xe != nil {
		attrs = append(attrs, slog.String(keyKind, string(xe.Kind)))
		if len(xe.Fields) > 0 {
			attrs = append(attrs, slog.Any(keyFields, xe.Fields))
		}
	}
	return slog.Group(groupError, attrs...)
}
