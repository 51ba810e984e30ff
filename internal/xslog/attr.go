package xslog

import (
	"log/slog"
	"time"

	"github.com/garrettladley/gaugeview/internal/version"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Format(format string) slog.Attr {
	const formatKey = "format"
	return slog.String(formatKey, format)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}

func TickCount(n int) slog.Attr {
	const tickCountKey = "tick_count"
	return slog.Int(tickCountKey, n)
}

func SideLength(side float64) slog.Attr {
	const sideLengthKey = "side_length"
	return slog.Float64(sideLengthKey, side)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}
