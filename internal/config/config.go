package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/gaugeview/internal/gauge"
	"github.com/garrettladley/gaugeview/internal/xslog"
)

type Config struct {
	Gauge    Gauge       `envPrefix:"GAUGE_"`
	LogLevel xslog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

type Gauge struct {
	MinValue   float64 `env:"MIN_VALUE" envDefault:"0"`
	MaxValue   float64 `env:"MAX_VALUE" envDefault:"180"`
	TickCount  int     `env:"TICK_COUNT" envDefault:"9"`
	TickLength float64 `env:"TICK_LENGTH" envDefault:"18"`
	FontSize   float64 `env:"FONT_SIZE" envDefault:"16"`
	LabelMode  string  `env:"LABEL_MODE" envDefault:"max-fraction"`
	SideLength float64 `env:"SIDE_LENGTH" envDefault:"364"`
	// canvas side of the terminal renderer, in braille dots
	BrailleDots int `env:"BRAILLE_DOTS" envDefault:"64"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

// ReadFrom parses the config from environ instead of the process environment.
func ReadFrom(environ map[string]string) (Config, error) {
	return env.ParseAsWithOptions[Config](env.Options{Environment: environ})
}

// Settings does not validate; gauge.Layout does.
func (g Gauge) Settings() gauge.Settings {
	return gauge.Settings{
		MinValue:   g.MinValue,
		MaxValue:   g.MaxValue,
		TickCount:  g.TickCount,
		TickLength: g.TickLength,
		FontSize:   g.FontSize,
		LabelMode:  gauge.LabelMode(g.LabelMode),
	}
}

func (g Gauge) Viewport() gauge.Viewport {
	return gauge.Viewport{SideLength: g.SideLength}
}
