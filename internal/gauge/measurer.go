package gauge

import "github.com/garrettladley/gaugeview/internal/geom"

// Measurer reports the rendered size of text at a font size, in viewport units.
type Measurer interface {
	Measure(text string, fontSize float64) geom.Size
}

type MeasureFunc func(text string, fontSize float64) geom.Size

func (f MeasureFunc) Measure(text string, fontSize float64) geom.Size {
	return f(text, fontSize)
}
