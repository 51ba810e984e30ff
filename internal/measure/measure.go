// Package measure provides text measurers for gauge layout backed by x/image font faces.
package measure

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/garrettladley/gaugeview/internal/gauge"
	"github.com/garrettladley/gaugeview/internal/geom"
)

var _ gauge.Measurer = (*Face)(nil)

// Face measures text with a fixed-size font face and scales the result linearly
// from the face's nominal size to the requested font size.
type Face struct {
	face    font.Face
	nominal float64
}

// New wraps face, whose glyphs are drawn at nominal units per em.
func New(face font.Face, nominal float64) *Face {
	return &Face{face: face, nominal: nominal}
}

// Basic measures with basicfont.Face7x13, the face the raster backend draws labels with.
func Basic() *Face {
	return New(basicfont.Face7x13, float64(basicfont.Face7x13.Height))
}

func (f *Face) Measure(text string, fontSize float64) geom.Size {
	var (
		scale   = fontSize / f.nominal
		advance = font.MeasureString(f.face, text)
		height  = f.face.Metrics().Height
	)
	return geom.Size{
		Width:  fixedToFloat(advance) * scale,
		Height: fixedToFloat(height) * scale,
	}
}

// fixedToFloat converts a 26.6 fixed point value without rounding to whole pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
