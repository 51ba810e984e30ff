// Package raster renders a gauge scene to an RGBA image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/garrettladley/gaugeview/internal/gauge"
	"github.com/garrettladley/gaugeview/internal/geom"
	"github.com/garrettladley/gaugeview/internal/xerrors"
)

// circles are flattened to this many segments per full turn
const circleSegments = 180

// MaxSide is the largest viewport side, in pixels, Render will allocate an image for.
const MaxSide = 8192

var ink = image.NewUniform(color.Black)

// Render rasterises scene at one pixel per viewport unit on a transparent background.
// a viewport larger than MaxSide is a validation error.
func Render(scene gauge.Scene) (*image.RGBA, error) {
	sideLength := math.Ceil(scene.Viewport.SideLength)
	if math.IsNaN(sideLength) || sideLength > MaxSide {
		return nil, xerrors.Validation(
			map[string]string{"side_length": fmt.Sprintf("must be at most %d for raster output", MaxSide)},
			xerrors.WithMessage("scene too large to rasterise"),
		)
	}
	if sideLength <= 0 {
		return image.NewRGBA(image.Rectangle{}), nil
	}
	side := int(sideLength)
	img := image.NewRGBA(image.Rect(0, 0, side, side))

	z := vector.NewRasterizer(side, side)
	for _, cmd := range scene.Commands {
		switch cmd.Kind {
		case gauge.KindCircle:
			strokeCircle(z, cmd.Circle)
		case gauge.KindLine:
			strokeLine(z, cmd.Line)
		}
	}
	z.Draw(img, img.Bounds(), ink, image.Point{})

	for _, cmd := range scene.Commands {
		if cmd.Kind == gauge.KindText {
			drawText(img, cmd.Text)
		}
	}
	return img, nil
}

func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// strokeCircle adds an annulus centered on the circle's radius. the outer edge winds
// clockwise and the inner edge counter-clockwise so the hole stays empty.
func strokeCircle(z *vector.Rasterizer, c *gauge.Circle) {
	half := c.StrokeWidth / 2
	outer := c.Radius + half
	inner := math.Max(c.Radius-half, 0)

	polygon(z, circlePoints(c.Center, outer, false))
	if inner > 0 {
		polygon(z, circlePoints(c.Center, inner, true))
	}
}

func circlePoints(center geom.Point, radius float64, reverse bool) []geom.Point {
	pts := make([]geom.Point, circleSegments)
	for i := range circleSegments {
		angle := 360 * float64(i) / circleSegments
		if reverse {
			angle = -angle
		}
		pts[i] = geom.PointOnCircle(center, radius, angle)
	}
	return pts
}

// strokeLine adds the quad covering a line of the given width with butt caps.
func strokeLine(z *vector.Rasterizer, l *gauge.Line) {
	dx, dy := l.To.X-l.From.X, l.To.Y-l.From.Y
	length := geom.Distance(l.From, l.To)
	if length == 0 {
		return
	}
	// perpendicular offset of half the stroke width
	px := -dy / length * l.StrokeWidth / 2
	py := dx / length * l.StrokeWidth / 2

	// wound clockwise like the outer edge of a ring, so overlaps do not cancel
	polygon(z, []geom.Point{
		{X: l.From.X - px, Y: l.From.Y - py},
		{X: l.To.X - px, Y: l.To.Y - py},
		{X: l.To.X + px, Y: l.To.Y + py},
		{X: l.From.X + px, Y: l.From.Y + py},
	})
}

func polygon(z *vector.Rasterizer, pts []geom.Point) {
	if len(pts) == 0 {
		return
	}
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

// drawText draws the label at the face's native size, then scales it into its rect.
func drawText(dst *image.RGBA, t *gauge.Text) {
	var (
		face    = basicfont.Face7x13
		advance = font.MeasureString(face, t.Text).Ceil()
		height  = face.Metrics().Height.Ceil()
	)
	if advance == 0 || t.Rect.Width <= 0 || t.Rect.Height <= 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, advance, height))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  ink,
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(t.Text)

	target := image.Rect(
		int(math.Round(t.Rect.X)),
		int(math.Round(t.Rect.Y)),
		int(math.Round(t.Rect.X+t.Rect.Width)),
		int(math.Round(t.Rect.Y+t.Rect.Height)),
	)
	xdraw.BiLinear.Scale(dst, target, glyphs, glyphs.Bounds(), draw.Over, nil)
}
