package geom

import "math"

const (
	// angles are in degrees on a y-down plane: 0°=right(3 o'clock), 90°=down(6 o'clock).
	// the gauge arc starts bottom-left and sweeps clockwise through the top to bottom-right,
	// leaving a 90° gap centered on 6 o'clock.
	StartAngle = 135.0
	StopAngle  = 405.0
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// RectCenteredAt returns the rect of the given size whose center is c.
func RectCenteredAt(c Point, s Size) Rect {
	return Rect{
		X:      c.X - s.Width/2,
		Y:      c.Y - s.Height/2,
		Width:  s.Width,
		Height: s.Height,
	}
}

func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PointOnCircle returns the point at radius from center along angleDegrees.
func PointOnCircle(center Point, radius, angleDegrees float64) Point {
	sin, cos := math.Sincos(DegreesToRadians(angleDegrees))
	return Point{
		X: center.X + radius*cos,
		Y: center.Y + radius*sin,
	}
}

// AngleForTickIndex linearly spreads tickCount ticks over [start, stop].
// index 0 maps to start and index tickCount-1 maps exactly to stop.
// panics if tickCount < 2; callers validate first.
func AngleForTickIndex(index, tickCount int, start, stop float64) float64 {
	if tickCount < 2 {
		panic("geom: tick count must be at least 2")
	}
	if index == tickCount-1 {
		return stop
	}
	step := (stop - start) / float64(tickCount-1)
	return start + float64(index)*step
}
