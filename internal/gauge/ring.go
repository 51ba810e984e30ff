package gauge

import "github.com/garrettladley/gaugeview/internal/geom"

const (
	OuterStrokeWidth = 3.0
	InnerStrokeWidth = 1.0

	// ratios taken from the 364-unit design reference, so the gauge scales with the viewport.
	referenceSide   = 364.0
	InnerRingRatio  = 134.0 / referenceSide
	LabelInsetRatio = 40.0 / referenceSide
)

type RingSpec struct {
	Radius      float64 `json:"radius"`
	StrokeWidth float64 `json:"stroke_width"`
}

// OuterRing hugs the viewport edge, inset by its own stroke width.
func OuterRing(vp Viewport) RingSpec {
	return RingSpec{
		Radius:      vp.SideLength/2 - OuterStrokeWidth,
		StrokeWidth: OuterStrokeWidth,
	}
}

func InnerRing(vp Viewport) RingSpec {
	return RingSpec{
		Radius:      vp.SideLength * InnerRingRatio / 2,
		StrokeWidth: InnerStrokeWidth,
	}
}

// Command returns the full clockwise outline of the ring, starting at 0°.
func (r RingSpec) Command(center geom.Point) Command {
	return Command{
		Kind: KindCircle,
		Circle: &Circle{
			Center:      center,
			Radius:      r.Radius,
			StrokeWidth: r.StrokeWidth,
		},
	}
}
