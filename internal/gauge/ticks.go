package gauge

import (
	"math"
	"strconv"

	"github.com/garrettladley/gaugeview/internal/geom"
)

const TickStrokeWidth = 1.0

type TickRecord struct {
	Index        int        `json:"index"`
	AngleDegrees float64    `json:"angle_degrees"`
	Start        geom.Point `json:"start"`
	End          geom.Point `json:"end"`
	LabelText    string     `json:"label_text"`
	LabelCenter  geom.Point `json:"label_center"`
	LabelRect    geom.Rect  `json:"label_rect"`
}

// GaugeRadius is where ticks are anchored, just inside the outer ring.
func GaugeRadius(vp Viewport) float64 {
	return vp.SideLength/2 - OuterStrokeWidth
}

// LabelValue returns the integer label for tick index under s.LabelMode.
func LabelValue(s Settings, index int) int {
	switch s.LabelMode {
	case LabelModeRange:
		step := (s.MaxValue - s.MinValue) / float64(s.TickCount-1)
		if index == s.TickCount-1 {
			return int(math.Floor(s.MaxValue))
		}
		return int(math.Floor(s.MinValue + float64(index)*step))
	default:
		return int(math.Floor(s.MaxValue/float64(s.TickCount))) * index
	}
}

// LayoutTicks places s.TickCount ticks and their labels on the gauge arc.
// records are in index order, which is angular order from StartAngle to StopAngle.
// s and vp must be valid.
func LayoutTicks(s Settings, vp Viewport, m Measurer) []TickRecord {
	var (
		center      = vp.Center()
		gaugeRadius = GaugeRadius(vp)
		labelRadius = gaugeRadius - vp.SideLength*LabelInsetRatio
		records     = make([]TickRecord, s.TickCount)
	)

	for i := range s.TickCount {
		angle := geom.AngleForTickIndex(i, s.TickCount, geom.StartAngle, geom.StopAngle)
		text := strconv.Itoa(LabelValue(s, i))
		labelCenter := geom.PointOnCircle(center, labelRadius, angle)

		records[i] = TickRecord{
			Index:        i,
			AngleDegrees: angle,
			Start:        geom.PointOnCircle(center, gaugeRadius-s.TickLength, angle),
			End:          geom.PointOnCircle(center, gaugeRadius, angle),
			LabelText:    text,
			LabelCenter:  labelCenter,
			LabelRect:    geom.RectCenteredAt(labelCenter, m.Measure(text, s.FontSize)),
		}
	}
	return records
}
