package gauge

import (
	"github.com/garrettladley/gaugeview/internal/geom"
	"github.com/garrettladley/gaugeview/internal/validator"
)

type Kind string

const (
	KindCircle Kind = "circle"
	KindLine   Kind = "line"
	KindText   Kind = "text"
)

type Circle struct {
	Center      geom.Point `json:"center"`
	Radius      float64    `json:"radius"`
	StrokeWidth float64    `json:"stroke_width"`
}

type Line struct {
	From        geom.Point `json:"from"`
	To          geom.Point `json:"to"`
	StrokeWidth float64    `json:"stroke_width"`
}

type Text struct {
	Text     string    `json:"text"`
	Rect     geom.Rect `json:"rect"`
	FontSize float64   `json:"font_size"`
}

// Command is one primitive draw. exactly one of Circle, Line, Text is set, matching Kind.
type Command struct {
	Kind   Kind    `json:"kind"`
	Circle *Circle `json:"circle,omitempty"`
	Line   *Line   `json:"line,omitempty"`
	Text   *Text   `json:"text,omitempty"`
}

// Scene is the ordered draw list of one layout pass; later commands stack on top.
type Scene struct {
	Viewport Viewport  `json:"viewport"`
	Commands []Command `json:"commands"`
}

type Counts struct {
	Circles int
	Lines   int
	Texts   int
}

func (s Scene) Counts() Counts {
	var c Counts
	for _, cmd := range s.Commands {
		switch cmd.Kind {
		case KindCircle:
			c.Circles++
		case KindLine:
			c.Lines++
		case KindText:
			c.Texts++
		}
	}
	return c
}

// Scaled returns a copy of s with every length multiplied by f.
func (s Scene) Scaled(f float64) Scene {
	pt := func(p geom.Point) geom.Point { return geom.Point{X: p.X * f, Y: p.Y * f} }

	out := Scene{
		Viewport: Viewport{SideLength: s.Viewport.SideLength * f},
		Commands: make([]Command, len(s.Commands)),
	}
	for i, cmd := range s.Commands {
		scaled := Command{Kind: cmd.Kind}
		switch {
		case cmd.Circle != nil:
			scaled.Circle = &Circle{
				Center:      pt(cmd.Circle.Center),
				Radius:      cmd.Circle.Radius * f,
				StrokeWidth: cmd.Circle.StrokeWidth * f,
			}
		case cmd.Line != nil:
			scaled.Line = &Line{
				From:        pt(cmd.Line.From),
				To:          pt(cmd.Line.To),
				StrokeWidth: cmd.Line.StrokeWidth * f,
			}
		case cmd.Text != nil:
			r := cmd.Text.Rect
			scaled.Text = &Text{
				Text:     cmd.Text.Text,
				Rect:     geom.Rect{X: r.X * f, Y: r.Y * f, Width: r.Width * f, Height: r.Height * f},
				FontSize: cmd.Text.FontSize * f,
			}
		}
		out.Commands[i] = scaled
	}
	return out
}

type measurerCheck struct{ m Measurer }

func (c measurerCheck) Validate() map[string]string {
	if c.m == nil {
		return map[string]string{"measurer": "must not be nil"}
	}
	return nil
}

// Layout composes the rings and ticks for s in vp into one scene:
// outer ring, inner ring, tick lines, then label texts.
// invalid input yields a validation *xerrors.Error and an empty scene.
func Layout(s Settings, vp Viewport, m Measurer) (Scene, error) {
	if err := validator.Validate("invalid gauge layout", s, vp, measurerCheck{m}); err != nil {
		return Scene{}, err
	}

	var (
		center = vp.Center()
		ticks  = LayoutTicks(s, vp, m)
		cmds   = make([]Command, 0, 2+2*len(ticks))
	)

	cmds = append(cmds,
		OuterRing(vp).Command(center),
		InnerRing(vp).Command(center),
	)
	for _, t := range ticks {
		cmds = append(cmds, Command{
			Kind: KindLine,
			Line: &Line{From: t.Start, To: t.End, StrokeWidth: TickStrokeWidth},
		})
	}
	for _, t := range ticks {
		cmds = append(cmds, Command{
			Kind: KindText,
			Text: &Text{Text: t.LabelText, Rect: t.LabelRect, FontSize: s.FontSize},
		})
	}

	return Scene{Viewport: vp, Commands: cmds}, nil
}
