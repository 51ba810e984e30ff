// Package braille renders a gauge scene to a colored block of unicode braille characters.
package braille

import (
	"image/color"
	"math"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/gaugeview/internal/gauge"
	"github.com/garrettladley/gaugeview/internal/tui/theme"
)

// minimum canvas: 4x2 characters
const minDots = 8

type Options struct {
	// Dots is the canvas side length in braille dots, rounded down to a multiple of 4.
	Dots       int
	RingColor  color.Color
	TickColor  color.Color
	LabelColor color.Color
}

func DefaultOptions() Options {
	return Options{
		Dots:       64,
		RingColor:  theme.ColorDim,
		TickColor:  theme.ColorWhite,
		LabelColor: theme.ColorTeal,
	}
}

// Size returns the output size in terminal cells for a canvas of dots.
func Size(dots int) (width, height int) {
	dots = normalizeDots(dots)
	return dots / 2, dots / 4
}

// DotsFor returns the largest canvas that fits in width x height terminal cells.
func DotsFor(width, height int) int {
	return normalizeDots(min(width*2, height*4))
}

func normalizeDots(dots int) int {
	return max(dots-dots%4, minDots)
}

// Render draws scene scaled to opts.Dots. rings and ticks are rasterised on separate
// canvases so ticks stay visible where they cross a ring; labels are written over the
// character grid centered on their label rect.
func Render(scene gauge.Scene, opts Options) string {
	dots := normalizeDots(opts.Dots)
	if scene.Viewport.SideLength <= 0 {
		return blank(dots)
	}
	scaled := scene.Scaled(float64(dots-1) / scene.Viewport.SideLength)

	var (
		rings  = drawille.NewCanvas()
		ticks  = drawille.NewCanvas()
		labels []placedText
	)

	for _, cmd := range scaled.Commands {
		switch cmd.Kind {
		case gauge.KindCircle:
			c := cmd.Circle
			thickCircle(&rings, round(c.Center.X), round(c.Center.Y), round(c.Radius), round(c.StrokeWidth))
		case gauge.KindLine:
			l := cmd.Line
			bresenham(&ticks, round(l.From.X), round(l.From.Y), round(l.To.X), round(l.To.Y))
		case gauge.KindText:
			labels = append(labels, placeText(cmd.Text))
		}
	}

	return compose(canvasCells(&rings, dots), canvasCells(&ticks, dots), labels, opts)
}

type placedText struct {
	row, col int
	text     []rune
}

// placeText converts a label rect center in dots to the cell its text starts in.
func placeText(t *gauge.Text) placedText {
	var (
		center = t.Rect.Center()
		runes  = []rune(t.Text)
		width  = lipgloss.Width(t.Text)
	)
	return placedText{
		row:  int(math.Floor(center.Y / 4)),
		col:  int(math.Round(center.X/2 - float64(width)/2)),
		text: runes,
	}
}

type layer uint8

const (
	layerNone layer = iota
	layerRing
	layerTick
	layerLabel
)

// compose stacks ring, tick and label layers and colors each cell by its top layer.
func compose(ringCells, tickCells [][]rune, labels []placedText, opts Options) string {
	var (
		height = len(ringCells)
		cells  = make([][]rune, height)
		layers = make([][]layer, height)
	)

	for i := range height {
		width := len(ringCells[i])
		cells[i] = make([]rune, width)
		layers[i] = make([]layer, width)
		for j := range width {
			ring, tick := ringCells[i][j], tickCells[i][j]
			switch {
			case hasDots(tick):
				cells[i][j] = combineBraille(ring, tick)
				layers[i][j] = layerTick
			case hasDots(ring):
				cells[i][j] = ring
				layers[i][j] = layerRing
			default:
				cells[i][j] = ' '
			}
		}
	}

	for _, l := range labels {
		if l.row < 0 || l.row >= height {
			continue
		}
		for k, r := range l.text {
			col := l.col + k
			if col < 0 || col >= len(cells[l.row]) {
				continue
			}
			cells[l.row][col] = r
			layers[l.row][col] = layerLabel
		}
	}

	styles := map[layer]lipgloss.Style{
		layerRing:  lipgloss.NewStyle().Foreground(opts.RingColor),
		layerTick:  lipgloss.NewStyle().Foreground(opts.TickColor),
		layerLabel: lipgloss.NewStyle().Foreground(opts.LabelColor).Bold(true),
	}

	lines := make([]string, height)
	for i := range height {
		var b strings.Builder
		// render runs of the same layer together to keep escape sequences short
		for j := 0; j < len(cells[i]); {
			k := j
			for k < len(cells[i]) && layers[i][k] == layers[i][j] {
				k++
			}
			run := string(cells[i][j:k])
			if style, ok := styles[layers[i][j]]; ok {
				b.WriteString(style.Render(run))
			} else {
				b.WriteString(run)
			}
			j = k
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func blank(dots int) string {
	w, h := dots/2, dots/4
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(" ", w)
	}
	return strings.Join(lines, "\n")
}

func round(f float64) int {
	return int(math.Round(f))
}
