package braille

import (
	"strings"

	drawille "github.com/exrook/drawille-go"
)

// midpointCircle draws a full circle outline using the midpoint circle algorithm.
// integer arithmetic keeps the outline gap-free.
// see: https://en.wikipedia.org/wiki/Midpoint_circle_algorithm
func midpointCircle(canvas *drawille.Canvas, cx, cy, radius int) {
	if radius <= 0 {
		canvas.Set(cx, cy)
		return
	}

	x := radius
	y := 0
	d := 1 - radius // decision parameter

	for x >= y {
		// the 8 symmetric points of a circle
		canvas.Set(cx+x, cy+y)
		canvas.Set(cx+y, cy+x)
		canvas.Set(cx-y, cy+x)
		canvas.Set(cx-x, cy+y)
		canvas.Set(cx-x, cy-y)
		canvas.Set(cx-y, cy-x)
		canvas.Set(cx+y, cy-x)
		canvas.Set(cx+x, cy-y)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// thickCircle strokes inward from radius, one dot ring per unit of thickness.
func thickCircle(canvas *drawille.Canvas, cx, cy, radius, thickness int) {
	for t := range max(thickness, 1) {
		r := radius - t
		if r < 0 {
			return
		}
		midpointCircle(canvas, cx, cy, r)
	}
}

// bresenham draws a line between two dots.
func bresenham(canvas *drawille.Canvas, x1, y1, x2, y2 int) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := sign(x2-x1), sign(y2-y1)
	e := dx + dy

	for {
		canvas.Set(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

// canvasCells extracts the canvas as a grid of exactly charHeight rows of charWidth runes.
// each braille char is 2 dots wide, 4 dots tall.
func canvasCells(canvas *drawille.Canvas, dots int) [][]rune {
	var (
		charWidth  = dots / 2
		charHeight = dots / 4
		rows       = canvas.Rows(0, 0, dots, dots)
		cells      = make([][]rune, charHeight)
	)

	for i := range charHeight {
		line := make([]rune, charWidth)
		for j := range line {
			line[j] = ' '
		}
		if i < len(rows) {
			for j, r := range []rune(rows[i]) {
				if j >= charWidth {
					break
				}
				line[j] = r
			}
		}
		cells[i] = line
	}
	return cells
}

const (
	emptyBraille rune = '\u2800'
	ansiEscape   rune = '\x1b'
)

// hasDots returns true if r is a braille character with at least one dot raised
func hasDots(r rune) bool {
	return r > emptyBraille && r <= 0x28FF
}

// combineBraille ORs the dots of two braille characters together
func combineBraille(a, b rune) rune {
	if !hasDots(a) {
		a = emptyBraille
	}
	if !hasDots(b) {
		b = emptyBraille
	}
	return emptyBraille + ((a - emptyBraille) | (b - emptyBraille))
}

// StripANSI removes ANSI escape sequences from a string.
func StripANSI(s string) string {
	var (
		result   strings.Builder
		inEscape = false
	)

	for _, r := range s {
		if r == ansiEscape {
			inEscape = true
			continue
		}
		if inEscape {
			if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
