// Package svg writes a gauge scene as a standalone SVG document.
package svg

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"

	"github.com/garrettladley/gaugeview/internal/gauge"
)

const stroke = "#000000"

func Write(w io.Writer, scene gauge.Scene) error {
	bw := bufio.NewWriter(w)
	side := num(scene.Viewport.SideLength)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n", side, side, side, side)
	for _, cmd := range scene.Commands {
		switch cmd.Kind {
		case gauge.KindCircle:
			c := cmd.Circle
			fmt.Fprintf(bw, `  <circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
				num(c.Center.X), num(c.Center.Y), num(c.Radius), stroke, num(c.StrokeWidth))
		case gauge.KindLine:
			l := cmd.Line
			fmt.Fprintf(bw, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
				num(l.From.X), num(l.From.Y), num(l.To.X), num(l.To.Y), stroke, num(l.StrokeWidth))
		case gauge.KindText:
			t := cmd.Text
			center := t.Rect.Center()
			fmt.Fprintf(bw, `  <text x="%s" y="%s" font-size="%s" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
				num(center.X), num(center.Y), num(t.FontSize), stroke, html.EscapeString(t.Text))
		}
	}
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

// num prints f with at most 3 decimals and no trailing zeros.
func num(f float64) string {
	s := strconv.FormatFloat(f, 'f', 3, 64)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "-0" {
		return "0"
	}
	return s
}
