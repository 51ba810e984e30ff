package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/gaugeview/internal/gauge"
	"github.com/garrettladley/gaugeview/internal/geom"
)

var fixedMeasurer = gauge.MeasureFunc(func(text string, fontSize float64) geom.Size {
	return geom.Size{Width: float64(len(text)) * fontSize / 2, Height: fontSize}
})

func TestWrite_ElementCounts(t *testing.T) {
	t.Parallel()

	scene, err := gauge.Layout(gauge.DefaultSettings(), gauge.Viewport{SideLength: 364}, fixedMeasurer)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, scene); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var (
		counts  = map[string]int{}
		texts   []string
		viewBox string
		dec     = xml.NewDecoder(&buf)
		inText  bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("invalid xml: %v", err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			counts[tok.Name.Local]++
			inText = tok.Name.Local == "text"
			if tok.Name.Local == "svg" {
				for _, a := range tok.Attr {
					if a.Name.Local == "viewBox" {
						viewBox = a.Value
					}
				}
			}
		case xml.CharData:
			if inText {
				texts = append(texts, string(tok))
			}
		case xml.EndElement:
			inText = false
		}
	}

	if diff := cmp.Diff(map[string]int{"svg": 1, "circle": 2, "line": 9, "text": 9}, counts); diff != "" {
		t.Errorf("element counts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"0", "20", "40", "60", "80", "100", "120", "140", "160"}, texts); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if viewBox != "0 0 364 364" {
		t.Errorf("viewBox = %q, want %q", viewBox, "0 0 364 364")
	}
}

func TestNum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{364, "364"},
		{179.5, "179.5"},
		{55.42612, "55.426"},
		{-0.0001, "0"},
		{0, "0"},
		{-12.25, "-12.25"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
