package measure

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/garrettladley/gaugeview/internal/geom"
)

func TestBasicMeasure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		fontSize float64
		want     geom.Size
	}{
		{
			name:     "nominal size single digit",
			text:     "0",
			fontSize: 13,
			want:     geom.Size{Width: 7, Height: 13},
		},
		{
			name:     "nominal size three digits",
			text:     "160",
			fontSize: 13,
			want:     geom.Size{Width: 21, Height: 13},
		},
		{
			name:     "doubled font size",
			text:     "20",
			fontSize: 26,
			want:     geom.Size{Width: 28, Height: 26},
		},
		{
			name:     "empty text keeps line height",
			text:     "",
			fontSize: 16,
			want:     geom.Size{Width: 0, Height: 16},
		},
	}

	m := Basic()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := m.Measure(tt.text, tt.fontSize)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("Measure(%q, %v) mismatch (-want +got):\n%s", tt.text, tt.fontSize, diff)
			}
		})
	}
}

func TestMeasureScalesLinearly(t *testing.T) {
	t.Parallel()

	m := Basic()
	small := m.Measure("120", 10)
	large := m.Measure("120", 30)

	if diff := cmp.Diff(small.Width*3, large.Width, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("width not linear in font size (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(small.Height*3, large.Height, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("height not linear in font size (-want +got):\n%s", diff)
	}
}
