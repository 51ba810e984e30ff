package tui

import (
	"math"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/gaugeview/internal/gauge"
	"github.com/garrettladley/gaugeview/internal/geom"
	"github.com/garrettladley/gaugeview/internal/measure"
	"github.com/garrettladley/gaugeview/internal/render/braille"
	"github.com/garrettladley/gaugeview/internal/xerrors"
)

func newModel(settings gauge.Settings) Model {
	return New(Deps{
		Settings: settings,
		Viewport: gauge.Viewport{SideLength: 364},
		Measurer: measure.Basic(),
	})
}

func TestModel_RelayoutOnResize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		width    int
		height   int
		wantDots int
	}{
		{"wide terminal limited by height", 120, 30, 112},
		{"tall terminal limited by width", 40, 60, 80},
		{"tiny terminal clamps", 3, 3, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newModel(gauge.DefaultSettings())
			m.Update(tea.WindowSizeMsg{Width: tt.width, Height: tt.height})

			if !m.ready {
				t.Fatal("model not ready after WindowSizeMsg")
			}
			if m.err != nil {
				t.Fatalf("relayout error = %v", m.err)
			}
			if m.dots != tt.wantDots {
				t.Errorf("dots = %d, want %d", m.dots, tt.wantDots)
			}
			if got := m.scene.Counts(); got != (gauge.Counts{Circles: 2, Lines: 9, Texts: 9}) {
				t.Errorf("scene counts = %+v", got)
			}
			if got, want := m.scene.Viewport.SideLength, float64(tt.wantDots-1); got != want {
				t.Errorf("scene side = %v, want %v", got, want)
			}
		})
	}
}

func TestModel_RelayoutKeepsProportions(t *testing.T) {
	t.Parallel()

	m := newModel(gauge.DefaultSettings())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	first := m.scene

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 60})
	second := m.scene

	if first.Viewport == second.Viewport {
		t.Fatalf("viewport unchanged across resize: %+v", first.Viewport)
	}

	for _, scene := range []gauge.Scene{first, second} {
		var (
			side = scene.Viewport.SideLength
			f    = side / 364
		)
		for _, cmd := range scene.Commands {
			switch cmd.Kind {
			case gauge.KindLine:
				if got, want := geom.Distance(cmd.Line.From, cmd.Line.To), 18*f; math.Abs(got-want) > 1e-9 {
					t.Errorf("side %v: tick length = %v, want %v", side, got, want)
				}
			case gauge.KindText:
				if got, want := cmd.Text.FontSize, 16*f; math.Abs(got-want) > 1e-9 {
					t.Errorf("side %v: font size = %v, want %v", side, got, want)
				}
			}
		}
	}
}

func TestModel_InvalidViewport(t *testing.T) {
	t.Parallel()

	m := New(Deps{
		Settings: gauge.DefaultSettings(),
		Viewport: gauge.Viewport{},
		Measurer: measure.Basic(),
	})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	if !xerrors.IsValidation(m.err) {
		t.Fatalf("err = %v, want validation error", m.err)
	}
}

func TestModel_ContentShowsGauge(t *testing.T) {
	t.Parallel()

	m := newModel(gauge.DefaultSettings())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	out := braille.StripANSI(m.content())
	for _, label := range []string{"80", "160", "q to quit"} {
		if !strings.Contains(out, label) {
			t.Errorf("content missing %q:\n%s", label, out)
		}
	}
}

func TestModel_InvalidSettings(t *testing.T) {
	t.Parallel()

	s := gauge.DefaultSettings()
	s.TickCount = 1
	m := newModel(s)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	if !xerrors.IsValidation(m.err) {
		t.Fatalf("err = %v, want validation error", m.err)
	}
	if out := braille.StripANSI(m.content()); !strings.Contains(out, "tick_count") {
		t.Errorf("content = %q, want the failing field", out)
	}
}

func TestModel_ViewBeforeResize(t *testing.T) {
	t.Parallel()

	m := newModel(gauge.DefaultSettings())
	v := m.View()
	if !v.AltScreen {
		t.Error("view should use the alt screen")
	}
	if m.ready {
		t.Error("model ready before any WindowSizeMsg")
	}
}
