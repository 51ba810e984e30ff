package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/gaugeview/internal/gauge"
	"github.com/garrettladley/gaugeview/internal/render/braille"
	"github.com/garrettladley/gaugeview/internal/tui/theme"
	"github.com/garrettladley/gaugeview/internal/validator"
)

var _ tea.Model = (*Model)(nil)

// rows kept free below the gauge for the footer
const footerHeight = 2

type Deps struct {
	Settings gauge.Settings
	Viewport gauge.Viewport
	Measurer gauge.Measurer
}

type Model struct {
	ready          bool
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	deps           Deps

	// recomputed on every resize
	scene gauge.Scene
	err   error
	dots  int
}

func New(deps Deps) Model {
	return Model{
		theme: theme.New(),
		deps:  deps,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true
		m.relayout()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

// relayout lays the gauge out again in a viewport one dot per unit for the current
// terminal size. tick length and font size keep their proportion to the configured viewport.
func (m *Model) relayout() {
	m.dots = braille.DotsFor(m.viewportWidth, max(m.viewportHeight-footerHeight, 1))

	if err := validator.Validate("invalid gauge layout", m.deps.Settings, m.deps.Viewport); err != nil {
		m.scene, m.err = gauge.Scene{}, err
		return
	}

	var (
		vp = gauge.Viewport{SideLength: float64(m.dots - 1)}
		f  = vp.SideLength / m.deps.Viewport.SideLength
		s  = m.deps.Settings
	)
	s.TickLength *= f
	s.FontSize *= f
	m.scene, m.err = gauge.Layout(s, vp, m.deps.Measurer)
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	view.SetContent(lipgloss.Place(
		m.viewportWidth,
		m.viewportHeight,
		lipgloss.Center,
		lipgloss.Center,
		m.content(),
	))
	return view
}

func (m *Model) content() string {
	if m.err != nil {
		return m.theme.Error().Render(m.err.Error())
	}

	opts := braille.DefaultOptions()
	opts.Dots = m.dots
	g := braille.Render(m.scene, opts)

	footer := m.theme.Muted().
		Width(lipgloss.Width(g)).
		Align(lipgloss.Center).
		Render("q to quit")

	return lipgloss.JoinVertical(lipgloss.Center, g, "", footer)
}
