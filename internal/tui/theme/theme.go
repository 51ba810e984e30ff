package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme is the preview's palette: the gauge colors live in braille.Options, the
// chrome around it lives here.
type Theme struct {
	background color.Color
	muted      lipgloss.Style
	err        lipgloss.Style
}

func New() Theme {
	return Theme{
		background: ColorBgDark,
		muted:      lipgloss.NewStyle().Foreground(ColorDim),
		err:        lipgloss.NewStyle().Foreground(ColorError).Bold(true),
	}
}

// Muted styles secondary text such as the footer.
func (t Theme) Muted() lipgloss.Style { return t.muted }

func (t Theme) Error() lipgloss.Style { return t.err }

func (t Theme) Background() color.Color { return t.background }
