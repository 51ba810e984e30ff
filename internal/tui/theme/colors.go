package theme

import "charm.land/lipgloss/v2"

var (
	ColorWhite  = lipgloss.Color("#FFFFFF") // tick marks
	ColorDim    = lipgloss.Color("#666666") // rings, footer
	ColorTeal   = lipgloss.Color("#00F19F") // tick labels
	ColorError  = lipgloss.Color("#FF0026") // validation errors
	ColorBgDark = lipgloss.Color("#101518") // preview background
)
