package core

import "fmt"

// RGB is a 24-bit color. Colors are cosmetic and never affect gameplay.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color in "#rrggbb" form, as accepted by lipgloss.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsZero reports whether the color is unset. Unset cells render with the terminal default.
func (c RGB) IsZero() bool {
	return c == RGB{}
}

// Named colors used by the renderer.
var (
	ColorDefault   = RGB{}
	ColorDarkGreen = RGB{0x00, 0x64, 0x00}
	ColorPurple    = RGB{0x80, 0x00, 0x80}
	ColorIndigo    = RGB{0x4b, 0x00, 0x82}
)
