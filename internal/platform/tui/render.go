package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// StyleCache maps cell colors to lipgloss styles for one renderer.
// Block colors are random, so styles are created on first use.
// Not safe for concurrent use; each program owns its own cache.
type StyleCache struct {
	renderer *lipgloss.Renderer
	styles   map[core.RGB]lipgloss.Style
}

// NewStyleCache creates a cache bound to r. A nil renderer uses the default one.
func NewStyleCache(r *lipgloss.Renderer) *StyleCache {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &StyleCache{renderer: r, styles: make(map[core.RGB]lipgloss.Style)}
}

// Renderer returns the lipgloss renderer the cache is bound to.
func (c *StyleCache) Renderer() *lipgloss.Renderer {
	return c.renderer
}

// Style returns the style for a cell color. The zero color renders unstyled.
func (c *StyleCache) Style(rgb core.RGB) lipgloss.Style {
	if style, ok := c.styles[rgb]; ok {
		return style
	}
	style := c.renderer.NewStyle()
	if !rgb.IsZero() {
		style = style.Foreground(lipgloss.Color(rgb.Hex()))
	}
	c.styles[rgb] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles *StyleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
