package colors

import "github.com/charmbracelet/lipgloss"

// ANSI 256 palette picks, one per category. Chosen to stay readable on both
// light and dark terminals.
var categoryColors = map[Category]lipgloss.Color{
	CategoryGypsum:   lipgloss.Color("179"),
	CategoryWiring:   lipgloss.Color("208"),
	CategoryAC:       lipgloss.Color("39"),
	CategoryLighting: lipgloss.Color("226"),
	CategoryPaint:    lipgloss.Color("135"),
	CategoryOther:    lipgloss.Color("245"),
}

// Color returns the terminal color for a category. Unknown (plugin-defined)
// categories fall back to the Other color.
func (c Category) Color() lipgloss.Color {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategoryOther]
}

// SwatchStyle renders the small colored marker used on calendar cells and in
// the legend.
func (c Category) SwatchStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.Color())
}

// Swatch returns the marker glyph styled for the category.
func (c Category) Swatch() string {
	return c.SwatchStyle().Render("■")
}
