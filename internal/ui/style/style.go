// Package style holds the colors and icons shared by log and report output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Palette is the set of text styles used to render reports.
type Palette struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Good    lipgloss.Style
	Bad     lipgloss.Style
	Caution lipgloss.Style
}

// NewPalette binds the report styles to a renderer, so color support is
// detected for the renderer's writer rather than for stdout.
func NewPalette(r *lipgloss.Renderer, labelWidth int) Palette {
	return Palette{
		Title:   r.NewStyle().Bold(true).Foreground(Iris),
		Label:   r.NewStyle().Foreground(Slate).Width(labelWidth),
		Good:    r.NewStyle().Foreground(Green),
		Bad:     r.NewStyle().Foreground(Red),
		Caution: r.NewStyle().Foreground(Yellow),
	}
}
