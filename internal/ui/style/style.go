// Package style holds the colors and glyphs shared by every terminal surface.
package style

import "github.com/charmbracelet/lipgloss"

// Palette colors.
var (
	Violet = lipgloss.Color("#7C3AED")
	Slate  = lipgloss.Color("#64748B")
	Snow   = lipgloss.Color("#F8FAFC")
	Teal   = lipgloss.Color("#14B8A6")
	Red    = lipgloss.Color("#DC2626")
	Amber  = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Bullet  = "•"
	Circle  = "○"
)

// Title renders headings in the status bar and listings.
var Title = lipgloss.NewStyle().Bold(true).Foreground(Violet)

// Muted renders secondary text.
var Muted = lipgloss.NewStyle().Foreground(Slate)
