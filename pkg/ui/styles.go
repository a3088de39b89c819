// Package ui holds terminal styling and screen control for the live view.
package ui

import "github.com/charmbracelet/lipgloss"

const (
	flame  = lipgloss.Color("208")
	gray   = lipgloss.Color("244")
	yellow = lipgloss.Color("226")
)

// Styles decorates live-view text. The zero-color variant leaves text untouched.
type Styles struct {
	Header  lipgloss.Style
	Notice  lipgloss.Style
	Footer  lipgloss.Style
	enabled bool
}

// NewStyles returns colored styles when color is true, plain ones otherwise.
func NewStyles(color bool) Styles {
	if !color {
		return Styles{}
	}
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(flame),
		Notice:  lipgloss.NewStyle().Foreground(yellow),
		Footer:  lipgloss.NewStyle().Foreground(gray),
		enabled: true,
	}
}

// Enabled reports whether styling is active.
func (s Styles) Enabled() bool {
	return s.enabled
}

// HeaderFunc adapts Header to a plain decorator; nil when styling is off.
func (s Styles) HeaderFunc() func(string) string {
	if !s.enabled {
		return nil
	}
	return func(text string) string { return s.Header.Render(text) }
}

// RenderNotice styles informational lines.
func (s Styles) RenderNotice(text string) string {
	if !s.enabled {
		return text
	}
	return s.Notice.Render(text)
}

// RenderFooter styles the refresh hint.
func (s Styles) RenderFooter(text string) string {
	if !s.enabled {
		return text
	}
	return s.Footer.Render(text)
}
