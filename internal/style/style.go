// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package style defines the lipgloss styles wordreorg uses for console
// output, keeping presentation out of the pipeline stages.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Cyan stage banners, blue progress notes, green success, yellow warnings,
// red errors.
var (
	Banner  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	Info    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	Warn    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	Bold    = lipgloss.NewStyle().Bold(true)
	Dim     = lipgloss.NewStyle().Faint(true)
)

// Disable forces plain output regardless of terminal capabilities.
func Disable() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
