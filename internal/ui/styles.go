// Package ui provides terminal styling and message printing for the
// skillgen CLI.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Accent colors.
var (
	Teal    = lipgloss.Color("#14B8A6")
	Red     = lipgloss.Color("#EF4444")
	Amber   = lipgloss.Color("#F59E0B")
	Green   = lipgloss.Color("#22C55E")
	DimGray = lipgloss.Color("#9CA3AF")
)

// Text styles.
var (
	// TitleStyle for main headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Teal)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// WarningStyle for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	// InfoStyle for informational messages
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	// DimStyle for less important text
	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// CodeStyle for inline code
	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F3F4F6")).
			Background(lipgloss.Color("#374151")).
			Padding(0, 1)
)
