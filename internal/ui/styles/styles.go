// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling so the picker,
// the static tables and plain command output look the same.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Primary colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent = lipgloss.Color("212")

	// Success is used for positive outcomes (green)
	Success = lipgloss.Color("82")

	// Warning is used for stale or degraded state (orange)
	Warning = lipgloss.Color("214")

	// Muted is used for secondary text such as scores (gray)
	Muted = lipgloss.Color("240")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// TitleStyle is used for picker titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Marker flags the branch a plain `ggo <pattern>` would check out.
const Marker = "→"
