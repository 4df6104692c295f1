// ============================================================================
// iadate - IA Time
// ============================================================================
//
// Package:     clock
// Description: Styles for the IA time clock TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clock

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)
)

// Clock face styles
var (
	TicksStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	DateStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	FacePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2)
)

// Status styles
var (
	StatusLiveStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StatusPausedStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	StatusClosedStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Status icons
const (
	IconLive   = "● "
	IconPaused = "⏸ "
	IconClosed = "○ "
)

// Logo is the header text
const Logo = "iadate clock"

// RenderKeyHint renders a key hint for the help bar
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderRow renders a label/value line of the clock face
func RenderRow(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}
