package main

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorOK      = lipgloss.Color("#10B981")
	colorWarn    = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles holds the output styles of one command run.
type styles struct {
	title lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
	warn  lipgloss.Style
	muted lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{title: plain, ok: plain, fail: plain, warn: plain, muted: plain}
	}
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		ok:    lipgloss.NewStyle().Bold(true).Foreground(colorOK),
		fail:  lipgloss.NewStyle().Bold(true).Foreground(colorError),
		warn:  lipgloss.NewStyle().Foreground(colorWarn),
		muted: lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
