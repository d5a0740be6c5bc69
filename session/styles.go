package session

import "github.com/charmbracelet/lipgloss"

type styles struct {
	round lipgloss.Style
	game  lipgloss.Style
	info  lipgloss.Style
	log   lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)
// 9	Bright Red
// 10	Bright Green
// 11	Bright Yellow
// 12	Bright Blue
// 13	Bright Magenta
// 14	Bright Cyan
// 15	Bright White

func newStyles() styles {
	return styles{
		round: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		game:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		info:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		log:   lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}
