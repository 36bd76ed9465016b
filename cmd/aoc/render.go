package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RiPs7/AdventOfCode2023/puzzle/maze"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	answerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	timingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// colorizeMaze styles a rendered maze: path marks and walls get their own
// colors, free cells print as spaces.
func colorizeMaze(rendered string) string {
	var b strings.Builder
	for _, r := range rendered {
		switch r {
		case maze.PathMark:
			b.WriteString(pathStyle.Render(string(r)))
		case maze.Wall:
			b.WriteString(wallStyle.Render("#"))
		case maze.Open:
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
