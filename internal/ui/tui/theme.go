package tui

import (
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/model"
)

type theme struct {
	Base      lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Label     lipgloss.Style
	Clock     lipgloss.Style
	Task      lipgloss.Style
	Toast     lipgloss.Style
	Dim       lipgloss.Style
	DotDone   lipgloss.Style
	DotTodo   lipgloss.Style
}

var modeColors = map[model.Mode]lipgloss.Color{
	model.ModeFocus:      lipgloss.Color("203"),
	model.ModeShortBreak: lipgloss.Color("43"),
	model.ModeLongBreak:  lipgloss.Color("69"),
}

func modeColor(mode model.Mode) lipgloss.Color {
	if color, ok := modeColors[mode]; ok {
		return color
	}
	return modeColors[model.ModeFocus]
}

func themeFor(mode model.Mode) theme {
	accent := modeColor(mode)
	return theme{
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("245")),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("231")).Background(accent),
		Label:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		Clock:     lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(1, 0),
		Task:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Toast:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("238")).Padding(0, 1),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		DotDone:   lipgloss.NewStyle().Foreground(accent),
		DotTodo:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
