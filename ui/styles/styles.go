package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/nextword/internal/models"
)

var (
	colorAccent  = lipgloss.Color("62")
	colorMuted   = lipgloss.Color("245")
	colorOK      = lipgloss.Color("42")
	colorWarning = lipgloss.Color("214")
	colorDanger  = lipgloss.Color("196")
	colorCounter = lipgloss.Color("248")
)

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Padding(0, 2)
}

func InputStyle(width int, focused bool) lipgloss.Style {
	border := colorMuted
	if focused {
		border = colorAccent
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style
}

func StatusStyle(width int, connected bool) lipgloss.Style {
	fg := colorDanger
	if connected {
		fg = colorOK
	}
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(lipgloss.Color("235")).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	return style
}

func CounterStyle(level models.CounterLevel) lipgloss.Style {
	fg := colorCounter
	switch level {
	case models.CounterWarning:
		fg = colorWarning
	case models.CounterDanger:
		fg = colorDanger
	}
	return lipgloss.NewStyle().Foreground(fg)
}

func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true).
		Padding(0, 2)
}

func ButtonStyle(enabled bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		MarginLeft(2).
		Bold(true)
	if enabled {
		return style.Foreground(lipgloss.Color("230")).Background(colorAccent)
	}
	return style.Foreground(colorMuted).Background(lipgloss.Color("237"))
}

func ResultStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(colorOK).
		Padding(0, 1).
		MarginLeft(2)
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(colorDanger).
		Padding(0, 1).
		MarginLeft(2)
}

func NoticeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorWarning).
		Padding(0, 1).
		MarginLeft(2)
}

func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func HighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorWarning).
		Bold(true)
}

func WordTagStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("24")).
		Padding(0, 1)
}
