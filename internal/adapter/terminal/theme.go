package terminal

import (
	"charm.land/lipgloss/v2"

	"cftracker/internal/domain/model"
)

var (
	colorText    = lipgloss.Color("#F8FAFC")
	colorDim     = lipgloss.Color("#94A3B8")
	colorAccent  = lipgloss.Color("#1F8ACB")
	colorBorder  = lipgloss.Color("#334155")
	colorSuccess = lipgloss.Color("#22C55E")
	colorError   = lipgloss.Color("#F43F5E")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(labelWidth).
			Align(lipgloss.Right)

	countStyle = lipgloss.NewStyle().
			Foreground(colorText)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	linkStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Underline(true)
)

func kindStyle(kind model.Kind) lipgloss.Style {
	if kind == model.KindSolved {
		return lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(colorError)
}

func barStyle(tier model.Tier) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(tier.Hex))
}
