package terminal

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"cftracker/internal/domain/model"
)

const (
	labelWidth  = 6
	minBarWidth = 10
	noSelection = -1
)

// ChartTitle returns the heading used for a chart of kind.
func ChartTitle(kind model.Kind) string {
	if kind == model.KindSolved {
		return "Solved problems by rating"
	}
	return "Problems with unsuccessful submissions by rating"
}

// RenderChart draws chart as horizontal bars coloured by rating tier.
func RenderChart(chart model.Chart, width int) string {
	return renderChart(chart, width, noSelection)
}

func renderChart(chart model.Chart, width, selected int) string {
	// marker, label, spaces and the count column
	barWidth := width - labelWidth - 10
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	peak := chart.Max()

	rows := make([]string, 0, len(chart.Bars)+1)
	rows = append(rows, kindStyle(chart.Kind).Render(fmt.Sprintf("%s (%d)", ChartTitle(chart.Kind), chart.Total())))

	for i, bar := range chart.Bars {
		marker := "  "
		label := labelStyle.Render(bar.Label)
		if i == selected {
			marker = selectedStyle.Render("› ")
			label = selectedStyle.Width(labelWidth).Align(lipgloss.Right).Render(bar.Label)
		}

		filled := 0
		if peak > 0 {
			filled = bar.Count * barWidth / peak
		}
		if filled == 0 && bar.Count > 0 {
			filled = 1
		}

		body := hintStyle.Render("·")
		if filled > 0 {
			body = barStyle(bar.Tier).Render(strings.Repeat("█", filled))
		}

		rows = append(rows, marker+label+" "+body+" "+countStyle.Render(fmt.Sprintf("%d", bar.Count)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderProblems lists the problems of one bucket, or the empty-bucket message.
func RenderProblems(label string, refs []model.ProblemRef) string {
	return renderProblems(label, refs, 0)
}

// renderProblems shows at most limit problems; limit <= 0 shows all of them.
func renderProblems(label string, refs []model.ProblemRef, limit int) string {
	if len(refs) == 0 {
		return hintStyle.Render(fmt.Sprintf("No problems with rating %s found.", label))
	}

	hidden := 0
	if limit > 0 && len(refs) > limit {
		hidden = len(refs) - limit
		refs = refs[:limit]
	}

	rows := make([]string, 0, len(refs)+2)
	rows = append(rows, titleStyle.Render(fmt.Sprintf("Problems with Rating %s", label)))
	for i, ref := range refs {
		rows = append(rows, fmt.Sprintf("%3d. %s  %s", i+1, countStyle.Render(ref.Name), linkStyle.Render(ref.Link)))
	}
	if hidden > 0 {
		rows = append(rows, hintStyle.Render(fmt.Sprintf("… and %d more", hidden)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderReport draws both charts of a report one below the other.
func RenderReport(report *model.Report, width int) string {
	header := titleStyle.Render(fmt.Sprintf("%s · %d submissions", report.Handle, report.Submissions))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		RenderChart(report.Solved, width),
		"",
		RenderChart(report.Struggled, width),
	)
}
