package terminal

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"cftracker/internal/domain/model"
)

const (
	defaultWidth = 80

	// panel border, list title and the "more" line
	problemChrome = 4
)

// Browser is the interactive view of a report: one chart at a time, a
// movable bar selection and the problem list of the selected bar.
type Browser struct {
	report   *model.Report
	kind     model.Kind
	selected int
	expanded bool
	width    int
	height   int
}

// NewBrowser creates a Browser that starts on the struggled chart.
func NewBrowser(report *model.Report) Browser {
	return Browser{
		report: report,
		kind:   model.KindStruggled,
		width:  defaultWidth,
	}
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return b, tea.Quit
		case "tab":
			if b.kind == model.KindSolved {
				b.kind = model.KindStruggled
			} else {
				b.kind = model.KindSolved
			}
			b.expanded = false
		case "up", "k", "left", "h":
			if b.selected > 0 {
				b.selected--
			}
		case "down", "j", "right", "l":
			if b.selected < len(b.chart().Bars)-1 {
				b.selected++
			}
		case "enter", "space":
			b.expanded = !b.expanded
		case "esc":
			b.expanded = false
		}
	}
	return b, nil
}

func (b Browser) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(b.render())
	return v
}

func (b Browser) chart() model.Chart {
	return b.report.Chart(b.kind)
}

// SelectedLabel returns the label of the highlighted bar.
func (b Browser) SelectedLabel() string {
	bars := b.chart().Bars
	if b.selected < 0 || b.selected >= len(bars) {
		return ""
	}
	return bars[b.selected].Label
}

func (b Browser) render() string {
	header := titleStyle.Render(fmt.Sprintf("%s · %d submissions", b.report.Handle, b.report.Submissions))
	chart := panelStyle.Render(renderChart(b.chart(), b.width-4, b.selected))

	sections := []string{header, chart}
	if b.expanded {
		label := b.SelectedLabel()
		sections = append(sections, panelStyle.Render(renderProblems(label, b.chart().Lookup(label), b.problemLimit(header, chart))))
	}
	sections = append(sections, hintStyle.Render(browserHint))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

const browserHint = "↑↓ select · Enter show problems · Tab solved/struggled · q quit"

// problemLimit is how many problem rows fit below the chart, and at least one.
// Zero means the window size is unknown.
func (b Browser) problemLimit(above ...string) int {
	if b.height <= 0 {
		return 0
	}
	free := b.height - lipgloss.Height(browserHint) - problemChrome
	for _, s := range above {
		free -= lipgloss.Height(s)
	}
	if free < 1 {
		return 1
	}
	return free
}

// RunBrowser starts the interactive browser and blocks until the user quits.
func RunBrowser(report *model.Report) error {
	p := tea.NewProgram(NewBrowser(report))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
