package terminal

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cftracker/internal/domain/model"
	"cftracker/internal/usecase"
)

func testReport() *model.Report {
	c := model.NewClassification()
	c.Solved["800"] = []model.ProblemRef{{Name: "Theatre Square", Link: "https://codeforces.com/problemset/problem/1/A"}}
	c.Struggled["800"] = []model.ProblemRef{{Name: "Watermelon", Link: "https://codeforces.com/problemset/problem/4/A"}}
	c.Struggled["1500"] = []model.ProblemRef{{Name: "Hard One", Link: "https://codeforces.com/problemset/problem/9/C"}}
	return &model.Report{
		Handle:         "tourist",
		Submissions:    12,
		Classification: c,
		Solved:         usecase.BuildChart(model.KindSolved, c.Solved),
		Struggled:      usecase.BuildChart(model.KindStruggled, c.Struggled),
	}
}

func TestRenderChartListsEveryBucket(t *testing.T) {
	out := RenderChart(testReport().Struggled, 60)

	assert.Contains(t, out, ChartTitle(model.KindStruggled))
	for _, label := range model.BucketLabels() {
		assert.Contains(t, out, label)
	}
}

func TestRenderProblems(t *testing.T) {
	out := RenderProblems("1500", testReport().Struggled.Lookup("1500"))
	assert.Contains(t, out, "Problems with Rating 1500")
	assert.Contains(t, out, "Hard One")
	assert.Contains(t, out, "https://codeforces.com/problemset/problem/9/C")

	assert.Contains(t, RenderProblems("900", nil), "No problems with rating 900 found.")
}

func TestRenderReportShowsBothCharts(t *testing.T) {
	out := RenderReport(testReport(), 80)
	assert.Contains(t, out, "tourist")
	assert.Contains(t, out, ChartTitle(model.KindSolved))
	assert.Contains(t, out, ChartTitle(model.KindStruggled))
}

func press(b Browser, msg tea.KeyPressMsg) Browser {
	m, _ := b.Update(msg)
	return m.(Browser)
}

func TestBrowserNavigationAndDetails(t *testing.T) {
	b := NewBrowser(testReport())
	assert.Equal(t, "800", b.SelectedLabel())
	assert.NotContains(t, b.render(), "Watermelon")

	b = press(b, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, b.expanded)
	assert.Contains(t, b.render(), "Watermelon")

	b = press(b, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.False(t, b.expanded)

	for i := 0; i < 7; i++ {
		b = press(b, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, "1500", b.SelectedLabel())

	b = press(b, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, b.render(), "Hard One")

	b = press(b, tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, "1400", b.SelectedLabel())
	assert.Contains(t, b.render(), "No problems with rating 1400 found.")
}

func TestBrowserSelectionIsClamped(t *testing.T) {
	b := NewBrowser(testReport())
	b = press(b, tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, "800", b.SelectedLabel())

	for i := 0; i < 50; i++ {
		b = press(b, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, model.OtherBucket, b.SelectedLabel())
}

func TestBrowserTabSwitchesChart(t *testing.T) {
	b := NewBrowser(testReport())
	assert.Equal(t, model.KindStruggled, b.kind)

	b = press(b, tea.KeyPressMsg{Code: tea.KeyEnter})
	b = press(b, tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, model.KindSolved, b.kind)
	assert.False(t, b.expanded)

	b = press(b, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, b.render(), "Theatre Square")
}

func TestBrowserQuit(t *testing.T) {
	_, cmd := NewBrowser(testReport()).Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBrowserTracksWindowSize(t *testing.T) {
	m, _ := NewBrowser(testReport()).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	b := m.(Browser)
	assert.Equal(t, 120, b.width)
	assert.Equal(t, 40, b.height)
}

func crowdedReport() *model.Report {
	report := testReport()
	refs := make([]model.ProblemRef, 0, 10)
	for i := 1; i <= 10; i++ {
		refs = append(refs, model.ProblemRef{
			Name: fmt.Sprintf("Problem %02d", i),
			Link: fmt.Sprintf("https://codeforces.com/problemset/problem/%d/A", 100+i),
		})
	}
	report.Classification.Struggled["800"] = refs
	report.Struggled = usecase.BuildChart(model.KindStruggled, report.Classification.Struggled)
	return report
}

func TestBrowserFitsProblemsToWindowHeight(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		visible []string
		hidden  []string
		more    string
	}{
		{name: "unknown size shows all", height: 0, visible: []string{"Problem 01", "Problem 10"}},
		{name: "tall window shows all", height: 200, visible: []string{"Problem 01", "Problem 10"}},
		{name: "short window keeps one", height: 5, visible: []string{"Problem 01"}, hidden: []string{"Problem 02", "Problem 10"}, more: "… and 9 more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBrowser(crowdedReport())
			if tt.height > 0 {
				m, _ := b.Update(tea.WindowSizeMsg{Width: 80, Height: tt.height})
				b = m.(Browser)
			}
			b = press(b, tea.KeyPressMsg{Code: tea.KeyEnter})

			out := b.render()
			for _, name := range tt.visible {
				assert.Contains(t, out, name)
			}
			for _, name := range tt.hidden {
				assert.NotContains(t, out, name)
			}
			if tt.more != "" {
				assert.Contains(t, out, tt.more)
			} else {
				assert.NotContains(t, out, "more")
			}
		})
	}
}

func TestRenderProblemsListsEverything(t *testing.T) {
	out := RenderProblems("800", crowdedReport().Struggled.Lookup("800"))
	assert.Contains(t, out, "Problem 10")
	assert.NotContains(t, out, "more")
}
