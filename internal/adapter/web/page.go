package web

import (
	"html/template"
	"io"

	"cftracker/internal/domain/model"
)

type chartData struct {
	Kind   model.Kind `json:"kind"`
	Title  string     `json:"title"`
	Labels []string   `json:"labels"`
	Counts []int      `json:"counts"`
	Colors []string   `json:"colors"`
}

type pageData struct {
	Handle string
	Error  string
	Report *model.Report
	Charts []chartData
}

func newChartData(chart model.Chart, title string) chartData {
	data := chartData{Kind: chart.Kind, Title: title}
	for _, bar := range chart.Bars {
		data.Labels = append(data.Labels, bar.Label)
		data.Counts = append(data.Counts, bar.Count)
		data.Colors = append(data.Colors, bar.Tier.RGBA)
	}
	return data
}

func renderPage(w io.Writer, data pageData) error {
	if data.Report != nil {
		data.Charts = []chartData{
			newChartData(data.Report.Solved, "Solved problems"),
			newChartData(data.Report.Struggled, "Problems with unsuccessful submissions"),
		}
	}
	return pageTemplate.Execute(w, data)
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>cftracker{{if .Handle}} · {{.Handle}}{{end}}</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2rem auto; }
.hidden { display: none; }
.error { color: #b91c1c; }
.problem { margin: .25rem 0; }
.problem-title { text-decoration: none; }
</style>
</head>
<body>
<h1>Codeforces rating breakdown</h1>
<form method="get" action="/">
  <input id="userId" name="handle" placeholder="Codeforces handle" value="{{.Handle}}">
  <button type="submit">Fetch</button>
</form>
{{if .Error}}<p id="error" class="error">Error: {{.Error}}</p>{{end}}
{{with .Report}}
<p>{{.Submissions}} submissions analysed for <a href="https://codeforces.com/profile/{{.Handle}}">{{.Handle}}</a>.</p>
{{if eq .Struggled.Total 0}}<p>No problems with unsuccessful submissions found.</p>{{end}}
{{end}}
{{range .Charts}}
<h2>{{.Title}}</h2>
<canvas id="chart-{{.Kind}}"></canvas>
{{end}}
<div id="details" class="hidden"><div id="detailsContent"></div></div>
{{if .Report}}
<script>
const handle = {{.Handle}};
const charts = {{.Charts}};
const details = document.getElementById('details');
const detailsContent = document.getElementById('detailsContent');

function displayProblems(kind, label) {
  const url = '/users/' + encodeURIComponent(handle) + '/' + kind + '/' + encodeURIComponent(label);
  fetch(url)
    .then(function (resp) {
      return resp.text().then(function (body) { return { ok: resp.ok, body: body }; });
    })
    .then(function (result) {
      if (result.ok) {
        detailsContent.innerHTML = result.body;
      } else {
        detailsContent.textContent = result.body;
      }
      details.classList.remove('hidden');
    })
    .catch(function (err) {
      detailsContent.textContent = 'Failed to load problems: ' + err;
      details.classList.remove('hidden');
    });
}

charts.forEach(function (c) {
  new Chart(document.getElementById('chart-' + c.kind), {
    type: 'bar',
    data: {
      labels: c.labels,
      datasets: [{
        label: 'Number of Problems',
        data: c.counts,
        backgroundColor: c.colors,
        borderColor: c.colors,
        borderWidth: 1
      }]
    },
    options: {
      scales: {
        x: { title: { display: true, text: 'Rating' } },
        y: { title: { display: true, text: 'Number of Problems' }, beginAtZero: true }
      },
      onClick: function (event, elements) {
        if (elements.length > 0) {
          displayProblems(c.kind, c.labels[elements[0].index]);
        }
      }
    }
  });
});
</script>
{{end}}
</body>
</html>
`))
