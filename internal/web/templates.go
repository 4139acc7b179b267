package web

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Job Explorer</title>
	<style>
		:root {
			--bg: #f9fafb;
			--card: #ffffff;
			--border: #e5e7eb;
			--text: #1f2937;
			--muted: #6b7280;
			--accent: #2563eb;
		}
		* { margin: 0; padding: 0; box-sizing: border-box; }
		body { font-family: -apple-system, BlinkMacSystemFont, sans-serif; background: var(--bg); color: var(--text); line-height: 1.5; }
		.container { max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
		h1 { font-size: 1.6rem; margin-bottom: 1rem; }
		form { display: flex; gap: 0.75rem; margin-bottom: 1.25rem; }
		select, input { flex: 1; padding: 0.5rem 0.75rem; border: 1px solid var(--border); border-radius: 6px; font-size: 0.95rem; }
		.salary { background: var(--bg); border: 1px solid var(--border); border-radius: 6px; padding: 1rem; margin-bottom: 1rem; }
		.salary .label, .muted { color: var(--muted); font-size: 0.85rem; }
		.salary .range { font-size: 1.5rem; font-weight: 600; }
		.card, .fact { background: var(--card); border: 1px solid var(--border); border-radius: 6px; padding: 1rem; margin-bottom: 0.75rem; }
		.card .title { font-weight: 600; font-size: 1.1rem; }
		.card a { color: var(--accent); font-size: 0.85rem; }
		.bars { margin-top: 1rem; }
		.bar-row { display: flex; align-items: center; font-size: 0.85rem; margin-bottom: 0.25rem; }
		.bar-row .name { width: 8rem; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
		.bar-track { flex: 1; margin-left: 0.5rem; background: var(--border); height: 0.5rem; border-radius: 4px; }
		.bar-fill { background: var(--accent); height: 0.5rem; border-radius: 4px; }
		.bar-row .count { margin-left: 0.5rem; color: var(--muted); font-size: 0.75rem; }
	</style>
</head>
<body>
	<div class="container">
		<h1>Job Explorer</h1>
		<form id="search" method="get" action="/">
			<select id="countrySelect" name="country">
				<option value="">Select country</option>
				{{- range .Countries}}
				<option value="{{.Name}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
				{{- end}}
			</select>
			<input id="jobInput" name="q" type="text" placeholder="Job title" value="{{.Query}}" autocomplete="off">
		</form>
		<div id="results">{{template "results" .Result}}</div>
	</div>
	<script>
		(function () {
			var form = document.getElementById('search');
			var results = document.getElementById('results');
			var latest = 0;
			function update() {
				var seq = ++latest;
				var params = new URLSearchParams(new FormData(form));
				fetch('/results?' + params.toString())
					.then(function (res) { return res.text(); })
					.then(function (html) {
						// a slower, older response must not replace newer results
						if (seq === latest) { results.innerHTML = html; }
					})
					.catch(function (err) { console.error('search failed', err); });
			}
			document.getElementById('countrySelect').addEventListener('change', update);
			document.getElementById('jobInput').addEventListener('input', update);
			form.addEventListener('submit', function (e) { e.preventDefault(); update(); });
		})();
	</script>
</body>
</html>
`))

var resultsTemplate = template.Must(pageTemplate.New("results").Parse(`
{{- if .Active}}
<div id="salaryOutput">
	{{- with .Salary}}
	<div class="salary">
		<div class="label">Estimated Yearly Salary Range</div>
		<div class="range">{{.Min}} – {{.Median}} <span class="muted">- USD not {{.Currency}}</span></div>
	</div>
	{{- else}}
	<div class="muted">No salary data for this country.</div>
	{{- end}}
</div>
<div id="jobResults">
	{{- if .Summary}}
	{{- with .Facts}}
	<div class="fact">📌 Most common job: <strong>{{.MostCommon.Title}}</strong> ({{.MostCommon.Count}} listings)</div>
	<div class="fact">💶 Median salary: <strong>{{.MedianSalary}} {{.Currency}}</strong></div>
	<div class="fact">📊 Total job postings: <strong>{{.Total}}</strong></div>
	{{- else}}
	<div class="muted">No job data for this country.</div>
	{{- end}}
	{{- if .Bars}}
	<div class="bars">
		<div class="label">Top Job Titles:</div>
		{{- range .Bars}}
		<div class="bar-row">
			<span class="name">{{.Title}}</span>
			<div class="bar-track"><div class="bar-fill" style="width:{{.Width}}%"></div></div>
			<span class="count">{{.Count}}</span>
		</div>
		{{- end}}
	</div>
	{{- end}}
	{{- else}}
	{{- range .Jobs}}
	<div class="card">
		<div class="title">{{.JobTitle}}</div>
		<div class="muted">{{.CompanyName}} — {{.City}}</div>
		<a href="{{.JobURL}}" target="_blank" rel="noopener">View Job</a>
	</div>
	{{- else}}
	<div class="muted">No matching jobs found.</div>
	{{- end}}
	{{- end}}
</div>
{{- end}}
`))
