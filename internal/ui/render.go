package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/jobexplorer/internal/currency"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/models"
)

const titleWidth = 32

// Renderer prints search results to a terminal
type Renderer struct {
	conv       *currency.Converter
	hyperlinks bool
}

// NewRenderer creates a Renderer converting salaries with conv
func NewRenderer(conv *currency.Converter, hyperlinks bool) *Renderer {
	return &Renderer{conv: conv, hyperlinks: hyperlinks}
}

// Render writes r to w
func (rd *Renderer) Render(w io.Writer, r models.SearchResult) error {
	if r.Mode == models.ModeNone {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(rd.SalaryBox(r.Salary))
	sb.WriteString("\n")

	switch r.Mode {
	case models.ModeSummary:
		s, err := rd.FunFacts(r.FunFacts)
		if err != nil {
			return err
		}
		sb.WriteString(s)
	case models.ModeJobs:
		sb.WriteString(rd.JobCards(r.Jobs))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// SalaryBox renders the converted salary range of s
func (rd *Renderer) SalaryBox(s *models.SalaryRecord) string {
	if s == nil {
		return pterm.Gray("No salary data for this country.") + "\n"
	}

	rng := rd.conv.SalaryRange(*s)
	body := fmt.Sprintf("%s – %s %s",
		ColorizeSalary(rng.Min),
		ColorizeSalary(rng.Median),
		pterm.Gray(fmt.Sprintf("- USD not %s", rng.Currency)))

	return pterm.DefaultBox.WithTitle("Estimated Yearly Salary Range").Sprint(body) + "\n"
}

// JobCards renders one card per job
func (rd *Renderer) JobCards(jobs []models.JobRecord) string {
	if len(jobs) == 0 {
		return pterm.Gray("No matching jobs found.") + "\n"
	}

	var sb strings.Builder
	for _, job := range jobs {
		sb.WriteString(pterm.Bold.Sprint(job.JobTitle) + "\n")
		sb.WriteString(pterm.Gray(fmt.Sprintf("%s — %s", job.CompanyName, job.City)) + "\n")
		if job.JobURL != "" {
			sb.WriteString(pterm.Cyan(FormatURL(job.JobURL, rd.hyperlinks)) + "\n")
		}
		sb.WriteString(strings.Repeat("-", 60) + "\n")
	}
	return sb.String()
}

// FunFacts renders the country overview and its top-titles chart
func (rd *Renderer) FunFacts(f *models.FunFacts) (string, error) {
	if f == nil || f.Empty() {
		return pterm.Gray("No job data for this country.") + "\n", nil
	}

	median := f.MedianSalary
	if f.Currency != "" {
		median += " " + f.Currency
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📌 Most common job: %s (%d listings)\n", pterm.Bold.Sprint(f.MostCommon.Title), f.MostCommon.Count))
	sb.WriteString(fmt.Sprintf("💶 Median salary: %s\n", pterm.Bold.Sprint(median)))
	sb.WriteString(fmt.Sprintf("📊 Total job postings: %s\n", pterm.Bold.Sprint(f.Total)))

	chart, err := TopTitlesChart(f.Top)
	if err != nil {
		return "", err
	}
	sb.WriteString("\nTop Job Titles:\n")
	sb.WriteString(chart)
	return sb.String(), nil
}

// TopTitlesChart renders the title histogram as a horizontal bar chart
func TopTitlesChart(top []models.TitleCount) (string, error) {
	if len(top) == 0 {
		return "", nil
	}

	bars := make(pterm.Bars, 0, len(top))
	for _, tc := range top {
		bars = append(bars, pterm.Bar{
			Label: truncateString(tc.Title, titleWidth),
			Value: tc.Count,
		})
	}

	return pterm.DefaultBarChart.
		WithBars(bars).
		WithHorizontal().
		WithShowValue().
		WithWidth(40).
		Srender()
}

// Countries renders the country list
func Countries(w io.Writer, countries []string) error {
	if len(countries) == 0 {
		_, err := fmt.Fprintln(w, pterm.Gray("No countries loaded."))
		return err
	}

	items := make([]pterm.BulletListItem, 0, len(countries))
	for _, c := range countries {
		items = append(items, pterm.BulletListItem{Level: 0, Text: c})
	}
	s, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
