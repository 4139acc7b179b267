package query

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fr4nk3nst1ner/jobexplorer/internal/analytics"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/dataset"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/models"
)

const (
	// DefaultJobLimit caps the job list handed to renderers
	DefaultJobLimit = 10
	// DefaultTopTitles is the length of the title histogram
	DefaultTopTitles = 5
	// DefaultMinQueryLength is the shortest search term that filters jobs;
	// anything shorter shows the country overview instead
	DefaultMinQueryLength = 2
	// NoSalary is shown as the median salary when a country has no salary row
	NoSalary = "N/A"
)

// Engine answers country and job-title queries over a Dataset.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	ds        *dataset.Dataset
	jobLimit  int
	topTitles int
	minQuery  int
	tracker   analytics.Tracker
}

// Option configures an Engine
type Option func(*Engine)

// WithJobLimit caps FindJobs results. n <= 0 disables the cap.
func WithJobLimit(n int) Option {
	return func(e *Engine) {
		e.jobLimit = n
	}
}

// WithTopTitles sets how many titles Summarize keeps. n <= 0 keeps all of them.
func WithTopTitles(n int) Option {
	return func(e *Engine) {
		e.topTitles = n
	}
}

// WithMinQueryLength sets the threshold between overview and job search
func WithMinQueryLength(n int) Option {
	return func(e *Engine) {
		e.minQuery = n
	}
}

// WithTracker reports overview searches to t
func WithTracker(t analytics.Tracker) Option {
	return func(e *Engine) {
		e.tracker = t
	}
}

// NewEngine creates an Engine over ds
func NewEngine(ds *dataset.Dataset, opts ...Option) *Engine {
	e := &Engine{
		ds:        ds,
		jobLimit:  DefaultJobLimit,
		topTitles: DefaultTopTitles,
		minQuery:  DefaultMinQueryLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Normalize trims and lowercases s for comparison
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FindSalary returns the first salary row for country.
// Later rows for the same country are ignored.
func (e *Engine) FindSalary(country string) (models.SalaryRecord, bool) {
	want := Normalize(country)
	for _, s := range e.ds.Salaries() {
		if Normalize(s.Country) == want {
			return s, true
		}
	}
	return models.SalaryRecord{}, false
}

// FindJobs returns the jobs in country whose title contains jobQuery,
// case-insensitively, in source order and capped at the job limit.
func (e *Engine) FindJobs(country, jobQuery string) []models.JobRecord {
	want := Normalize(country)
	q := Normalize(jobQuery)

	var matched []models.JobRecord
	for _, j := range e.ds.Jobs() {
		if Normalize(j.Country) != want {
			continue
		}
		if !strings.Contains(strings.ToLower(j.JobTitle), q) {
			continue
		}
		matched = append(matched, j)
		if e.jobLimit > 0 && len(matched) == e.jobLimit {
			break
		}
	}
	return matched
}

// CountryJobs returns every job in country, uncapped
func (e *Engine) CountryJobs(country string) []models.JobRecord {
	want := Normalize(country)

	var jobs []models.JobRecord
	for _, j := range e.ds.Jobs() {
		if Normalize(j.Country) == want {
			jobs = append(jobs, j)
		}
	}
	return jobs
}

// Summarize builds the title histogram of jobs using the engine's top-title count
func (e *Engine) Summarize(jobs []models.JobRecord) models.Summary {
	return Summarize(jobs, e.topTitles)
}

// Summarize counts job titles in one pass and orders them by count,
// keeping first-seen order between equal counts. top <= 0 keeps every title.
func Summarize(jobs []models.JobRecord, top int) models.Summary {
	if len(jobs) == 0 {
		return models.Summary{}
	}

	index := make(map[string]int)
	var counts []models.TitleCount
	for _, j := range jobs {
		i, ok := index[j.JobTitle]
		if !ok {
			i = len(counts)
			index[j.JobTitle] = i
			counts = append(counts, models.TitleCount{Title: j.JobTitle})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].Count > counts[b].Count
	})

	summary := models.Summary{
		MostCommon: counts[0],
		Total:      len(jobs),
		Top:        counts,
	}
	if top > 0 && len(counts) > top {
		summary.Top = counts[:top]
	}
	return summary
}

// FunFacts returns the overview for country. It reports false when the
// country has no job listings.
func (e *Engine) FunFacts(country string) (models.FunFacts, bool) {
	jobs := e.CountryJobs(country)
	if len(jobs) == 0 {
		return models.FunFacts{}, false
	}

	facts := models.FunFacts{
		Summary:      e.Summarize(jobs),
		MedianSalary: NoSalary,
	}
	if s, ok := e.FindSalary(country); ok {
		if s.MedianSalary != "" {
			facts.MedianSalary = s.MedianSalary
		}
		facts.Currency = s.CurrencyTicker
	}
	return facts, true
}

// Search runs one user query. Without a country nothing is computed.
// A search term shorter than the minimum length produces the country
// overview and is reported to the tracker; a longer one filters jobs.
func (e *Engine) Search(country, jobQuery string) models.SearchResult {
	q := Normalize(jobQuery)
	result := models.SearchResult{
		Country: country,
		Query:   q,
		Mode:    models.ModeNone,
	}
	if strings.TrimSpace(country) == "" {
		return result
	}

	if s, ok := e.FindSalary(country); ok {
		result.Salary = &s
	}

	if utf8.RuneCountInString(q) < e.minQuery {
		result.Mode = models.ModeSummary
		if e.tracker != nil {
			e.tracker.TrackSearch(q, country)
		}
		if facts, ok := e.FunFacts(country); ok {
			result.FunFacts = &facts
		}
		return result
	}

	result.Mode = models.ModeJobs
	result.Jobs = e.FindJobs(country, q)
	if result.Jobs == nil {
		// jobs mode always reports a list, even an empty one
		result.Jobs = []models.JobRecord{}
	}
	return result
}

// Countries lists the distinct countries of the salary table, sorted
func (e *Engine) Countries() []string {
	seen := make(map[string]struct{})
	var countries []string
	for _, s := range e.ds.Salaries() {
		if s.Country == "" {
			continue
		}
		if _, ok := seen[s.Country]; ok {
			continue
		}
		seen[s.Country] = struct{}{}
		countries = append(countries, s.Country)
	}
	sort.Strings(countries)
	return countries
}
