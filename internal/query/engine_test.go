package query

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/jobexplorer/internal/dataset"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/models"
)

type recordingTracker struct {
	calls [][2]string
}

func (r *recordingTracker) TrackSearch(query, country string) {
	r.calls = append(r.calls, [2]string{query, country})
}

func job(country, title string) models.JobRecord {
	return models.JobRecord{Country: country, JobTitle: title, CompanyName: "Co", City: "City", JobURL: "https://example.com"}
}

func testDataset() *dataset.Dataset {
	jobs := []models.JobRecord{
		job("France", "Software Engineer"),
		job(" france ", "Data Engineer"),
		job("France", "Sales Manager"),
		job("Germany", "Software Engineer"),
		job("FRANCE", "Software Engineer"),
		job("France", "Nurse"),
	}
	salaries := []models.SalaryRecord{
		{Country: "Germany", MinSalary: "40000", MedianSalary: "55000", CurrencyTicker: "EUR"},
		{Country: " France", MinSalary: "30000", MedianSalary: "42000", CurrencyTicker: "EUR"},
		{Country: "France", MinSalary: "1", MedianSalary: "2", CurrencyTicker: "USD"},
		{Country: "Spain", MinSalary: "20000", MedianSalary: "", CurrencyTicker: "EUR"},
		{Country: "", MinSalary: "0", MedianSalary: "0", CurrencyTicker: "EUR"},
	}
	return dataset.New(jobs, salaries)
}

func TestFindSalaryFirstMatchWins(t *testing.T) {
	e := NewEngine(testDataset())

	s, ok := e.FindSalary("FRANCE ")
	require.True(t, ok)
	assert.Equal(t, "30000", s.MinSalary)
	assert.Equal(t, "EUR", s.CurrencyTicker)
}

func TestFindSalaryNone(t *testing.T) {
	e := NewEngine(testDataset())

	_, ok := e.FindSalary("Italy")
	assert.False(t, ok)
}

func TestFindJobsFiltersCountryAndTitle(t *testing.T) {
	e := NewEngine(testDataset())

	jobs := e.FindJobs("france", "ENG")
	require.Len(t, jobs, 3)
	for _, j := range jobs {
		assert.Equal(t, "france", Normalize(j.Country))
		assert.Contains(t, Normalize(j.JobTitle), "eng")
	}
	assert.Equal(t, "Software Engineer", jobs[0].JobTitle)
	assert.Equal(t, "Data Engineer", jobs[1].JobTitle)
}

func TestFindJobsCappedAtLimit(t *testing.T) {
	var jobs []models.JobRecord
	for i := 0; i < 25; i++ {
		jobs = append(jobs, job("France", fmt.Sprintf("Engineer %d", i)))
	}
	ds := dataset.New(jobs, nil)

	got := NewEngine(ds).FindJobs("france", "eng")
	require.Len(t, got, 10)
	assert.Equal(t, "Engineer 0", got[0].JobTitle)
	assert.Equal(t, "Engineer 9", got[9].JobTitle)

	assert.Len(t, NewEngine(ds, WithJobLimit(3)).FindJobs("france", "eng"), 3)
	assert.Len(t, NewEngine(ds, WithJobLimit(0)).FindJobs("france", "eng"), 25)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]models.JobRecord{{JobTitle: "A"}, {JobTitle: "B"}, {JobTitle: "A"}}, DefaultTopTitles)

	assert.Equal(t, models.TitleCount{Title: "A", Count: 2}, s.MostCommon)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, []models.TitleCount{{Title: "A", Count: 2}, {Title: "B", Count: 1}}, s.Top)
}

func TestSummarizeTiesKeepEncounterOrderAndCapTop(t *testing.T) {
	titles := []string{"F", "E", "D", "C", "B", "A", "C", "A"}
	var jobs []models.JobRecord
	for _, title := range titles {
		jobs = append(jobs, models.JobRecord{JobTitle: title})
	}

	s := Summarize(jobs, 5)
	assert.Equal(t, []models.TitleCount{
		{Title: "C", Count: 2},
		{Title: "A", Count: 2},
		{Title: "F", Count: 1},
		{Title: "E", Count: 1},
		{Title: "D", Count: 1},
	}, s.Top)
	assert.Equal(t, models.TitleCount{Title: "C", Count: 2}, s.MostCommon)
	assert.Equal(t, 8, s.Total)

	assert.Len(t, Summarize(jobs, 0).Top, 6)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, DefaultTopTitles)
	assert.True(t, s.Empty())
	assert.Empty(t, s.Top)
}

func TestFunFacts(t *testing.T) {
	e := NewEngine(testDataset())

	facts, ok := e.FunFacts("France")
	require.True(t, ok)
	assert.Equal(t, 5, facts.Total)
	assert.Equal(t, models.TitleCount{Title: "Software Engineer", Count: 2}, facts.MostCommon)
	assert.Equal(t, "42000", facts.MedianSalary)
	assert.Equal(t, "EUR", facts.Currency)

	_, ok = e.FunFacts("Spain")
	assert.False(t, ok)
}

func TestFunFactsWithoutSalary(t *testing.T) {
	ds := dataset.New([]models.JobRecord{job("Italy", "Chef")}, []models.SalaryRecord{{Country: "Spain"}})
	facts, ok := NewEngine(ds).FunFacts("Italy")
	require.True(t, ok)
	assert.Equal(t, NoSalary, facts.MedianSalary)
	assert.Equal(t, "", facts.Currency)
}

func TestSearchModeThreshold(t *testing.T) {
	tracker := &recordingTracker{}
	e := NewEngine(testDataset(), WithTracker(tracker))

	for _, q := range []string{"", "s", " E ", "é"} {
		r := e.Search("France", q)
		assert.Equal(t, models.ModeSummary, r.Mode, "query %q", q)
		require.NotNil(t, r.FunFacts)
		assert.Nil(t, r.Jobs)
	}
	require.Len(t, tracker.calls, 4)
	assert.Equal(t, [2]string{"e", "France"}, tracker.calls[2])

	for _, q := range []string{"en", "Engineer", "zz"} {
		r := e.Search("Germany", q)
		assert.Equal(t, models.ModeJobs, r.Mode, "query %q", q)
		assert.Nil(t, r.FunFacts)
	}
	assert.Len(t, tracker.calls, 4)
}

func TestSearchWithoutCountry(t *testing.T) {
	tracker := &recordingTracker{}
	e := NewEngine(testDataset(), WithTracker(tracker))

	r := e.Search("  ", "")
	assert.Equal(t, models.ModeNone, r.Mode)
	assert.Nil(t, r.Salary)
	assert.Nil(t, r.FunFacts)
	assert.Empty(t, tracker.calls)
}

func TestSearchJobs(t *testing.T) {
	r := NewEngine(testDataset()).Search("France", "  SOFTWARE ")

	assert.Equal(t, "software", r.Query)
	require.NotNil(t, r.Salary)
	assert.Equal(t, "42000", r.Salary.MedianSalary)
	require.Len(t, r.Jobs, 2)
}

func TestSearchJobsWithoutMatchesIsEmptyList(t *testing.T) {
	r := NewEngine(testDataset()).Search("France", "astronaut")

	assert.Equal(t, models.ModeJobs, r.Mode)
	require.NotNil(t, r.Jobs)
	assert.Empty(t, r.Jobs)

	body, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"jobs":[]`)
}

func TestSearchUnknownCountry(t *testing.T) {
	r := NewEngine(testDataset()).Search("Narnia", "")
	assert.Equal(t, models.ModeSummary, r.Mode)
	assert.Nil(t, r.Salary)
	assert.Nil(t, r.FunFacts)
}

func TestSearchCustomThreshold(t *testing.T) {
	r := NewEngine(testDataset(), WithMinQueryLength(4)).Search("France", "eng")
	assert.Equal(t, models.ModeSummary, r.Mode)
}

func TestCountries(t *testing.T) {
	assert.Equal(t, []string{" France", "France", "Germany", "Spain"}, NewEngine(testDataset()).Countries())
}

func TestEmptyDataset(t *testing.T) {
	e := NewEngine(dataset.New(nil, nil))

	_, ok := e.FindSalary("France")
	assert.False(t, ok)
	assert.Empty(t, e.FindJobs("France", "eng"))
	assert.Empty(t, e.Countries())

	r := e.Search("France", "")
	assert.Equal(t, models.ModeSummary, r.Mode)
	assert.Nil(t, r.FunFacts)
}
