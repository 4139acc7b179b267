package models

// JobRecord represents one row of the jobs table
type JobRecord struct {
	Country     string `json:"country"`
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
	City        string `json:"city"`
	JobURL      string `json:"job_url"`
}

// SalaryRecord represents one row of the salary table.
// Amounts are kept as text and parsed when they are displayed.
type SalaryRecord struct {
	Country        string `json:"country"`
	MinSalary      string `json:"min_salary"`
	MedianSalary   string `json:"median_salary"`
	CurrencyTicker string `json:"currency_ticker"`
}

// TitleCount pairs a job title with the number of listings carrying it
type TitleCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// Summary is the title histogram of a set of job listings
type Summary struct {
	MostCommon TitleCount   `json:"most_common"`
	Total      int          `json:"total"`
	Top        []TitleCount `json:"top"`
}

// Empty reports whether the summary was built from zero listings
func (s Summary) Empty() bool {
	return s.Total == 0
}

// FunFacts is the country overview shown when no job search term is given
type FunFacts struct {
	Summary
	MedianSalary string `json:"median_salary"`
	Currency     string `json:"currency"`
}

// Mode tells which kind of answer a search produced
type Mode string

const (
	// ModeNone is returned when no country was selected
	ModeNone Mode = "none"
	// ModeSummary is the country overview, used for short or empty search terms
	ModeSummary Mode = "summary"
	// ModeJobs is the filtered job list
	ModeJobs Mode = "jobs"
)

// SearchResult is everything a renderer needs for one country/query pair
type SearchResult struct {
	Country  string        `json:"country"`
	Query    string        `json:"query"`
	Mode     Mode          `json:"mode"`
	Salary   *SalaryRecord `json:"salary,omitempty"`
	Jobs     []JobRecord   `json:"jobs"`
	FunFacts *FunFacts     `json:"fun_facts,omitempty"`
}
