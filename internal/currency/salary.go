package currency

import "github.com/fr4nk3nst1ner/jobexplorer/internal/models"

// SalaryRange is a salary row converted for display
type SalaryRange struct {
	Min      string `json:"min_usd"`
	Median   string `json:"median_usd"`
	Currency string `json:"currency"`
}

// SalaryRange converts both amounts of s to USD display strings
func (c *Converter) SalaryRange(s models.SalaryRecord) SalaryRange {
	return SalaryRange{
		Min:      c.Format(s.MinSalary, s.CurrencyTicker),
		Median:   c.Format(s.MedianSalary, s.CurrencyTicker),
		Currency: s.CurrencyTicker,
	}
}
