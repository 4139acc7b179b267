package dataset

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/fr4nk3nst1ner/jobexplorer/internal/models"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/tsv"
)

var (
	// ErrMissingColumn is returned in strict mode when a required column is absent from the header
	ErrMissingColumn = errors.New("missing required column")
	// ErrRaggedRow is returned in strict mode when a row has fewer fields than the header
	ErrRaggedRow = errors.New("row has fewer fields than the header")
)

// JobColumns are the columns a jobs table is expected to have
var JobColumns = []string{"Country", "JobTitle", "CompanyName", "City", "JobURL"}

// SalaryColumns are the columns a salary table is expected to have
var SalaryColumns = []string{"Country", "MinSalary", "MedianSalary", "CurrencyTicker"}

// DecodeJobs maps a parsed jobs table onto JobRecords.
//
// In tolerant mode absent columns and short rows decode to empty strings and
// are logged once. In strict mode they are errors.
func DecodeJobs(table tsv.Table, strict bool) ([]models.JobRecord, error) {
	if err := checkTable("jobs", table, JobColumns, strict); err != nil {
		return nil, err
	}

	jobs := make([]models.JobRecord, 0, table.Len())
	for _, row := range table.Rows {
		jobs = append(jobs, models.JobRecord{
			Country:     row.Get("Country"),
			JobTitle:    row.Get("JobTitle"),
			CompanyName: row.Get("CompanyName"),
			City:        row.Get("City"),
			JobURL:      row.Get("JobURL"),
		})
	}
	return jobs, nil
}

// DecodeSalaries maps a parsed salary table onto SalaryRecords
func DecodeSalaries(table tsv.Table, strict bool) ([]models.SalaryRecord, error) {
	if err := checkTable("salary", table, SalaryColumns, strict); err != nil {
		return nil, err
	}

	salaries := make([]models.SalaryRecord, 0, table.Len())
	for _, row := range table.Rows {
		salaries = append(salaries, models.SalaryRecord{
			Country:        row.Get("Country"),
			MinSalary:      row.Get("MinSalary"),
			MedianSalary:   row.Get("MedianSalary"),
			CurrencyTicker: row.Get("CurrencyTicker"),
		})
	}
	return salaries, nil
}

func checkTable(name string, table tsv.Table, required []string, strict bool) error {
	// An empty table is a failed or empty load, not a schema problem.
	if len(table.Header) == 0 {
		return nil
	}

	var missing []string
	for _, col := range required {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		if strict {
			return fmt.Errorf("%s table: %w: %s", name, ErrMissingColumn, strings.Join(missing, ", "))
		}
		log.Printf("Warning: %s table has no %s column(s); values will be empty", name, strings.Join(missing, ", "))
	}

	short := 0
	for _, row := range table.Rows {
		if row.Width >= len(table.Header) {
			continue
		}
		if strict {
			return fmt.Errorf("%s table line %d: %w (%d of %d)", name, row.Line, ErrRaggedRow, row.Width, len(table.Header))
		}
		short++
	}
	if short > 0 {
		log.Printf("Warning: %s table has %d short row(s); missing fields were left empty", name, short)
	}

	return nil
}
