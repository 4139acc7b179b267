package dataset

import (
	"context"
	"sync"

	"github.com/cheggaaa/pb/v3"

	"github.com/fr4nk3nst1ner/jobexplorer/internal/models"
	"github.com/fr4nk3nst1ner/jobexplorer/internal/tsv"
)

// Dataset holds the jobs and salary tables. It is built once and never
// modified, so it can be shared between goroutines without locking.
type Dataset struct {
	jobs     []models.JobRecord
	salaries []models.SalaryRecord
}

// New builds a Dataset from already decoded records. The slices are copied.
func New(jobs []models.JobRecord, salaries []models.SalaryRecord) *Dataset {
	ds := &Dataset{
		jobs:     make([]models.JobRecord, len(jobs)),
		salaries: make([]models.SalaryRecord, len(salaries)),
	}
	copy(ds.jobs, jobs)
	copy(ds.salaries, salaries)
	return ds
}

// Jobs returns the job records in source order. Callers must not modify the slice.
func (d *Dataset) Jobs() []models.JobRecord {
	return d.jobs
}

// Salaries returns the salary records in source order. Callers must not modify the slice.
func (d *Dataset) Salaries() []models.SalaryRecord {
	return d.salaries
}

// Sources names the two resources a Dataset is loaded from
type Sources struct {
	Jobs     string
	Salaries string
}

// DefaultSources are the paths the explorer has always shipped with.
// Both files are tab separated despite the extension.
var DefaultSources = Sources{
	Jobs:     "jobs.csv",
	Salaries: "salary.csv",
}

// Options controls how Load decodes and reports progress
type Options struct {
	// Strict turns missing columns and short rows into errors
	Strict bool
	// Bar, when set, is incremented once per finished table
	Bar *pb.ProgressBar
}

// Load fetches both tables concurrently and returns once both are done.
// A table that fails to load is empty; only strict decoding can fail.
func Load(ctx context.Context, loader *tsv.Loader, src Sources, opts Options) (*Dataset, error) {
	var jobsTable, salaryTable tsv.Table
	var wg sync.WaitGroup

	fetch := func(path string, dst *tsv.Table) {
		defer wg.Done()
		*dst = loader.Load(ctx, path)
		if opts.Bar != nil {
			opts.Bar.Increment()
		}
	}

	wg.Add(2)
	go fetch(src.Jobs, &jobsTable)
	go fetch(src.Salaries, &salaryTable)
	wg.Wait()

	jobs, err := DecodeJobs(jobsTable, opts.Strict)
	if err != nil {
		return nil, err
	}
	salaries, err := DecodeSalaries(salaryTable, opts.Strict)
	if err != nil {
		return nil, err
	}

	return &Dataset{jobs: jobs, salaries: salaries}, nil
}
