package orders

import "fmt"

// Report accumulates per-row outcomes and the run-level counters.
type Report struct {
	Results []RowResult
	Created int
	Skipped int
	Errors  int
}

// Add records one row outcome.
func (r *Report) Add(res RowResult) {
	r.Results = append(r.Results, res)
	switch res.Outcome {
	case OutcomeCreate:
		r.Created++
	case OutcomeSkip:
		r.Skipped++
	case OutcomeError:
		r.Errors++
	}
}

// Rows returns the number of classified data rows.
func (r *Report) Rows() int {
	return len(r.Results)
}

// SummaryLines renders the summary block. Skipped rows are counted but not
// printed.
func (r *Report) SummaryLines() []string {
	return []string{
		"",
		"=== SUMMARY ===",
		fmt.Sprintf("Mock orders created: %d", r.Created),
		fmt.Sprintf("Rows with errors: %d", r.Errors),
	}
}

// ClassifyAll builds the header map once and classifies every data row in
// sheet order. Data rows are numbered from 2; row 1 is the header.
func ClassifyAll(header []string, rows [][]string) *Report {
	c := NewClassifier(NewHeaderMap(header))
	report := &Report{}
	for i, row := range rows {
		report.Add(c.Classify(i+2, row))
	}
	return report
}
