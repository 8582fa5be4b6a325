package sheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
)

// CSVSource reads rows from a local CSV file.
type CSVSource struct {
	Path string
}

func (s *CSVSource) Describe() string {
	return "csv file " + s.Path
}

func (s *CSVSource) Fetch(_ context.Context) (*Table, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may be ragged
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return tableFromValues(records), nil
}
