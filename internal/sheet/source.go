// Package sheet provides the tabular row sources a validation run can read
// from: a remote Google Sheet, a local Excel workbook, or a local CSV file.
package sheet

import (
	"context"
	"fmt"

	"github.com/finpilot/orderctl/internal/config"
)

// Table holds one worksheet's values: a header row and zero or more data
// rows, positionally aligned with the header. Shorter rows mean absent
// trailing cells. A table is fetched once per run and never mutated.
type Table struct {
	Header []string
	Rows   [][]string
}

// Source fetches a table, once per run.
type Source interface {
	// Fetch reads the whole worksheet. An empty or header-only sheet is not
	// an error; it yields a table with no data rows.
	Fetch(ctx context.Context) (*Table, error)
	// Describe names the source for logs and the status screen.
	Describe() string
}

// FromConfig builds the configured source.
func FromConfig(cfg *config.Config) (Source, error) {
	switch cfg.Source {
	case config.SourceGoogle:
		return &GoogleSource{
			SheetID:   cfg.SheetID,
			Worksheet: cfg.Worksheet,
			CredsFile: cfg.CredentialsFile,
		}, nil
	case config.SourceXLSX:
		return &XLSXSource{Path: cfg.File, Worksheet: cfg.Worksheet}, nil
	case config.SourceCSV:
		return &CSVSource{Path: cfg.File}, nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

// tableFromValues splits raw worksheet values into header and data rows.
func tableFromValues(values [][]string) *Table {
	if len(values) == 0 {
		return &Table{}
	}
	return &Table{Header: values[0], Rows: values[1:]}
}
