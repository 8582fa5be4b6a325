package sheet

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads a worksheet from a local Excel workbook.
type XLSXSource struct {
	Path      string
	Worksheet string
}

func (s *XLSXSource) Describe() string {
	return fmt.Sprintf("workbook %s (worksheet %q)", s.Path, s.Worksheet)
}

func (s *XLSXSource) Fetch(_ context.Context) (*Table, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(s.Worksheet)
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %q: %w", s.Worksheet, err)
	}
	return tableFromValues(rows), nil
}
