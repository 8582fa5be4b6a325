package sheet

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSource reads a worksheet through the Google Sheets API using a
// service-account credentials file and the read-only scope. Transport
// failures (bad credentials, unknown sheet) are run-level errors and abort
// the run before any row is classified.
type GoogleSource struct {
	SheetID   string
	Worksheet string
	CredsFile string
}

func (s *GoogleSource) Describe() string {
	return fmt.Sprintf("google sheet %s (worksheet %q)", s.SheetID, s.Worksheet)
}

// Fetch reads every value of the worksheet in a single call.
func (s *GoogleSource) Fetch(ctx context.Context) (*Table, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(s.CredsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}

	resp, err := svc.Spreadsheets.Values.Get(s.SheetID, s.Worksheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %q: %w", s.Worksheet, err)
	}

	values := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprint(cell)
		}
		values = append(values, cells)
	}
	return tableFromValues(values), nil
}
