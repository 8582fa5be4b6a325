package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/finpilot/orderctl/internal/config"
	"github.com/finpilot/orderctl/internal/orders"
	"github.com/finpilot/orderctl/internal/sheet"
	"github.com/finpilot/orderctl/internal/ui"
)

var (
	runSource    string
	runSheetID   string
	runWorksheet string
	runCreds     string
	runFile      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch the order sheet and classify every row",
	Long: `Fetch all rows from the configured source, validate each row against
the order intake rules, and print one classification line per row followed
by a summary.

Classifications:
  CREATE  all checks passed and status is exactly 'new'
  SKIP    all checks passed but status is not 'new'
  ERROR   one or more required fields missing or invalid

Examples:
  orderctl run
  orderctl run --source csv --file orders.csv
  orderctl run --source google --sheet 1BxiMVs0... --worksheet Orders`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runSource, "source", "", "Row source: google, xlsx, or csv")
	runCmd.Flags().StringVar(&runSheetID, "sheet", "", "Google spreadsheet id")
	runCmd.Flags().StringVar(&runWorksheet, "worksheet", "", "Worksheet name")
	runCmd.Flags().StringVar(&runCreds, "credentials", "", "Service account credentials file")
	runCmd.Flags().StringVar(&runFile, "file", "", "Local xlsx/csv file")
}

func runRun(cmd *cobra.Command, args []string) error {
	ui.StartScreen("ORDER VALIDATION", "Fetch rows and classify each against the intake rules")

	applyRunFlags()

	if err := cfg.Validate(); err != nil {
		if !ui.IsInteractiveTerminal() {
			return fmt.Errorf("configuration: %w", err)
		}
		if err := promptSource(); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration: %w", err)
		}
	}

	src, err := sheet.FromConfig(cfg)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger.Debug("starting validation run", "run_id", runID, "source", src.Describe())

	ctx := cmd.Context()
	var table *sheet.Table
	err = ui.RunWithSpinner("Fetching "+src.Describe(), func() error {
		var ferr error
		table, ferr = src.Fetch(ctx)
		return ferr
	})
	if err != nil {
		return fmt.Errorf("fetching rows: %w", err)
	}

	if len(table.Header) == 0 {
		logger.Warn("sheet is empty", "run_id", runID)
	}
	logger.Debug("fetched rows", "run_id", runID, "data_rows", len(table.Rows))

	report := orders.ClassifyAll(table.Header, table.Rows)

	for _, res := range report.Results {
		fmt.Println(ui.StyleReportLine(res.Line()))
	}
	for _, line := range report.SummaryLines() {
		fmt.Println(line)
	}

	// On a terminal, close with a box like the status screens do. Piped
	// output ends at the summary block.
	if ui.IsInteractiveTerminal() {
		if report.Errors > 0 {
			fmt.Println(ui.ErrorBox.Render(fmt.Sprintf("%d row(s) failed validation", report.Errors)))
		} else {
			fmt.Println(ui.InfoBox.Render(fmt.Sprintf("%d mock order(s) created, %d row(s) skipped", report.Created, report.Skipped)))
		}
	}

	logger.Debug("run complete", "run_id", runID,
		"rows", report.Rows(), "created", report.Created,
		"skipped", report.Skipped, "errors", report.Errors)

	return nil
}

// applyRunFlags overlays run flags on the loaded configuration.
func applyRunFlags() {
	if runSource != "" {
		cfg.Source = runSource
	}
	if runSheetID != "" {
		cfg.SheetID = runSheetID
	}
	if runWorksheet != "" {
		cfg.Worksheet = runWorksheet
	}
	if runCreds != "" {
		cfg.CredentialsFile = runCreds
	}
	if runFile != "" {
		cfg.File = runFile
	}
}

// promptSource asks for the missing source settings interactively.
func promptSource() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Row source").
				Description("Where should order rows be read from?").
				Options(
					huh.NewOption("Google Sheet", config.SourceGoogle),
					huh.NewOption("Excel workbook", config.SourceXLSX),
					huh.NewOption("CSV file", config.SourceCSV),
				).
				Value(&cfg.Source),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	switch cfg.Source {
	case config.SourceGoogle:
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Spreadsheet id").
				Description("The id from the sheet URL").
				Value(&cfg.SheetID),
			huh.NewInput().
				Title("Worksheet").
				Placeholder("Orders").
				Value(&cfg.Worksheet),
			huh.NewInput().
				Title("Credentials file").
				Placeholder("credentials.json").
				Value(&cfg.CredentialsFile),
		)).Run()
	default:
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("File path").
				Description("Local workbook or csv file").
				Value(&cfg.File),
		)).Run()
	}
}
