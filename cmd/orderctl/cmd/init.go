package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/finpilot/orderctl/internal/config"
	"github.com/finpilot/orderctl/internal/ui"
)

var (
	initSource    string
	initSheetID   string
	initWorksheet string
	initCreds     string
	initFile      string
	initForce     bool
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize an orderctl project",
	Long: `Initialize an orderctl project with a configuration file.

This creates an orderctl.yaml pointing at the order sheet to validate.
Without flags, the settings are gathered interactively.

Examples:
  # Initialize in current directory
  orderctl init

  # Initialize for a Google Sheet
  orderctl init --source google --sheet 1BxiMVs0... --worksheet Orders

  # Initialize for a local csv export
  orderctl init --source csv --file orders.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initSource, "source", "", "Row source: google, xlsx, or csv")
	initCmd.Flags().StringVar(&initSheetID, "sheet", "", "Google spreadsheet id")
	initCmd.Flags().StringVar(&initWorksheet, "worksheet", "Orders", "Worksheet name")
	initCmd.Flags().StringVar(&initCreds, "credentials", "credentials.json", "Service account credentials file")
	initCmd.Flags().StringVar(&initFile, "file", "", "Local xlsx/csv file")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	configPath := filepath.Join(dir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !initForce {
		return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", configPath)
	}

	if initSource == "" {
		if err := promptInitOptions(); err != nil {
			return err
		}
	}

	newCfg := config.DefaultConfig()
	newCfg.Source = initSource
	newCfg.SheetID = initSheetID
	newCfg.Worksheet = initWorksheet
	newCfg.CredentialsFile = initCreds
	newCfg.File = initFile

	if err := newCfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	if err := newCfg.Save(configPath); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}

	fmt.Println()
	fmt.Println(ui.SuccessBox.Render(fmt.Sprintf(
		"Project initialized!\n\nConfig: %s\n\nNext steps:\n  1. Run 'orderctl status' to check source readiness\n  2. Run 'orderctl run' to validate the sheet",
		configPath,
	)))

	return nil
}

func promptInitOptions() error {
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
				Value(&initSource),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	switch initSource {
	case config.SourceGoogle:
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Spreadsheet id").
				Description("The id from the sheet URL").
				Value(&initSheetID),
			huh.NewInput().
				Title("Worksheet").
				Placeholder("Orders").
				Value(&initWorksheet),
			huh.NewInput().
				Title("Credentials file").
				Placeholder("credentials.json").
				Value(&initCreds),
		)).Run()
	default:
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("File path").
				Description("Local workbook or csv file").
				Value(&initFile),
		)).Run()
	}
}
