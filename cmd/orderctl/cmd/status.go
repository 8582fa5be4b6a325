package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finpilot/orderctl/internal/config"
	"github.com/finpilot/orderctl/internal/orders"
	"github.com/finpilot/orderctl/internal/sheet"
	"github.com/finpilot/orderctl/internal/ui"
)

var statusFetch bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the resolved configuration and source readiness",
	Long: `Display the current orderctl status including:
  - Resolved configuration (file, environment, flags)
  - Recognized header aliases per canonical field
  - Source readiness (credentials or file present)
  - Optionally, the live header mapping of the sheet (--fetch)

Examples:
  orderctl status
  orderctl status --fetch`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusFetch, "fetch", false, "Fetch the sheet and show its header mapping")
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.Banner())

	fmt.Println(ui.Title.Render("Configuration"))
	printKV("Source", ui.Bold.Render(cfg.Source))
	switch cfg.Source {
	case config.SourceGoogle:
		printKV("Sheet ID", orEmpty(cfg.SheetID))
		printKV("Worksheet", cfg.Worksheet)
		printKV("Credentials", cfg.CredentialsFile)
	case config.SourceXLSX:
		printKV("File", orEmpty(cfg.File))
		printKV("Worksheet", cfg.Worksheet)
	case config.SourceCSV:
		printKV("File", orEmpty(cfg.File))
	}

	fmt.Println()
	fmt.Println(ui.Title.Render("Readiness"))
	printReadiness()

	fmt.Println()
	fmt.Println(ui.Title.Render("Header Aliases"))
	for _, field := range orders.Fields() {
		printKV(string(field), strings.Join(orders.AliasesFor(field), ", "))
	}

	if statusFetch {
		fmt.Println()
		fmt.Println(ui.Title.Render("Live Sheet"))
		if err := printLiveMapping(cmd); err != nil {
			fmt.Printf("  %s %v\n", ui.StatusError.String(), err)
		}
	} else {
		fmt.Println()
		fmt.Println(ui.HintStyle.Render("Run 'orderctl status --fetch' to inspect the live header mapping."))
	}

	return nil
}

func printReadiness() {
	if err := cfg.Validate(); err != nil {
		fmt.Printf("  %s config: %v\n", ui.StatusError.String(), err)
		return
	}
	fmt.Printf("  %s config valid\n", ui.StatusSuccess.String())

	path := cfg.File
	if cfg.Source == config.SourceGoogle {
		path = cfg.CredentialsFile
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("  %s %s\n", ui.StatusSuccess.String(), path)
	} else {
		fmt.Printf("  %s %s %s\n", ui.StatusPending.String(), path, ui.MutedStyle.Render("(not found)"))
	}
}

func printLiveMapping(cmd *cobra.Command) error {
	src, err := sheet.FromConfig(cfg)
	if err != nil {
		return err
	}
	table, err := src.Fetch(cmd.Context())
	if err != nil {
		return err
	}

	printKV("Data rows", fmt.Sprintf("%d", len(table.Rows)))
	hm := orders.NewHeaderMap(table.Header)
	for _, field := range orders.Fields() {
		idx, ok := hm[field]
		if !ok {
			fmt.Printf("  %s %s %s\n", ui.StatusError.String(), field, ui.MutedStyle.Render("(no matching column)"))
			continue
		}
		fmt.Printf("  %s %s → column %d (%q)\n", ui.StatusSuccess.String(), field, idx+1, table.Header[idx])
	}
	return nil
}

func printKV(key, value string) {
	fmt.Printf("  %s %s\n", ui.MutedStyle.Render(key+":"), value)
}

func orEmpty(s string) string {
	if s == "" {
		return ui.MutedStyle.Render("(not set)")
	}
	return s
}
