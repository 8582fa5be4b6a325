package cmd

import (
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/finpilot/orderctl/internal/config"
	"github.com/finpilot/orderctl/internal/ui"
)

var (
	verbose bool
	quiet   bool
	noColor bool
	cfgFile string
	logger  *log.Logger
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "orderctl",
	Short: "Validate order sheets and report mock order creation",
	Long: ui.Banner() + `
orderctl reads tabular order data from a spreadsheet source, checks every
row against the order intake rules, and reports a simulated order-creation
result per row. No order is created anywhere.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cmd.Name() != "version" && cmd.Name() != "help" {
			var err error
			if cfgFile != "" {
				cfg, err = config.Load(cfgFile)
			} else {
				cfg, err = config.LoadFromProject()
			}
			if err != nil {
				logger.Warn("could not load config, using defaults", "error", err)
				cfg = config.DefaultConfig()
			}
		}

		applyUISettings()
		setupLogger()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg != nil && cfg.Validate() == nil {
			return runCmd.RunE(cmd, args)
		}
		return cmd.Help()
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if logger == nil {
			setupLogger()
		}
		logger.Error(err.Error())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: orderctl.yaml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func applyUISettings() {
	if cfg == nil {
		ui.ApplyPreferences(ui.Preferences{NoColor: noColor})
		return
	}
	ui.ApplyPreferences(ui.Preferences{
		NoColor: cfg.UI.NoColor || noColor,
		Dense:   cfg.UI.Dense,
	})
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !noColor && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}
