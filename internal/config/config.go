// Package config handles configuration loading and validation for orderctl
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-project configuration file orderctl looks for.
const ConfigFileName = "orderctl.yaml"

// Source kinds selecting where order rows are read from.
const (
	SourceGoogle = "google"
	SourceXLSX   = "xlsx"
	SourceCSV    = "csv"
)

// Config represents the main configuration for orderctl
type Config struct {
	// Source is one of google, xlsx, csv
	Source string `yaml:"source"`

	// Google Sheets settings
	SheetID         string `yaml:"sheet_id"`
	Worksheet       string `yaml:"worksheet"`
	CredentialsFile string `yaml:"credentials_file"`

	// Local file path for the xlsx and csv sources
	File string `yaml:"file"`

	// UI preferences
	UI UIConfig `yaml:"ui"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	NoColor bool `yaml:"no_color"`
	Dense   bool `yaml:"dense"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Source:          SourceGoogle,
		Worksheet:       "Orders",
		CredentialsFile: "credentials.json",
	}
}

// Load loads configuration from a file and overlays environment overrides
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	case os.IsNotExist(err):
		// defaults plus environment only
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ApplyEnv overlays environment variables on the loaded values. A .env file
// in the working directory is honored first, so deployments can keep sheet
// coordinates out of the yaml file.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("ORDER_SOURCE"); v != "" {
		c.Source = v
	}
	if v := os.Getenv("SHEET_ID"); v != "" {
		c.SheetID = v
	}
	if v := os.Getenv("WORKSHEET_NAME"); v != "" {
		c.Worksheet = v
	}
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" {
		c.CredentialsFile = v
	}
	if v := os.Getenv("ORDER_FILE"); v != "" {
		c.File = v
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Source {
	case SourceGoogle:
		if c.SheetID == "" {
			return fmt.Errorf("sheet_id is required (set it in %s or via SHEET_ID)", ConfigFileName)
		}
		if c.Worksheet == "" {
			return fmt.Errorf("worksheet is required")
		}
	case SourceXLSX:
		if c.File == "" {
			return fmt.Errorf("file is required for the xlsx source")
		}
		if c.Worksheet == "" {
			return fmt.Errorf("worksheet is required")
		}
	case SourceCSV:
		if c.File == "" {
			return fmt.Errorf("file is required for the csv source")
		}
	default:
		return fmt.Errorf("source must be one of %s, %s, %s", SourceGoogle, SourceXLSX, SourceCSV)
	}
	return nil
}

// FindConfig searches upward from the working directory for orderctl.yaml
func FindConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", os.ErrNotExist
}

// LoadFromProject loads configuration discovered from the working directory,
// falling back to defaults plus environment overrides when no file exists
func LoadFromProject() (*Config, error) {
	path, err := FindConfig()
	if err != nil {
		cfg := DefaultConfig()
		cfg.ApplyEnv()
		return cfg, nil
	}
	return Load(path)
}
