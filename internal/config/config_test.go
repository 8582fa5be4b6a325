package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Source != SourceGoogle {
		t.Errorf("default source = %q, want %q", cfg.Source, SourceGoogle)
	}
	if cfg.Worksheet != "Orders" {
		t.Errorf("default worksheet = %q, want Orders", cfg.Worksheet)
	}
	if cfg.CredentialsFile != "credentials.json" {
		t.Errorf("default credentials = %q, want credentials.json", cfg.CredentialsFile)
	}
}

// clearEnv blanks the override variables so Load tests see only the file.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ORDER_SOURCE", "SHEET_ID", "WORKSHEET_NAME", "GOOGLE_APPLICATION_CREDENTIALS", "ORDER_FILE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := "source: csv\nfile: exports/orders.csv\nui:\n  no_color: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != SourceCSV {
		t.Errorf("source = %q, want csv", cfg.Source)
	}
	if cfg.File != "exports/orders.csv" {
		t.Errorf("file = %q, want exports/orders.csv", cfg.File)
	}
	if !cfg.UI.NoColor {
		t.Error("ui.no_color not applied")
	}
	// Unset fields keep their defaults.
	if cfg.Worksheet != "Orders" {
		t.Errorf("worksheet = %q, want default Orders", cfg.Worksheet)
	}
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != SourceGoogle {
		t.Errorf("source = %q, want default google", cfg.Source)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("source: [broken"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("ORDER_SOURCE", "xlsx")
	t.Setenv("SHEET_ID", "env-sheet")
	t.Setenv("WORKSHEET_NAME", "EnvOrders")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/secrets/creds.json")
	t.Setenv("ORDER_FILE", "orders.xlsx")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.Source != "xlsx" {
		t.Errorf("source = %q, want xlsx", cfg.Source)
	}
	if cfg.SheetID != "env-sheet" {
		t.Errorf("sheet id = %q, want env-sheet", cfg.SheetID)
	}
	if cfg.Worksheet != "EnvOrders" {
		t.Errorf("worksheet = %q, want EnvOrders", cfg.Worksheet)
	}
	if cfg.CredentialsFile != "/secrets/creds.json" {
		t.Errorf("credentials = %q, want /secrets/creds.json", cfg.CredentialsFile)
	}
	if cfg.File != "orders.xlsx" {
		t.Errorf("file = %q, want orders.xlsx", cfg.File)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"google ok", Config{Source: SourceGoogle, SheetID: "abc", Worksheet: "Orders"}, false},
		{"google missing sheet id", Config{Source: SourceGoogle, Worksheet: "Orders"}, true},
		{"google missing worksheet", Config{Source: SourceGoogle, SheetID: "abc"}, true},
		{"xlsx ok", Config{Source: SourceXLSX, File: "o.xlsx", Worksheet: "Orders"}, false},
		{"xlsx missing file", Config{Source: SourceXLSX, Worksheet: "Orders"}, true},
		{"csv ok", Config{Source: SourceCSV, File: "o.csv"}, false},
		{"csv missing file", Config{Source: SourceCSV}, true},
		{"unknown source", Config{Source: "ftp"}, true},
		{"empty source", Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg := DefaultConfig()
	cfg.Source = SourceCSV
	cfg.File = "orders.csv"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Source != SourceCSV || loaded.File != "orders.csv" {
		t.Errorf("roundtrip mismatch: %+v", loaded)
	}
}
