package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	API      APIConfig
	Identity IdentityConfig
	Print    PrintConfig
	Sheets   SheetsConfig
	Log      LogConfig
}

// APIConfig points at the remote item/order store.
type APIConfig struct {
	BaseURL string
}

// IdentityConfig contains the identity-provider endpoint and pool identifiers.
type IdentityConfig struct {
	BaseURL  string
	PoolID   string
	ClientID string
}

// PrintConfig holds the loopback address the packing-slip server listens on.
type PrintConfig struct {
	Addr string
}

// SheetsConfig contains configuration for the analytics report export.
// Both fields are optional; export is disabled when either is missing.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	ReportRange     string
}

// LogConfig holds logging options.
type LogConfig struct {
	File string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: getenvWithDefault("WMS_API_BASE_URL", "https://6yui8nj2ic.execute-api.us-east-1.amazonaws.com/dev"),
		},
		Identity: IdentityConfig{
			BaseURL:  getenvWithDefault("WMS_IDENTITY_BASE_URL", "https://cognito-idp.us-east-1.amazonaws.com"),
			PoolID:   getenvWithDefault("WMS_IDENTITY_POOL_ID", "us-east-1_yNYSZwwOb"),
			ClientID: getenvWithDefault("WMS_IDENTITY_CLIENT_ID", "6ocitqn0f4plno0a998fv3shs4"),
		},
		Print: PrintConfig{
			Addr: getenvWithDefault("WMS_PRINT_ADDR", "127.0.0.1:8745"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_REPORT_ID"),
			ReportRange:     getenvWithDefault("WMS_EXPORT_RANGE", "Reports!A:E"),
		},
		Log: LogConfig{
			File: getenvWithDefault("WMS_LOG_FILE", "wms.log"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.API.BaseURL == "" {
		return errors.New("WMS_API_BASE_URL must be provided")
	}

	switch {
	case c.Identity.BaseURL == "":
		return errors.New("WMS_IDENTITY_BASE_URL must be provided")
	case c.Identity.PoolID == "":
		return errors.New("WMS_IDENTITY_POOL_ID must be provided")
	case c.Identity.ClientID == "":
		return errors.New("WMS_IDENTITY_CLIENT_ID must be provided")
	}

	if c.Print.Addr == "" {
		return errors.New("WMS_PRINT_ADDR must not be empty")
	}

	// Sheets export is optional, but a spreadsheet without credentials (or
	// the reverse) is a misconfiguration rather than a disabled feature.
	if (c.Sheets.SpreadsheetID == "") != (c.Sheets.CredentialsPath == "") {
		return errors.New("GOOGLE_SHEET_REPORT_ID and GOOGLE_SHEETS_CREDENTIALS_PATH must be set together")
	}

	return nil
}

// ExportEnabled reports whether the analytics sheet export is configured.
func (c *Config) ExportEnabled() bool {
	return c.Sheets.SpreadsheetID != "" && c.Sheets.CredentialsPath != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
