package slowtunisia

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/indigoandlavender/slow-tunisia/content"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string // Site name (default "Slow Tunisia")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags and JSON-LD
	Author      string // Default author name

	Addr   string // Listen address (default ":3000")
	AppEnv string // "dev" switches logging to a console writer

	SheetsBaseURL string // Sheets API base (default "https://sheets.googleapis.com")
	SpreadsheetID string // Required: backing spreadsheet id
	SheetsAPIKey  string // Required: Sheets API key
	SheetsRPS     int    // Client-side request rate toward the Sheets API

	RevalidateTTL time.Duration // Content freshness window (default 60s)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Slow Tunisia"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.SheetsBaseURL == "" {
		c.SheetsBaseURL = "https://sheets.googleapis.com"
	}
	if c.SheetsRPS == 0 {
		c.SheetsRPS = 5
	}
	if c.RevalidateTTL == 0 {
		c.RevalidateTTL = 60 * time.Second
	}
}

// LoadConfig builds a SiteConfig from environment variables.
func LoadConfig() SiteConfig {
	return SiteConfig{
		Name:          EnvOr("SITE_NAME", "Slow Tunisia"),
		URL:           EnvOr("SITE_URL", "http://localhost:3000"),
		Description:   os.Getenv("SITE_DESCRIPTION"),
		Author:        os.Getenv("SITE_AUTHOR"),
		Addr:          EnvOr("HTTP_ADDR", ":3000"),
		AppEnv:        EnvOr("APP_ENV", "prod"),
		SheetsBaseURL: os.Getenv("SHEETS_BASE_URL"),
		SpreadsheetID: os.Getenv("SHEETS_SPREADSHEET_ID"),
		SheetsAPIKey:  os.Getenv("SHEETS_API_KEY"),
		SheetsRPS:     envInt("SHEETS_RPS", 5),
		RevalidateTTL: time.Duration(envInt("REVALIDATE_SECONDS", 60)) * time.Second,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithSource overrides the spreadsheet-backed content source, mainly for
// tests and local fixtures.
func WithSource(src content.Source) Option {
	return func(a *App) {
		a.source = src
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithCustomRoutes registers additional routes on the Echo instance before
// the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// NewLogger returns a zerolog Logger. APP_ENV=dev (or development) uses a
// human-friendly console writer.
func NewLogger(env string) zerolog.Logger {
	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if env == "dev" || env == "development" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return l
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
