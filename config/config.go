package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from
// environment variables or a .env file.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	QUOTE_BASE_URL=https://query1.finance.yahoo.com
//	QUOTE_TIMEOUT_SECONDS=10
//	QUOTE_MAX_PARALLEL=4
//	QUOTE_RATE_PER_SEC=5
//	INSIGHTS_MODEL=gemini-2.5-flash
//	GEMINI_API_KEY=...
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Quote    QuoteConfig    // Price resolver settings
	Insights InsightsConfig // Optional AI commentary settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// QuoteConfig defines how the price resolver talks to the quote API.
//
// Fields:
//   - BaseURL: root of the quote API (default: Yahoo Finance query host).
//   - Timeout: per-request timeout for one symbol lookup.
//   - MaxParallel: how many symbols may be fetched concurrently.
//   - RatePerSec: request budget per second against the quote API.
type QuoteConfig struct {
	BaseURL     string
	Timeout     time.Duration
	MaxParallel int
	RatePerSec  float64
}

// InsightsConfig controls the optional Gemini-backed commentary.
// The feature is active only when APIKey is non-empty; the analysis
// pipeline never depends on it.
type InsightsConfig struct {
	Model  string
	APIKey string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the
// application. All packages should read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env
// file or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("QUOTE_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("QUOTE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("QUOTE_MAX_PARALLEL", 4)
	viper.SetDefault("QUOTE_RATE_PER_SEC", 5)

	viper.SetDefault("INSIGHTS_MODEL", "gemini-2.5-flash")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Quote: QuoteConfig{
			BaseURL:     viper.GetString("QUOTE_BASE_URL"),
			Timeout:     time.Duration(viper.GetInt("QUOTE_TIMEOUT_SECONDS")) * time.Second,
			MaxParallel: viper.GetInt("QUOTE_MAX_PARALLEL"),
			RatePerSec:  viper.GetFloat64("QUOTE_RATE_PER_SEC"),
		},
		Insights: InsightsConfig{
			Model:  viper.GetString("INSIGHTS_MODEL"),
			APIKey: viper.GetString("GEMINI_API_KEY"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing or nonsensical.
//
// This avoids unexpected runtime failures due to incomplete
// configuration. GEMINI_API_KEY is intentionally not required: without
// it the insights endpoint reports itself unavailable.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Quote.BaseURL == "" {
		missing = append(missing, "QUOTE_BASE_URL")
	}
	if AppConfig.Quote.Timeout <= 0 {
		missing = append(missing, "QUOTE_TIMEOUT_SECONDS")
	}
	if AppConfig.Quote.MaxParallel <= 0 {
		missing = append(missing, "QUOTE_MAX_PARALLEL")
	}
	if AppConfig.Quote.RatePerSec <= 0 {
		missing = append(missing, "QUOTE_RATE_PER_SEC")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
