// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	maxPageSize    = 5000
	maxConcurrency = 64
)

// Config holds the server configuration.
type Config struct {
	APIURL                     string `mapstructure:"api_url"`
	DatabasePath               string `mapstructure:"database_path"`
	CORSAllowOrigins           string `mapstructure:"cors_allow_origins"`
	EnablePprof                bool   `mapstructure:"enable_pprof"`
	LogFormat                  string `mapstructure:"log_format"`
	SeedFallback               bool   `mapstructure:"seed_fallback"`
	FallbackEmissionFactor     string `mapstructure:"fallback_emission_factor"`
	AggregationPageSize        int    `mapstructure:"aggregation_page_size"`
	AggregationPageConcurrency int    `mapstructure:"aggregation_page_concurrency"`
	ReportMonthConcurrency     int    `mapstructure:"report_month_concurrency"`
	ImportPageSize             int    `mapstructure:"import_page_size"`
}

// Load reads the configuration from the environment. Variables in a .env
// file in the working directory are loaded first but never override the
// environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("api_url", "")
	v.SetDefault("database_path", "data/carbonledger.db")
	v.SetDefault("cors_allow_origins", "")
	v.SetDefault("enable_pprof", false)
	v.SetDefault("log_format", "")
	v.SetDefault("seed_fallback", false)
	v.SetDefault("fallback_emission_factor", "0")
	v.SetDefault("aggregation_page_size", 500)
	v.SetDefault("aggregation_page_concurrency", 4)
	v.SetDefault("report_month_concurrency", 4)
	v.SetDefault("import_page_size", 500)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, nil
}

// Validate returns an error listing every invalid setting.
func (c Config) Validate() error {
	var errors []string

	if c.APIURL == "" {
		errors = append(errors, "API_URL must be set")
	} else if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Sprintf("invalid API_URL '%s': must be an absolute URL", c.APIURL))
	}

	if strings.TrimSpace(c.DatabasePath) == "" {
		errors = append(errors, "DATABASE_PATH must not be empty")
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid LOG_FORMAT '%s': must be one of [human json]", c.LogFormat))
	}

	if factor, err := decimal.NewFromString(c.FallbackEmissionFactor); err != nil {
		errors = append(errors, fmt.Sprintf("invalid FALLBACK_EMISSION_FACTOR '%s': must be a decimal", c.FallbackEmissionFactor))
	} else if factor.IsNegative() {
		errors = append(errors, fmt.Sprintf("invalid FALLBACK_EMISSION_FACTOR %s: must not be negative", factor))
	}

	for _, setting := range []struct {
		name  string
		value int
		max   int
	}{
		{"AGGREGATION_PAGE_SIZE", c.AggregationPageSize, maxPageSize},
		{"IMPORT_PAGE_SIZE", c.ImportPageSize, maxPageSize},
		{"AGGREGATION_PAGE_CONCURRENCY", c.AggregationPageConcurrency, maxConcurrency},
		{"REPORT_MONTH_CONCURRENCY", c.ReportMonthConcurrency, maxConcurrency},
	} {
		if setting.value < 1 || setting.value > setting.max {
			errors = append(errors, fmt.Sprintf("invalid %s %d: must be between 1 and %d", setting.name, setting.value, setting.max))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// BaseURL returns the parsed API_URL.
func (c Config) BaseURL() (*url.URL, error) {
	return url.Parse(c.APIURL)
}

// FallbackFactor returns the emission factor for the seeded MISCELLANEOUS category.
func (c Config) FallbackFactor() decimal.Decimal {
	factor, err := decimal.NewFromString(c.FallbackEmissionFactor)
	if err != nil {
		return decimal.Zero
	}
	return factor
}

// AllowOrigins returns the CORS origins.
func (c Config) AllowOrigins() []string {
	return strings.Fields(c.CORSAllowOrigins)
}
