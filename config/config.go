// Package config loads the tlc configuration from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/tradelots"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config is the complete tlc configuration.
type Config struct {
	Trades  TradesConfig  `yaml:"trades"`
	Rates   RatesConfig   `yaml:"rates"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// TradesConfig locates the broker export.
type TradesConfig struct {
	File       string   `yaml:"file"`
	ASXTickers []string `yaml:"asx_tickers"` // extra tickers traded on the ASX
}

// RatesConfig locates the USD→AUD rate table.
type RatesConfig struct {
	File     string  `yaml:"file"`
	Fallback float64 `yaml:"fallback"` // used when no rate is known within a week
}

// DisplayConfig controls the reports.
type DisplayConfig struct {
	Currency string `yaml:"currency"` // USD | AUD
}

// LogConfig controls the format and the level of logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Environment variables overriding the file values.
const (
	EnvTradesFile   = "TRADELOTS_TRADES_FILE"
	EnvASXTickers   = "TRADELOTS_ASX_TICKERS"
	EnvRatesFile    = "TRADELOTS_RATES_FILE"
	EnvFallbackRate = "TRADELOTS_FALLBACK_RATE"
	EnvCurrency     = "TRADELOTS_CURRENCY"
	EnvLogLevel     = "TRADELOTS_LOG_LEVEL"
	EnvLogFormat    = "TRADELOTS_LOG_FORMAT"
)

// Load reads the configuration from the YAML file at path and a .env file
// if there is one. Environment values override the file ones.
//
// A missing file is not an error: the defaults are used instead.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
			}
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvTradesFile); v != "" {
		cfg.Trades.File = v
	}
	if v := os.Getenv(EnvASXTickers); v != "" {
		cfg.Trades.ASXTickers = nil
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				cfg.Trades.ASXTickers = append(cfg.Trades.ASXTickers, t)
			}
		}
	}
	if v := os.Getenv(EnvRatesFile); v != "" {
		cfg.Rates.File = v
	}
	if v := os.Getenv(EnvFallbackRate); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config.Load: %s: %w", EnvFallbackRate, err)
		}
		cfg.Rates.Fallback = f
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Display.Currency = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.Trades.File == "" {
		cfg.Trades.File = "trades.csv"
	}
	if cfg.Rates.File == "" {
		cfg.Rates.File = "rates.csv"
	}
	if cfg.Rates.Fallback <= 0 {
		cfg.Rates.Fallback = tradelots.FallbackRate.InexactFloat64()
	}
	if cfg.Display.Currency == "" {
		cfg.Display.Currency = tradelots.AUD
	}
	cfg.Display.Currency = strings.ToUpper(cfg.Display.Currency)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// FallbackRate returns the configured fallback rate.
func (c *Config) FallbackRate() decimal.Decimal {
	return decimal.NewFromFloat(c.Rates.Fallback)
}

// Normalizer returns the trade normalizer for the configured tickers.
func (c *Config) Normalizer() tradelots.Normalizer {
	tickers := make([]string, 0, len(c.Trades.ASXTickers))
	for _, t := range c.Trades.ASXTickers {
		tickers = append(tickers, strings.ToUpper(t))
	}
	return tradelots.Normalizer{ASXTickers: tickers}
}
