package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "trades.csv", cfg.Trades.File)
	assert.Equal(t, "rates.csv", cfg.Rates.File)
	assert.Equal(t, "AUD", cfg.Display.Currency)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.FallbackRate().Equal(decimal.RequireFromString("1.5")))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradelots.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
trades:
  file: export.csv
  asx_tickers: [dro, pls]
rates:
  file: audusd.json
  fallback: 1.55
display:
  currency: usd
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "export.csv", cfg.Trades.File)
	assert.Equal(t, "audusd.json", cfg.Rates.File)
	assert.Equal(t, "USD", cfg.Display.Currency)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.FallbackRate().Equal(decimal.RequireFromString("1.55")))
	assert.Equal(t, []string{"DRO", "PLS"}, cfg.Normalizer().ASXTickers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradelots.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  currency: USD\n"), 0o644))
	t.Setenv(EnvCurrency, "aud")
	t.Setenv(EnvTradesFile, "env.csv")
	t.Setenv(EnvASXTickers, "DRO, ,PLS")
	t.Setenv(EnvFallbackRate, "1.6")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "AUD", cfg.Display.Currency)
	assert.Equal(t, "env.csv", cfg.Trades.File)
	assert.Equal(t, []string{"DRO", "PLS"}, cfg.Trades.ASXTickers)
	assert.True(t, cfg.FallbackRate().Equal(decimal.RequireFromString("1.6")))
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradelots.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display: [\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	t.Setenv(EnvFallbackRate, "cheap")
	_, err = Load("")
	assert.Error(t, err)
}
