package rates

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/tradelots"
	"github.com/etnz/tradelots/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(t *testing.T, r *tradelots.Rates, on string) (decimal.Decimal, tradelots.RateSource) {
	t.Helper()
	return r.Lookup(date.MustParse(on))
}

func TestReadCSV(t *testing.T) {
	r, err := ReadCSV(strings.NewReader("date,rate\n2024-01-01,1.52\n2024-1-10, 1.48\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	got, src := rate(t, r, "2024-01-10")
	assert.Equal(t, tradelots.RateExact, src)
	assert.True(t, got.Equal(decimal.RequireFromString("1.48")), "got %v", got)

	got, src = rate(t, r, "2024-01-04")
	assert.Equal(t, tradelots.RateNearest, src)
	assert.True(t, got.Equal(decimal.RequireFromString("1.52")), "got %v", got)
}

func TestReadCSV_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"bad date", "date,rate\nyesterday,1.5\n"},
		{"bad rate", "date,rate\n2024-01-01,high\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestReadJSON(t *testing.T) {
	r, err := ReadJSON(strings.NewReader(`{"2024-01-01": 1.52, "2024-01-10": "1.48"}`))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	got, _ := rate(t, r, "2024-01-09")
	assert.True(t, got.Equal(decimal.RequireFromString("1.48")), "got %v", got)

	_, err = ReadJSON(strings.NewReader(`{"soon": 1.5}`))
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "rates.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("date,rate\n2024-01-01,1.5\n"), 0o644))
	jsonPath := filepath.Join(dir, "rates.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"2024-01-01": 1.6}`), 0o644))

	r, err := Open(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	r, err = Open(jsonPath)
	require.NoError(t, err)
	got, _ := rate(t, r, "2024-01-01")
	assert.True(t, got.Equal(decimal.RequireFromString("1.6")), "got %v", got)

	_, err = Open(filepath.Join(dir, "missing.csv"))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	_, err = Open(filepath.Join(dir, "rates.txt"))
	assert.Error(t, err)
}
