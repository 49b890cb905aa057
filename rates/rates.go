// Package rates loads USD→AUD rate tables from local files.
//
// A table is a list of daily rates, AUD per 1 USD. Two formats are read:
//
//	date,rate
//	2024-01-02,1.4712
//
// and a JSON object keyed by day:
//
//	{"2024-01-02": 1.4712}
package rates

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/tradelots"
	"github.com/etnz/tradelots/date"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// row is one line of a rates csv file.
type row struct {
	Date string `csv:"date"`
	Rate string `csv:"rate"`
}

// ReadCSV reads a "date,rate" csv table.
func ReadCSV(r io.Reader) (*tradelots.Rates, error) {
	var rows []*row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("could not decode rates csv: %w", err)
	}
	rates := tradelots.NewRates()
	for i, row := range rows {
		on, err := date.Parse(strings.TrimSpace(row.Date))
		if err != nil {
			return nil, fmt.Errorf("rates csv line %d: invalid date %q: %w", i+2, row.Date, err)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(row.Rate))
		if err != nil {
			return nil, fmt.Errorf("rates csv line %d: invalid rate %q: %w", i+2, row.Rate, err)
		}
		rates.Set(on, rate)
	}
	return rates, nil
}

// ReadJSON reads a JSON object mapping days to rates.
func ReadJSON(r io.Reader) (*tradelots.Rates, error) {
	var raw map[string]decimal.Decimal
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("could not decode rates json: %w", err)
	}
	rates := tradelots.NewRates()
	for k, rate := range raw {
		on, err := date.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("rates json: invalid date %q: %w", k, err)
		}
		rates.Set(on, rate)
	}
	return rates, nil
}

// Open reads a rates file, choosing the format from its extension.
// The returned error wraps fs.ErrNotExist when the file is missing.
func Open(path string) (*tradelots.Rates, error) {
	var read func(io.Reader) (*tradelots.Rates, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		read = ReadCSV
	case ".json":
		read = ReadJSON
	default:
		return nil, fmt.Errorf("unsupported rates file extension %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open rates file %q: %w", path, err)
	}
	defer f.Close()

	rates, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("could not read rates file %q: %w", path, err)
	}
	return rates, nil
}
