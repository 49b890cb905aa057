package tradelots

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
)

// ReadRecords reads a broker CSV export into records keyed by header.
func ReadRecords(r io.Reader) ([]Record, error) {
	rows, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, fmt.Errorf("could not read csv records: %w", err)
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(row))
		for k, v := range row {
			rec[strings.TrimSpace(strings.TrimPrefix(k, "\ufeff"))] = v
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadTrades reads a broker CSV export and returns its executed trades.
func LoadTrades(r io.Reader, n Normalizer) ([]TradeEvent, []Warning, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return nil, nil, err
	}
	trades, warnings := n.NormalizeAll(records)
	return trades, warnings, nil
}
