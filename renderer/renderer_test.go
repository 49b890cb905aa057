package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/etnz/tradelots"
	"github.com/etnz/tradelots/date"
	"github.com/shopspring/decimal"
)

const tradesCSV = `Symbol,Name,Side,Status,Filled@Avg Price,Fill Time,Commission,Total,Markets
AAPL,Apple,Buy,Filled,10@100,2024-01-02 15:00:00,0,0,US
AAPL,Apple,Sell,Filled,4@110,2024-02-01 15:00:00,0,0,US
WBC,Westpac|Bank,Sell,Filled,5@20,2024-03-01 00:00:00,0,0,AU
SOFI251121C26000,SOFI Call,Buy,Filled,1@1,2025-11-03 14:30:00,0,0,US
`

func newSystem(t *testing.T) *tradelots.AccountingSystem {
	t.Helper()
	trades, _, err := tradelots.LoadTrades(strings.NewReader(tradesCSV), tradelots.Normalizer{})
	if err != nil {
		t.Fatalf("LoadTrades() error = %v", err)
	}
	rates := tradelots.NewRates()
	for _, d := range []string{"2024-01-02", "2024-02-01", "2025-11-03", "2025-11-21", "2026-01-05"} {
		rates.Set(date.MustParse(d), decimal.RequireFromString("1.5"))
	}
	now := time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)
	return tradelots.NewAccountingSystem(trades, rates, tradelots.WithClock(func() time.Time { return now }))
}

func assertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output does not contain %q:\n%s", w, got)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(newSystem(t).PortfolioSummary(tradelots.USD))

	assertContains(t, md,
		"# Portfolio Summary on 2026-01-05",
		"| AAPL | Apple | 10 | 4 | 6 | $100.00 | +$40.00 | $1,440.00 |",
		"SOFI 2025-11-21 26C (expired)",
		`Westpac\|Bank`,
		"- **Realized P&L**: -$60.00",
	)
}

func TestPositionsMarkdown(t *testing.T) {
	md := PositionsMarkdown(newSystem(t).PortfolioSummary(tradelots.AUD))

	assertContains(t, md, "| AAPL | US | 6 |", "| WBC | AU | -5 (short) |")
	if strings.Contains(md, "SOFI") {
		t.Errorf("expired option listed as a position:\n%s", md)
	}
}

func TestGainsMarkdown(t *testing.T) {
	fy := 2023
	md := GainsMarkdown(newSystem(t).CapitalGains(&fy))

	assertContains(t, md,
		"# Capital Gains FY2023-24",
		"| 2024-02-01 | 2024-01-02 | AAPL | 4 |",
	)
	if strings.Contains(md, "SOFI") {
		t.Errorf("FY2025 disposal listed in FY2023:\n%s", md)
	}

	fy = 2019
	assertContains(t, GainsMarkdown(newSystem(t).CapitalGains(&fy)), "No disposal in this period.")
}

func TestYearsMarkdown(t *testing.T) {
	md := YearsMarkdown(newSystem(t).FinancialYears())

	assertContains(t, md, "- **FY2025-26**: 2025-07-01 to 2026-06-30 (`-fy 2025`)", "FY2023-24")
	assertContains(t, YearsMarkdown(nil), "No disposal yet.")
}

func TestPerformanceMarkdown(t *testing.T) {
	md := PerformanceMarkdown(newSystem(t).PerformanceSeries(tradelots.AllTime, tradelots.AUD))

	assertContains(t, md, "# Performance (all)", "monthly buckets", "| 2024-02 | 1 | 1 |", "| 2025-11 | 1 | 0 |")
}

func TestLotsTable(t *testing.T) {
	l, _, ok := newSystem(t).SymbolLedger("AAPL", tradelots.USD)
	if !ok {
		t.Fatal("SymbolLedger(AAPL) not found")
	}
	var b bytes.Buffer
	LotsTable(&b, l)

	assertContains(t, b.String(), "AAPL: 6 open in 1 lots", "2024-01-02 15:00:00", "+$40.00")
}
