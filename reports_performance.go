package tradelots

import (
	"github.com/etnz/tradelots/date"
)

// PerformanceBucket aggregates the capital gains realized in one week or month.
type PerformanceBucket struct {
	Key        string // e.g. "2025-W37" or "2025-09"
	Start      date.Date
	Trades     int
	Wins       int
	Gain       Money
	Cumulative Money
}

// PerformanceSeries is the bucketed realized P&L over a timeframe.
type PerformanceSeries struct {
	Timeframe Timeframe
	Currency  string
	Period    date.Period
	Start     date.Date           // zero for AllTime
	Buckets   []PerformanceBucket // ascending by start
	TotalPnL  Money
	Trades    int
	Wins      int
	WinRate   Percent // share of records with a positive gain
	Best      *PerformanceBucket
	Worst     *PerformanceBucket
	Warnings  []Warning
}

// Performance buckets capital gain records sold on or after the timeframe
// start. Gains, computed in AUD, are converted to the display currency at the
// rate of their sell day.
func Performance(records []CapitalGainRecord, conv Converter, tf Timeframe, display string, today date.Date) *PerformanceSeries {
	var diag diagnostics
	cur := CurrencyOf(display)
	if cur == "" {
		diag.warnf("", "currency", "unsupported display currency %q, amounts are not converted", display)
		cur = display
	}
	start, bounded := tf.Start(today)
	period := tf.Bucketing()
	series := &PerformanceSeries{
		Timeframe: tf,
		Currency:  cur,
		Period:    period,
		Start:     start,
		Buckets:   []PerformanceBucket{},
		TotalPnL:  M(0, cur),
	}

	index := make(map[date.Date]int)
	var history date.History[int] // bucket start -> index, kept chronological
	var buckets []PerformanceBucket
	for _, rec := range records {
		sold := date.Of(rec.SellDate.UTC())
		if bounded && sold.Before(start) {
			continue
		}
		gain := diag.convert(conv, rec.CapitalGain, cur, rec.Symbol, sold)

		from := sold.StartOf(period)
		i, ok := index[from]
		if !ok {
			i = len(buckets)
			index[from] = i
			history.Append(from, i)
			buckets = append(buckets, PerformanceBucket{Key: date.Identifier(from, period), Start: from, Gain: M(0, cur)})
		}
		b := &buckets[i]
		b.Trades++
		b.Gain = b.Gain.Add(gain)
		series.Trades++
		if gain.IsPositive() {
			b.Wins++
			series.Wins++
		}
	}

	cumulative := M(0, cur)
	for _, i := range history.Values() {
		b := buckets[i]
		cumulative = cumulative.Add(b.Gain)
		b.Cumulative = cumulative
		series.Buckets = append(series.Buckets, b)
	}
	series.TotalPnL = cumulative
	if series.Trades > 0 {
		series.WinRate = Percent(100 * float64(series.Wins) / float64(series.Trades))
	}
	for i := range series.Buckets {
		b := &series.Buckets[i]
		if series.Best == nil || b.Gain.GreaterThan(series.Best.Gain) {
			series.Best = b
		}
		if series.Worst == nil || b.Gain.LessThan(series.Worst.Gain) {
			series.Worst = b
		}
	}
	series.Warnings = diag.warnings
	return series
}
