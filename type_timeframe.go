package tradelots

import (
	"fmt"
	"strings"

	"github.com/etnz/tradelots/date"
)

// Timeframe selects how far back a performance series goes.
type Timeframe int

const (
	ThreeMonths Timeframe = iota + 1
	SixMonths
	OneYear
	AllTime
)

func (tf Timeframe) String() string {
	switch tf {
	case ThreeMonths:
		return "3m"
	case SixMonths:
		return "6m"
	case OneYear:
		return "1y"
	case AllTime:
		return "all"
	default:
		return "unknown"
	}
}

// ParseTimeframe parses a string into a Timeframe.
func ParseTimeframe(s string) (Timeframe, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "3m", "3months":
		return ThreeMonths, nil
	case "6m", "6months":
		return SixMonths, nil
	case "1y", "12m", "1year":
		return OneYear, nil
	case "all", "all-time", "alltime":
		return AllTime, nil
	default:
		return 0, fmt.Errorf("unknown timeframe: %q", s)
	}
}

// Start returns the first day covered by the timeframe, and false for AllTime.
func (tf Timeframe) Start(today date.Date) (date.Date, bool) {
	switch tf {
	case ThreeMonths:
		return today.AddMonth(-3), true
	case SixMonths:
		return today.AddMonth(-6), true
	case OneYear:
		return today.AddMonth(-12), true
	default:
		return date.Date{}, false
	}
}

// Bucketing returns the period of the buckets: weeks for the bounded recent
// windows and months for AllTime.
func (tf Timeframe) Bucketing() date.Period {
	switch tf {
	case ThreeMonths, SixMonths, OneYear:
		return date.Weekly
	default:
		return date.Monthly
	}
}
