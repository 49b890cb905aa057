package date

import (
	"fmt"
	"strings"
)

// Period is a calendar unit used to bucket days.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	// FinancialYearly is the Australian financial year, 1 July to 30 June.
	FinancialYearly
)

var periodNames = map[Period]string{
	Daily:           "daily",
	Weekly:          "weekly",
	Monthly:         "monthly",
	Quarterly:       "quarterly",
	FinancialYearly: "financial-yearly",
}

func (p Period) String() string {
	if name, ok := periodNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Period(%d)", int(p))
}

// ParsePeriod accepts the period names and their short forms ("week", "fy", ...).
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day", "d":
		return Daily, nil
	case "weekly", "week", "w":
		return Weekly, nil
	case "monthly", "month", "m":
		return Monthly, nil
	case "quarterly", "quarter", "q":
		return Quarterly, nil
	case "financial-yearly", "financial-year", "fy":
		return FinancialYearly, nil
	}
	return Daily, fmt.Errorf("unknown period %q", s)
}
