package date

import (
	"fmt"
	"time"
)

// FinancialYearOf returns the Australian financial year containing d.
// Financial year Y runs from Y-07-01 to (Y+1)-06-30.
func FinancialYearOf(d Date) int {
	if d.Month() >= time.July {
		return d.Year()
	}
	return d.Year() - 1
}

// FinancialYearRange returns the inclusive day range of financial year y.
func FinancialYearRange(y int) Range {
	return Range{From: New(y, time.July, 1), To: New(y+1, time.June, 30)}
}

// FinancialYearLabel formats financial year y the way the ATO does, e.g. "FY2023-24".
func FinancialYearLabel(y int) string {
	return fmt.Sprintf("FY%d-%02d", y, (y+1)%100)
}
