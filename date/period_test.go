package date

import (
	"testing"
	"time"
)

func TestRange_Contains(t *testing.T) {
	r := Range{From: New(2023, time.July, 1), To: New(2024, time.June, 30)}
	testCases := []struct {
		name string
		in   Date
		want bool
	}{
		{"first day", New(2023, time.July, 1), true},
		{"last day", New(2024, time.June, 30), true},
		{"day before", New(2023, time.June, 30), false},
		{"day after", New(2024, time.July, 1), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.in); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIdentifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		p    Period
		want string
	}{
		{"Daily Identifier", New(2025, time.September, 8), Daily, "2025-09-08"},
		{"Weekly Identifier", New(2025, time.September, 8), Weekly, "2025-W37"},
		{"Early Week Identifier", New(2025, time.January, 6), Weekly, "2025-W02"},
		{"ISO year differs", New(2024, time.December, 30), Weekly, "2025-W01"},
		{"Monthly Identifier", New(2025, time.September, 1), Monthly, "2025-09"},
		{"Quarterly Identifier", New(2025, time.July, 1), Quarterly, "2025-Q3"},
		{"Financial year Identifier", New(2025, time.January, 1), FinancialYearly, "FY2024-25"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Identifier(tc.in, tc.p); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{"Daily", "daily", Daily, false},
		{"Weekly", "weekly", Weekly, false},
		{"Monthly", "monthly", Monthly, false},
		{"Quarterly", "quarterly", Quarterly, false},
		{"Financial year", "fy", FinancialYearly, false},
		{"Unknown", "unknown", Daily, true},
		{"Weekly short", "week", Weekly, false},
		{"Monthly short", "month", Monthly, false},
		{"Padded and upper case", " Week ", Weekly, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFinancialYear(t *testing.T) {
	testCases := []struct {
		in   Date
		want int
	}{
		{New(2023, time.June, 30), 2022},
		{New(2023, time.July, 1), 2023},
		{New(2024, time.June, 30), 2023},
		{New(2024, time.January, 15), 2023},
	}
	for _, tc := range testCases {
		if got := FinancialYearOf(tc.in); got != tc.want {
			t.Errorf("FinancialYearOf(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}

	r := FinancialYearRange(2023)
	if want := (Range{From: New(2023, time.July, 1), To: New(2024, time.June, 30)}); r != want {
		t.Errorf("FinancialYearRange(2023) = %v, want %v", r, want)
	}
	if got := FinancialYearLabel(2023); got != "FY2023-24" {
		t.Errorf("FinancialYearLabel(2023) = %q, want %q", got, "FY2023-24")
	}
	if got := FinancialYearLabel(2099); got != "FY2099-00" {
		t.Errorf("FinancialYearLabel(2099) = %q, want %q", got, "FY2099-00")
	}
}
