package domain

import "time"

// DayPeriod returns the daily reset period identifier ("2006-01-02") for t in UTC.
func DayPeriod(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// MonthPeriod returns the monthly reset period identifier ("2006-01") for t in UTC.
func MonthPeriod(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// ResetDue reports whether a counter stamped with marker still needs a reset
// for period. Identifiers are zero-padded ISO strings, so a marker ordered
// after period (clock skew) counts as already reset.
func ResetDue(marker, period string) bool {
	return marker < period
}
