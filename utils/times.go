// utils/times.go
package utils

import (
	"regexp"
	"time"
)

var digitRun = regexp.MustCompile(`\d+`)

// DurationMinutes extracts the first run of digits from a duration label
// like "60 min" and reads it as minutes. A label with no digits is 0.
func DurationMinutes(duration string) int {
	m := digitRun.FindString(duration)
	if m == "" {
		return 0
	}
	minutes := 0
	for _, r := range m {
		minutes = minutes*10 + int(r-'0')
	}
	return minutes
}

// AddMinutes adds minutes to an HH:MM clock time and re-renders it as
// zero-padded HH:MM. The arithmetic runs on a reference date and the date
// part is discarded, so a span crossing midnight wraps silently: the result
// can be "earlier" than the start. Returns "" for an unparseable start.
func AddMinutes(start string, minutes int) string {
	if start == "" {
		return ""
	}
	t, err := time.Parse("15:04", start)
	if err != nil {
		return ""
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format("15:04")
}

// CurrentTimeHHMM formats t as a zero-padded 24-hour clock time.
func CurrentTimeHHMM(t time.Time) string {
	return t.Format("15:04")
}

// TodayISO formats t's local calendar day as YYYY-MM-DD.
func TodayISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateReadable turns an ISO day into the "2 Jan 2006" form used on
// invoices. Anything unparseable is passed through untouched.
func FormatDateReadable(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("2 Jan 2006")
}
