package date

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the format every date in the history files is written in.
const Layout = "2006-01-02"

// Now returns the current time. Tests replace it to pin "today".
var Now = time.Now

// layouts are tried in order when reading a date back from a file.
var layouts = []string{
	Layout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"1/2/2006",
	"20060102",
}

// Day truncates t to midnight UTC of its own calendar day.
func Day(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day.
func Today() time.Time {
	return Day(Now())
}

// Format writes t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads a calendar date in any of the formats the history has been written in.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return Day(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
