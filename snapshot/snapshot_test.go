package snapshot

import (
	"testing"
	"time"

	"github.com/erikbryant/sp500/date"
)

// equal returns true if the two lists are identical, false otherwise.
func equal(list1, list2 []string) bool {
	if len(list1) != len(list2) {
		return false
	}

	for i := range list1 {
		if list1[i] != list2[i] {
			return false
		}
	}

	return true
}

func TestBuild(t *testing.T) {
	day := time.Date(2024, time.Month(1), 2, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		tickers  []string
		d        time.Time
		expected Snapshot
	}{
		{[]string{"A", "AAPL", "MSFT"}, day, Snapshot{day, "A,AAPL,MSFT"}},
		{[]string{"MSFT"}, day, Snapshot{day, "MSFT"}},
		{[]string{}, day, Snapshot{day, ""}},
		// Build never reorders.
		{[]string{"MSFT", "AAPL"}, day, Snapshot{day, "MSFT,AAPL"}},
		// Time of day is dropped.
		{[]string{"A"}, day.Add(13 * time.Hour), Snapshot{day, "A"}},
	}

	for _, testCase := range testCases {
		answer := Build(testCase.tickers, testCase.d)
		if answer != testCase.expected {
			t.Errorf("For %v expected %v, got %v", testCase.tickers, testCase.expected, answer)
		}
	}
}

func TestBuildDefaultsToToday(t *testing.T) {
	defer func() { date.Now = time.Now }()
	date.Now = func() time.Time { return time.Date(2025, time.Month(6), 30, 22, 0, 0, 0, time.UTC) }

	answer := Build([]string{"A"}, time.Time{})
	expected := time.Date(2025, time.Month(6), 30, 0, 0, 0, 0, time.UTC)
	if !answer.Date.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, answer.Date)
	}
}

func TestRoundTrip(t *testing.T) {
	testCases := [][]string{
		{"A"},
		{"A", "AAPL", "BRK.B", "MSFT"},
		{"AAPL", "GOOG", "GOOGL"},
		{},
	}

	for _, tickers := range testCases {
		answer := Build(tickers, time.Now()).Split()
		if !equal(answer, tickers) {
			t.Errorf("For %v expected %v, got %v", tickers, tickers, answer)
		}
	}
}

func TestSplit(t *testing.T) {
	testCases := []struct {
		tickers  string
		expected []string
	}{
		{"", []string{}},
		{"A", []string{"A"}},
		{"A, B ,C", []string{"A", "B", "C"}},
		{"A,,B,", []string{"A", "B"}},
	}

	for _, testCase := range testCases {
		answer := Split(testCase.tickers)
		if !equal(answer, testCase.expected) {
			t.Errorf("For %q expected %v, got %v", testCase.tickers, testCase.expected, answer)
		}
	}
}

func TestCanonical(t *testing.T) {
	testCases := []struct {
		tickers  []string
		upper    bool
		expected []string
	}{
		{[]string{"MSFT", " AAPL", "MSFT", ""}, false, []string{"AAPL", "MSFT"}},
		{[]string{"brk.b", "BRK.B", "aapl"}, true, []string{"AAPL", "BRK.B"}},
		{[]string{"brk.b", "BRK.B"}, false, []string{"BRK.B", "brk.b"}},
		{nil, true, []string{}},
	}

	for _, testCase := range testCases {
		answer := Canonical(testCase.tickers, testCase.upper)
		if !equal(answer, testCase.expected) {
			t.Errorf("For %v expected %v, got %v", testCase.tickers, testCase.expected, answer)
		}
	}
}

func TestEqual(t *testing.T) {
	day := time.Date(2024, time.Month(1), 2, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		a             string
		b             string
		caseSensitive bool
		expected      bool
	}{
		{"A,B", "A,B", true, true},
		{"A,B", "A,B", false, true},
		{"A,b", "A,B", true, false},
		{"A,b", "A,B", false, true},
		{"A,B", "B,A", true, false},
		// Case folded comparison looks at the set, not the order.
		{"A,B", "B,A", false, true},
		{"A,B", "A;B", false, false},
		{"A,B", "A,B,C", false, false},
		// Lower case sorts after upper case, so drift reorders the string.
		{"AAPL,BRK.B,MSFT", "AAPL,MSFT,brk.b", true, false},
		{"AAPL,BRK.B,MSFT", "AAPL,MSFT,brk.b", false, true},
	}

	for _, testCase := range testCases {
		answer := Equal(Snapshot{day, testCase.a}, Snapshot{day.AddDate(0, 0, 1), testCase.b}, testCase.caseSensitive)
		if answer != testCase.expected {
			t.Errorf("For %q, %q, %t expected %t, got %t", testCase.a, testCase.b, testCase.caseSensitive, testCase.expected, answer)
		}
	}
}
