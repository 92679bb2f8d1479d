package snapshot

import (
	"strings"
	"time"

	"github.com/erikbryant/sp500/date"
	"github.com/erikbryant/sp500/utils"
)

// Delimiter separates the symbols in Snapshot.Tickers.
const Delimiter = ","

// Snapshot is the membership of the index as observed on one day.
type Snapshot struct {
	Date    time.Time
	Tickers string // sorted, deduplicated, comma joined
}

// Build joins tickers into a Snapshot stamped with d (today if d is zero).
// The caller is responsible for the order of tickers.
func Build(tickers []string, d time.Time) Snapshot {
	if d.IsZero() {
		d = date.Today()
	}

	return Snapshot{
		Date:    date.Day(d),
		Tickers: strings.Join(tickers, Delimiter),
	}
}

// Split breaks the tickers back into individual symbols, trimmed, with blanks dropped.
func (s Snapshot) Split() []string {
	return Split(s.Tickers)
}

// Split breaks a tickers string into individual symbols, trimmed, with blanks dropped.
func Split(tickers string) []string {
	symbols := []string{}

	for _, symbol := range strings.Split(tickers, Delimiter) {
		symbol = strings.TrimSpace(symbol)
		if symbol == "" {
			continue
		}
		symbols = append(symbols, symbol)
	}

	return symbols
}

// Canonical trims, optionally upper-cases, deduplicates and sorts raw symbols so
// they can be passed to Build and compared against earlier snapshots.
func Canonical(tickers []string, upper bool) []string {
	return utils.Unique(utils.Trim(tickers, upper))
}

// Equal reports whether two snapshots hold the same tickers. Case sensitive
// comparison is exact string equality. Otherwise both sides are upper-cased
// and re-sorted first, since case drift changes the sort order.
func Equal(a, b Snapshot, caseSensitive bool) bool {
	if caseSensitive {
		return a.Tickers == b.Tickers
	}

	folded := func(s Snapshot) string {
		return strings.Join(Canonical(s.Split(), true), Delimiter)
	}

	return folded(a) == folded(b)
}

// String formats the snapshot for messages.
func (s Snapshot) String() string {
	return date.Format(s.Date) + " " + s.Tickers
}
