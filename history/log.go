package history

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/erikbryant/sp500/csv"
	"github.com/erikbryant/sp500/date"
	"github.com/erikbryant/sp500/snapshot"
)

// Header is the column layout of every record log file.
var Header = []string{"date", "tickers"}

// Log is the record of index membership, one entry per observed change, oldest first.
type Log []snapshot.Snapshot

// Last returns the most recent entry. ok is false for an empty log.
func (l Log) Last() (snapshot.Snapshot, bool) {
	if len(l) == 0 {
		return snapshot.Snapshot{}, false
	}
	return l[len(l)-1], true
}

// Sorted returns a copy of l in date order. Entries on the same date keep their relative order.
func (l Log) Sorted() Log {
	sorted := make(Log, len(l))
	copy(sorted, l)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	return sorted
}

// key identifies an entry for duplicate removal.
type key struct {
	date    string
	tickers string
}

func keyOf(s snapshot.Snapshot) key {
	return key{date.Format(s.Date), s.Tickers}
}

// dedupKeepLast drops entries whose (date, tickers) pair occurs again later in the log.
func dedupKeepLast(l Log) Log {
	seen := make(map[key]bool)
	var kept Log

	for i := len(l) - 1; i >= 0; i-- {
		k := keyOf(l[i])
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, l[i])
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}

	return kept
}

// dedupKeepFirst drops entries whose (date, tickers) pair already occurred earlier in the log.
func dedupKeepFirst(l Log) (Log, int) {
	seen := make(map[key]bool)
	var kept Log

	for _, s := range l {
		k := keyOf(s)
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, s)
	}

	return kept, len(l) - len(kept)
}

// Load reads a record log. The error wraps fs.ErrNotExist if the file is missing.
func Load(file string) (Log, error) {
	header, rows, err := csv.ReadTable(file)
	if err != nil {
		return nil, err
	}

	if len(header) == 0 {
		return Log{}, nil
	}

	dateCol, tickersCol := -1, -1
	for i, name := range header {
		switch name {
		case "date":
			dateCol = i
		case "tickers":
			tickersCol = i
		}
	}
	if dateCol < 0 || tickersCol < 0 {
		return nil, fmt.Errorf("%s: expected columns %v, got %v", file, Header, header)
	}

	log := make(Log, 0, len(rows))

	for i, row := range rows {
		d, err := date.Parse(row[dateCol])
		if err != nil {
			// Line 1 is the header.
			return nil, fmt.Errorf("%s line %d: %w", file, i+2, err)
		}
		log = append(log, snapshot.Snapshot{Date: d, Tickers: row[tickersCol]})
	}

	return log, nil
}

// LoadOrEmpty is Load, except a missing file is an empty log.
func LoadOrEmpty(file string) (Log, error) {
	log, err := Load(file)
	if errors.Is(err, fs.ErrNotExist) {
		return Log{}, nil
	}
	return log, err
}

// Save writes l to file, replacing what was there. Dates are written YYYY-MM-DD.
func Save(file string, l Log) error {
	rows := make([][]string, 0, len(l))

	for _, s := range l {
		rows = append(rows, []string{date.Format(s.Date), s.Tickers})
	}

	return csv.WriteTable(file, Header, rows)
}
