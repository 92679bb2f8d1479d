package history

import (
	"github.com/erikbryant/sp500/config"
)

// Compact drops every entry whose tickers match the entry retained just before it,
// keeping the first snapshot of each run. A composition that comes back after a
// different one is kept again. The input is sorted by date first.
func Compact(l Log) (Log, CompactResult) {
	sorted := l.Sorted()

	compacted := Log{}
	for i, s := range sorted {
		if i > 0 && s.Tickers == compacted[len(compacted)-1].Tickers {
			continue
		}
		compacted = append(compacted, s)
	}

	outcome := Written
	if len(sorted) == 0 {
		outcome = NoOp
	}

	return compacted, CompactResult{
		Outcome:  outcome,
		Original: len(sorted),
		Retained: len(compacted),
		Removed:  len(sorted) - len(compacted),
	}
}

// CompactFile compacts the record log in place, saving the date-sorted original
// to the backup file first. An empty log is left alone.
func CompactFile(cfg config.Config) (CompactResult, error) {
	l, err := Load(cfg.HistoryPath())
	if err != nil {
		return CompactResult{}, err
	}

	if len(l) == 0 {
		return CompactResult{Outcome: NoOp}, nil
	}

	compacted, result := Compact(l)

	err = Save(cfg.BackupPath(), l.Sorted())
	if err != nil {
		return CompactResult{}, err
	}
	result.BackupFile = cfg.BackupPath()

	err = Save(cfg.HistoryPath(), compacted)
	if err != nil {
		return CompactResult{}, err
	}

	return result, nil
}
