package history

import (
	"github.com/erikbryant/sp500/config"
	"github.com/erikbryant/sp500/snapshot"
)

// Append adds candidate to the end of l unless it holds the same tickers as the
// last entry. l is not modified; the returned Log is the new log.
func Append(l Log, candidate snapshot.Snapshot, caseSensitive bool) (Log, AppendResult) {
	last, ok := l.Last()
	if !ok {
		return Log{candidate}, AppendResult{
			Outcome: FirstRun,
			Date:    candidate.Date,
			Records: 1,
		}
	}

	if snapshot.Equal(candidate, last, caseSensitive) {
		return l, AppendResult{
			Outcome: Unchanged,
			Since:   last.Date,
			Records: len(l),
		}
	}

	updated := make(Log, len(l), len(l)+1)
	copy(updated, l)
	updated = dedupKeepLast(append(updated, candidate))

	return updated, AppendResult{
		Outcome: Changed,
		Date:    candidate.Date,
		Records: len(updated),
	}
}

// AppendFile runs Append against the log on disk and saves the log if it changed.
// A missing log file is treated as an empty log.
func AppendFile(cfg config.Config, candidate snapshot.Snapshot) (AppendResult, error) {
	l, err := LoadOrEmpty(cfg.HistoryPath())
	if err != nil {
		return AppendResult{}, err
	}

	updated, result := Append(l, candidate, cfg.CaseSensitive)
	if result.Outcome == Unchanged {
		return result, nil
	}

	err = Save(cfg.HistoryPath(), updated)
	if err != nil {
		return AppendResult{}, err
	}

	return result, nil
}
