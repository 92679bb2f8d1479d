package history

import (
	"sort"
	"strings"

	"github.com/erikbryant/sp500/config"
	"github.com/erikbryant/sp500/mapping"
	"github.com/erikbryant/sp500/snapshot"
)

// normalizeTickers rewrites one tickers string through m. Symbols are visited in
// their original order; when two of them land on the same target the first one
// is kept and the later ones are counted as collapsed.
func normalizeTickers(tickers string, m mapping.Config, result *NormalizeResult) []string {
	seen := make(map[string]bool)
	var symbols []string

	for _, symbol := range snapshot.Split(tickers) {
		symbol = strings.ToUpper(symbol)

		to, deleted := m.Lookup(symbol)
		if deleted {
			result.Deleted++
			continue
		}
		if to != symbol {
			result.Renamed++
		}

		if seen[to] {
			result.Collapsed++
			continue
		}
		seen[to] = true
		symbols = append(symbols, to)
	}

	sort.Strings(symbols)

	return symbols
}

// Normalize rewrites every entry of l through m: symbols are upper-cased, deleted
// symbols dropped, renamed symbols replaced, and the result deduplicated and
// sorted. Entries left empty are dropped, then entries repeating an earlier
// (date, tickers) pair are removed. l is not modified.
func Normalize(l Log, m mapping.Config) (Log, NormalizeResult) {
	var result NormalizeResult

	normalized := Log{}
	for _, s := range l {
		symbols := normalizeTickers(s.Tickers, m, &result)
		if len(symbols) == 0 {
			result.EmptyDropped++
			continue
		}
		normalized = append(normalized, snapshot.Build(symbols, s.Date))
	}

	normalized, result.DuplicatesRemoved = dedupKeepFirst(normalized)
	result.Records = len(normalized)
	result.Outcome = Written

	return normalized, result
}

// NormalizeFile applies the ticker mapping configuration to the record log and
// writes the result to the normalized history file. The record log itself is
// never written. Problems with the mapping file are reported in Issues; a
// missing record log is an error.
func NormalizeFile(cfg config.Config) (NormalizeResult, error) {
	l, err := Load(cfg.HistoryPath())
	if err != nil {
		return NormalizeResult{}, err
	}

	m, warnings := mapping.Load(cfg.MappingPath())
	if m.Empty() {
		return NormalizeResult{Outcome: NoOp, Issues: warnings}, nil
	}

	normalized, result := Normalize(l, m)
	result.Issues = warnings

	err = Save(cfg.NormalizedPath(), normalized)
	if err != nil {
		return NormalizeResult{}, err
	}
	result.OutputFile = cfg.NormalizedPath()

	return result, nil
}
