package config

import (
	"path/filepath"
)

// Default file names, relative to Config.Dir.
const (
	HistoryFile      = "sp_500_historical_components.csv"
	BackupFile       = "sp_500_historical_components_backup.csv"
	ConstituentsFile = "sp500_constituents.csv"
	NormalizedFile   = "sp_500_historical_components_renamed.csv"
	MappingFile      = "ticker_mappings.json"

	// ConstituentsURL is the page listing the current members of the index.
	ConstituentsURL = "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"
)

// Config says where every file lives and how symbols are compared.
// Relative file names are resolved against Dir.
type Config struct {
	Dir              string
	HistoryFile      string
	BackupFile       string
	ConstituentsFile string
	NormalizedFile   string
	MappingFile      string

	// CacheDir holds per-day copies of the fetched constituents table. Empty disables caching.
	CacheDir string

	URL string

	// CaseSensitive makes the change detector compare ticker strings exactly.
	// When false, "brk.b" and "BRK.B" are the same symbol.
	CaseSensitive bool
}

// Default returns the stock configuration rooted at dir.
func Default(dir string) Config {
	return Config{
		Dir:              dir,
		HistoryFile:      HistoryFile,
		BackupFile:       BackupFile,
		ConstituentsFile: ConstituentsFile,
		NormalizedFile:   NormalizedFile,
		MappingFile:      MappingFile,
		URL:              ConstituentsURL,
		CaseSensitive:    true,
	}
}

func (c Config) path(file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.Dir, file)
}

// HistoryPath is the record log.
func (c Config) HistoryPath() string {
	return c.path(c.HistoryFile)
}

// BackupPath is where the compactor saves the log before rewriting it.
func (c Config) BackupPath() string {
	return c.path(c.BackupFile)
}

// ConstituentsPath is the current-constituents table.
func (c Config) ConstituentsPath() string {
	return c.path(c.ConstituentsFile)
}

// NormalizedPath is the renamed history written by the normalizer.
func (c Config) NormalizedPath() string {
	return c.path(c.NormalizedFile)
}

// MappingPath is the ticker mapping configuration.
func (c Config) MappingPath() string {
	return c.path(c.MappingFile)
}

// CachePath is the response cache directory, or "" if caching is off.
func (c Config) CachePath() string {
	return c.path(c.CacheDir)
}
