package mapping

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Config holds the rename and deletion rules applied to historical symbols.
// Keys and values are upper-cased on load.
type Config struct {
	Mappings map[string]string // old symbol -> new symbol
	Deleted  map[string]bool
}

// file is the on-disk layout of the mapping configuration.
type file struct {
	Mappings       json.RawMessage `json:"mappings"`
	DeletedSymbols json.RawMessage `json:"deleted_symbols"`
}

// New returns a Config built from the given rules.
func New(mappings map[string]string, deleted []string) Config {
	c := Config{
		Mappings: make(map[string]string),
		Deleted:  make(map[string]bool),
	}

	for from, to := range mappings {
		c.Mappings[upper(from)] = upper(to)
	}

	for _, symbol := range deleted {
		c.Deleted[upper(symbol)] = true
	}

	return c
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Empty reports whether the config has no rules at all.
func (c Config) Empty() bool {
	return len(c.Mappings) == 0 && len(c.Deleted) == 0
}

// Lookup returns what symbol becomes, and whether it was deleted.
func (c Config) Lookup(symbol string) (string, bool) {
	symbol = upper(symbol)

	if c.Deleted[symbol] {
		return "", true
	}

	to, ok := c.Mappings[symbol]
	if ok {
		return to, false
	}

	return symbol, false
}

// DeletedSymbols returns the deletion set, sorted.
func (c Config) DeletedSymbols() []string {
	var symbols []string

	for symbol := range c.Deleted {
		symbols = append(symbols, symbol)
	}

	sort.Strings(symbols)

	return symbols
}

// Parse decodes a mapping configuration. Problems do not stop the parse;
// each one is returned as a warning and the affected rules are left empty.
func Parse(contents []byte) (Config, []string) {
	var warnings []string
	var f file
	var mappings map[string]string
	var deleted []string

	err := json.Unmarshal(contents, &f)
	if err != nil {
		return New(nil, nil), []string{fmt.Sprintf("unable to parse ticker mappings: %s", err)}
	}

	if len(f.Mappings) != 0 {
		err = json.Unmarshal(f.Mappings, &mappings)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("ignoring \"mappings\": %s", err))
			mappings = nil
		}
	}

	if len(f.DeletedSymbols) != 0 {
		err = json.Unmarshal(f.DeletedSymbols, &deleted)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("ignoring \"deleted_symbols\": %s", err))
			deleted = nil
		}
	}

	return New(mappings, deleted), warnings
}

// Load reads the mapping configuration from file. A missing or unreadable
// file is not an error; it yields an empty Config and a warning.
func Load(file string) (Config, []string) {
	contents, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return New(nil, nil), []string{fmt.Sprintf("ticker mapping file %s not found, using no mappings", file)}
	}
	if err != nil {
		return New(nil, nil), []string{fmt.Sprintf("unable to read ticker mapping file %s: %s", file, err)}
	}

	c, warnings := Parse(contents)
	for i := range warnings {
		warnings[i] = file + ": " + warnings[i]
	}

	return c, warnings
}
