package utils

import (
	"sort"
	"strings"
)

// Unique returns list deduplicated and sorted. Blanks are dropped.
func Unique(list []string) []string {
	m := make(map[string]int)

	for _, val := range list {
		m[val] = 1
	}

	result := []string{}

	for key := range m {
		if key == "" {
			continue
		}
		result = append(result, key)
	}

	// We pulled these out of a map, so they are now unordered
	sort.Strings(result)

	return result
}

// Trim returns a copy of list with surrounding whitespace stripped from each entry, upper-cased if upper is set.
func Trim(list []string, upper bool) []string {
	result := make([]string, 0, len(list))

	for _, val := range list {
		val = strings.TrimSpace(val)
		if upper {
			val = strings.ToUpper(val)
		}
		result = append(result, val)
	}

	return result
}
