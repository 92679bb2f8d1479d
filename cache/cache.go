package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sanitize replaces reserved filesystem characters with '-'
func sanitize(id string) string {
	return strings.NewReplacer("/", "-", ":", "-", "?", "-", "&", "-", "%", "-").Replace(id)
}

// Read loads the object stored under id into v. It fails if the object is not cached.
func Read(dir, id string, v interface{}) error {
	object := filepath.Join(dir, sanitize(id))

	contents, err := os.ReadFile(object)
	if err != nil {
		return fmt.Errorf("unable to read file %s %w", object, err)
	}

	err = json.Unmarshal(contents, v)
	if err != nil {
		return fmt.Errorf("unable to unmarshal cached json %w", err)
	}

	return nil
}

// Update stores v in the cache under id, creating the cache directory if needed.
func Update(dir, id string, v interface{}) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("unable to create cache dir %s %w", dir, err)
	}

	object := filepath.Join(dir, sanitize(id))

	s, err := json.MarshalIndent(v, "", " ")
	if err != nil {
		return fmt.Errorf("could not marshal contents for %s %w", id, err)
	}

	err = os.WriteFile(object, s, 0644)
	if err != nil {
		return fmt.Errorf("error writing cache file %w", err)
	}

	return nil
}
