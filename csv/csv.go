package csv

import (
	"bytes"
	stdcsv "encoding/csv"
	"fmt"
	"os"
)

// ReadTable returns the header and the data rows of a CSV file. Blank lines are skipped.
func ReadTable(file string) ([]string, [][]string, error) {
	contents, err := os.ReadFile(file)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read file %s: %w", file, err)
	}

	r := stdcsv.NewReader(bytes.NewReader(contents))
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to parse file %s: %w", file, err)
	}

	if len(records) == 0 {
		return nil, nil, nil
	}

	// Skip the header line
	return records[0], records[1:], nil
}

// Encode renders a header and rows as CSV text, quoting only where needed.
func Encode(header []string, rows [][]string) (string, error) {
	var buf bytes.Buffer

	w := stdcsv.NewWriter(&buf)

	err := w.Write(header)
	if err != nil {
		return "", err
	}

	err = w.WriteAll(rows)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// WriteTable replaces the contents of file with the given header and rows.
func WriteTable(file string, header []string, rows [][]string) error {
	contents, err := Encode(header, rows)
	if err != nil {
		return fmt.Errorf("unable to encode %s: %w", file, err)
	}

	err = WriteFile(file, contents)
	if err != nil {
		return fmt.Errorf("unable to write %s: %w", file, err)
	}

	return nil
}

// WriteFile replaces the contents of a file (creates if not exist).
func WriteFile(file, contents string) error {
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(contents)
	if err != nil {
		return err
	}

	return nil
}
