// Package csvio reads and writes the delimited tabular files that connect the
// pipeline stages. Every file carries a header row of column names; all cells
// are plain text.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes a header row followed by records to path, creating the
// parent directory if absent. An empty record set produces a header-only file.
func WriteFile(path string, header []string, records [][]string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header to %s: %w", path, err)
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("write records to %s: %w", path, err)
	}
	return f.Close()
}

// ReadFile reads a delimited file, returning the header row and the data
// records that follow it.
func ReadFile(path string) (header []string, records [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("read %s: missing header row", path)
	}
	return all[0], all[1:], nil
}
