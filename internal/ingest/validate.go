package ingest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Report prints the three validation summaries for a completed load: missing
// values per column, duplicate primary keys per table, and stored row counts.
// Duplicate counts should be exactly zero; a non-zero count signals a
// generator bug upstream, not a runtime fault.
func Report(gdb *gorm.DB, results []Result, out io.Writer) error {
	fmt.Fprintln(out, "\n=== Validation: Missing Values ===")
	missing := tablewriter.NewWriter(out)
	missing.Header("table", "column", "missing")
	for _, res := range results {
		for i, col := range res.Header {
			_ = missing.Append([]string{res.Table, col, strconv.Itoa(missingValues(res.Records, i))})
		}
	}
	if err := missing.Render(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n=== Validation: Duplicate ID Counts ===")
	dupes := tablewriter.NewWriter(out)
	dupes.Header("table", "duplicate ids")
	for _, res := range results {
		_ = dupes.Append([]string{res.Table, strconv.Itoa(duplicateIDs(res.Records))})
	}
	if err := dupes.Render(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n=== Validation: Row Counts in Store ===")
	counts, err := StoredCounts(gdb)
	if err != nil {
		return err
	}
	stored := tablewriter.NewWriter(out)
	stored.Header("table", "rows")
	for _, spec := range tableSpecs {
		_ = stored.Append([]string{spec.name, strconv.FormatInt(counts[spec.name], 10)})
	}
	return stored.Render()
}

// StoredCounts returns the persisted row count per table.
func StoredCounts(gdb *gorm.DB) (map[string]int64, error) {
	counts := make(map[string]int64, len(tableSpecs))
	for _, spec := range tableSpecs {
		var n int64
		if err := gdb.Table(spec.name).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", spec.name, err)
		}
		counts[spec.name] = n
	}
	return counts, nil
}

func missingValues(records [][]string, col int) int {
	n := 0
	for _, rec := range records {
		if col < len(rec) && rec[col] == "" {
			n++
		}
	}
	return n
}

// duplicateIDs counts the surplus occurrences of each id beyond its first,
// matching a duplicated-key tally over the id column.
func duplicateIDs(records [][]string) int {
	ids := lo.Map(records, func(rec []string, _ int) string { return rec[0] })
	total := 0
	for _, n := range lo.CountValues(ids) {
		if n > 1 {
			total += n - 1
		}
	}
	return total
}
