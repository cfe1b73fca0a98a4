package report

import (
	"database/sql"
	"fmt"
	"io"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecom-data-lab/internal/csvio"
)

// Result captures one exported query result set. NULL cells become empty
// strings, matching the generated files' missing-value representation.
type Result struct {
	Name    string
	Columns []string
	Rows    [][]string
	Path    string
}

// Run executes every catalog query in order, writing each result set to its
// own CSV under outDir and printing a preview table. The first failure aborts
// the remaining queries; an empty result set is a valid outcome and still
// produces a header-only file.
func Run(gdb *gorm.DB, outDir string, out io.Writer, log *zap.SugaredLogger) ([]Result, error) {
	results := make([]Result, 0, len(Catalog()))
	for _, q := range Catalog() {
		res, err := runOne(gdb, q, outDir)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", q.Name, err)
		}

		fmt.Fprintf(out, "\n>>> %s: %s\n", q.Name, q.Description)
		if len(res.Rows) == 0 {
			fmt.Fprintln(out, "no rows returned")
		} else if err := printTable(out, res); err != nil {
			return nil, fmt.Errorf("query %s: %w", q.Name, err)
		}
		log.Infof("saved %d rows -> %s", len(res.Rows), res.Path)
		results = append(results, res)
	}
	return results, nil
}

func runOne(gdb *gorm.DB, q Query, outDir string) (Result, error) {
	rows, err := gdb.Raw(q.SQL).Rows()
	if err != nil {
		return Result{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Result{}, err
	}

	var records [][]string
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return Result{}, err
		}
		records = append(records, lo.Map(vals, func(v sql.NullString, _ int) string {
			return v.String
		}))
	}
	if err := rows.Err(); err != nil {
		return Result{}, err
	}

	path := filepath.Join(outDir, q.OutFile)
	if err := csvio.WriteFile(path, cols, records); err != nil {
		return Result{}, err
	}
	return Result{Name: q.Name, Columns: cols, Rows: records, Path: path}, nil
}

func printTable(out io.Writer, res Result) error {
	table := tablewriter.NewWriter(out)
	table.Header(res.Columns)
	for _, row := range res.Rows {
		_ = table.Append(row)
	}
	return table.Render()
}
