// Package ingest performs the idempotent full-refresh load of the generated
// CSV files into the relational store and reports validation summaries.
package ingest

import (
	"fmt"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecom-data-lab/internal/csvio"
)

const insertBatchSize = 200

// Result keeps one table's CSV frame around for the validation report.
type Result struct {
	Table   string
	Rows    int
	Header  []string
	Records [][]string
}

// Run drops and recreates the five tables, then appends every CSV row inside
// a single transaction. Any failure — parse, constraint, I/O — rolls the whole
// load back; there is no partial commit.
func Run(gdb *gorm.DB, dataDir string, log *zap.SugaredLogger) ([]Result, error) {
	results := make([]Result, 0, len(tableSpecs))

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := resetTables(tx); err != nil {
			return err
		}
		for _, spec := range tableSpecs {
			res, err := loadTable(tx, dataDir, spec)
			if err != nil {
				return err
			}
			log.Infof("loaded %d rows into '%s'", res.Rows, res.Table)
			results = append(results, res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// resetTables tears children down before parents so the drops never trip the
// session's foreign-key checks, then recreates everything in dependency order.
func resetTables(tx *gorm.DB) error {
	for i := len(tableSpecs) - 1; i >= 0; i-- {
		if err := tx.Exec("DROP TABLE IF EXISTS " + tableSpecs[i].name).Error; err != nil {
			return fmt.Errorf("drop %s: %w", tableSpecs[i].name, err)
		}
	}
	for _, spec := range tableSpecs {
		if err := tx.Exec(spec.ddl).Error; err != nil {
			return fmt.Errorf("create %s: %w", spec.name, err)
		}
	}
	return nil
}

func loadTable(tx *gorm.DB, dataDir string, spec tableSpec) (Result, error) {
	path := filepath.Join(dataDir, spec.file)
	header, records, err := csvio.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	if !slices.Equal(header, spec.columns) {
		return Result{}, fmt.Errorf("%s: header %v does not match expected columns %v", path, header, spec.columns)
	}

	rows, n, err := spec.parse(records)
	if err != nil {
		return Result{}, err
	}
	if n > 0 {
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return Result{}, fmt.Errorf("load %s: %w", spec.name, err)
		}
	}

	return Result{Table: spec.name, Rows: n, Header: header, Records: records}, nil
}
