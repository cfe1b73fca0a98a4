package csvio_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecom-data-lab/internal/csvio"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rows.csv")
	header := []string{"id", "name", "price"}
	records := [][]string{
		{"1", "Ergonomic Chair", "129.99"},
		{"2", "Desk, Walnut", "349.00"}, // embedded comma must survive quoting
		{"3", "", "5.00"},
	}

	require.NoError(t, csvio.WriteFile(path, header, records))

	gotHeader, gotRecords, err := csvio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, header, gotHeader)
	assert.Equal(t, records, gotRecords)
}

func TestHeaderOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	header := []string{"order_month", "orders_count"}

	require.NoError(t, csvio.WriteFile(path, header, nil))

	gotHeader, gotRecords, err := csvio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, header, gotHeader)
	assert.Empty(t, gotRecords)
}

func TestReadMissingFile(t *testing.T) {
	_, _, err := csvio.ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
