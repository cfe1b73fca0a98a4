package data_test

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecom-data-lab/internal/csvio"
	"ecom-data-lab/internal/data"
)

func testConfig() data.GenConfig {
	return data.GenConfig{
		Seed:      42,
		Customers: 30,
		Products:  12,
		Orders:    40,
		Now:       time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestEmailsArePairwiseDistinct(t *testing.T) {
	cfg := testConfig()
	cfg.Customers = 300
	ds := data.Generate(cfg)

	seen := make(map[string]struct{}, len(ds.Customers))
	for _, c := range ds.Customers {
		_, dup := seen[c.Email]
		assert.Falsef(t, dup, "email %q assigned twice", c.Email)
		seen[c.Email] = struct{}{}
	}
	assert.Len(t, ds.Customers, 300)
}

func TestReferentialIntegrity(t *testing.T) {
	ds := data.Generate(testConfig())

	customerIDs := make(map[uint]struct{}, len(ds.Customers))
	for _, c := range ds.Customers {
		customerIDs[c.ID] = struct{}{}
	}
	productIDs := make(map[uint]struct{}, len(ds.Products))
	for _, p := range ds.Products {
		productIDs[p.ID] = struct{}{}
	}
	orderIDs := make(map[uint]struct{}, len(ds.Orders))
	for _, o := range ds.Orders {
		orderIDs[o.ID] = struct{}{}
		assert.Contains(t, customerIDs, o.CustomerID)
	}

	for _, it := range ds.OrderItems {
		assert.Contains(t, orderIDs, it.OrderID)
		assert.Contains(t, productIDs, it.ProductID)
	}

	paidOrders := make(map[uint]struct{}, len(ds.Payments))
	for _, p := range ds.Payments {
		assert.Contains(t, orderIDs, p.OrderID)
		_, dup := paidOrders[p.OrderID]
		assert.Falsef(t, dup, "order %d paid twice", p.OrderID)
		paidOrders[p.OrderID] = struct{}{}
	}
	assert.Len(t, ds.Payments, len(ds.Orders))
}

func TestOrderTotalsMatchItems(t *testing.T) {
	ds := data.Generate(testConfig())

	sums := make(map[uint]float64, len(ds.Orders))
	for _, it := range ds.OrderItems {
		sums[it.OrderID] += it.Price * float64(it.Quantity)
	}
	for _, o := range ds.Orders {
		assert.InDeltaf(t, sums[o.ID], o.TotalAmount, 0.01, "order %d total", o.ID)
	}
}

func TestPaymentDatesNeverPrecedeOrders(t *testing.T) {
	ds := data.Generate(testConfig())

	orderDates := make(map[uint]time.Time, len(ds.Orders))
	for _, o := range ds.Orders {
		d, err := time.Parse(data.DateLayout, o.OrderDate)
		require.NoError(t, err)
		orderDates[o.ID] = d
	}
	for _, p := range ds.Payments {
		d, err := time.Parse(data.DateLayout, p.PaymentDate)
		require.NoError(t, err)
		assert.Falsef(t, d.Before(orderDates[p.OrderID]), "payment %d dated %s before its order", p.ID, p.PaymentDate)
	}
}

func TestSameSeedSameDataset(t *testing.T) {
	first := data.Generate(testConfig())
	second := data.Generate(testConfig())
	assert.Equal(t, first, second)
}

func TestItemAndQuantityBounds(t *testing.T) {
	ds := data.Generate(testConfig())

	assert.GreaterOrEqual(t, len(ds.OrderItems), len(ds.Orders))
	assert.LessOrEqual(t, len(ds.OrderItems), len(ds.Orders)*5)

	perOrder := make(map[uint]map[uint]struct{})
	for _, it := range ds.OrderItems {
		assert.GreaterOrEqual(t, it.Quantity, 1)
		assert.LessOrEqual(t, it.Quantity, 4)
		if perOrder[it.OrderID] == nil {
			perOrder[it.OrderID] = make(map[uint]struct{})
		}
		_, dup := perOrder[it.OrderID][it.ProductID]
		assert.Falsef(t, dup, "order %d lists product %d twice", it.OrderID, it.ProductID)
		perOrder[it.OrderID][it.ProductID] = struct{}{}
	}
	for id, products := range perOrder {
		assert.GreaterOrEqualf(t, len(products), 1, "order %d", id)
		assert.LessOrEqualf(t, len(products), 5, "order %d", id)
	}
}

func TestPriceBounds(t *testing.T) {
	ds := data.Generate(testConfig())
	for _, p := range ds.Products {
		assert.GreaterOrEqual(t, p.Price, 5.0)
		assert.LessOrEqual(t, p.Price, 500.0)
		cents := p.Price * 100
		assert.InDeltaf(t, math.Round(cents), cents, 1e-6, "product %d price %v not 2-decimal", p.ID, p.Price)
	}
}

func TestWriteCSVFiles(t *testing.T) {
	dir := t.TempDir()
	ds := data.Generate(testConfig())

	summaries, err := data.WriteCSVFiles(dir, ds)
	require.NoError(t, err)
	require.Len(t, summaries, 5)

	expected := map[string]int{
		"customers.csv":   len(ds.Customers),
		"products.csv":    len(ds.Products),
		"orders.csv":      len(ds.Orders),
		"order_items.csv": len(ds.OrderItems),
		"payments.csv":    len(ds.Payments),
	}
	for _, s := range summaries {
		assert.Equal(t, expected[filepath.Base(s.File)], s.Rows)
	}

	header, records, err := csvio.ReadFile(filepath.Join(dir, "customers.csv"))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "email", "phone", "city", "signup_date"}, header)
	assert.Len(t, records, len(ds.Customers))
}
