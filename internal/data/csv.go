package data

import (
	"path/filepath"
	"strconv"

	"ecom-data-lab/internal/csvio"
)

// WriteSummary reports one entity file written by WriteCSVFiles.
type WriteSummary struct {
	File string
	Rows int
}

// WriteCSVFiles serializes the dataset into the five entity files under dir,
// creating the directory if absent. Prices carry exactly two decimals; dates
// are already formatted as YYYY-MM-DD text.
func WriteCSVFiles(dir string, ds *Dataset) ([]WriteSummary, error) {
	files := []struct {
		name    string
		header  []string
		records [][]string
	}{
		{"customers.csv",
			[]string{"id", "name", "email", "phone", "city", "signup_date"},
			customerRecords(ds.Customers)},
		{"products.csv",
			[]string{"id", "name", "category", "price"},
			productRecords(ds.Products)},
		{"orders.csv",
			[]string{"id", "customer_id", "order_date", "total_amount"},
			orderRecords(ds.Orders)},
		{"order_items.csv",
			[]string{"id", "order_id", "product_id", "quantity", "price"},
			orderItemRecords(ds.OrderItems)},
		{"payments.csv",
			[]string{"id", "order_id", "payment_method", "status", "payment_date"},
			paymentRecords(ds.Payments)},
	}

	summaries := make([]WriteSummary, 0, len(files))
	for _, file := range files {
		path := filepath.Join(dir, file.name)
		if err := csvio.WriteFile(path, file.header, file.records); err != nil {
			return nil, err
		}
		summaries = append(summaries, WriteSummary{File: path, Rows: len(file.records)})
	}
	return summaries, nil
}

func customerRecords(customers []Customer) [][]string {
	records := make([][]string, 0, len(customers))
	for _, c := range customers {
		records = append(records, []string{
			formatID(c.ID), c.Name, c.Email, c.Phone, c.City, c.SignupDate,
		})
	}
	return records
}

func productRecords(products []Product) [][]string {
	records := make([][]string, 0, len(products))
	for _, p := range products {
		records = append(records, []string{
			formatID(p.ID), p.Name, p.Category, formatAmount(p.Price),
		})
	}
	return records
}

func orderRecords(orders []Order) [][]string {
	records := make([][]string, 0, len(orders))
	for _, o := range orders {
		records = append(records, []string{
			formatID(o.ID), formatID(o.CustomerID), o.OrderDate, formatAmount(o.TotalAmount),
		})
	}
	return records
}

func orderItemRecords(items []OrderItem) [][]string {
	records := make([][]string, 0, len(items))
	for _, it := range items {
		records = append(records, []string{
			formatID(it.ID), formatID(it.OrderID), formatID(it.ProductID),
			strconv.Itoa(it.Quantity), formatAmount(it.Price),
		})
	}
	return records
}

func paymentRecords(payments []Payment) [][]string {
	records := make([][]string, 0, len(payments))
	for _, p := range payments {
		records = append(records, []string{
			formatID(p.ID), formatID(p.OrderID), p.PaymentMethod, p.Status, p.PaymentDate,
		})
	}
	return records
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
