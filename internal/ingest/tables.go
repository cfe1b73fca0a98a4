package ingest

import (
	"fmt"
	"strconv"

	"ecom-data-lab/internal/data"
)

// Schema DDL, one statement per table. Declared in dependency order so
// creation and load walk it forward and teardown walks it in reverse.
const (
	createCustomers = `
		CREATE TABLE IF NOT EXISTS customers (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			phone TEXT,
			city TEXT,
			signup_date TEXT
		)`

	createProducts = `
		CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT,
			price REAL NOT NULL
		)`

	createOrders = `
		CREATE TABLE IF NOT EXISTS orders (
			id INTEGER PRIMARY KEY,
			customer_id INTEGER NOT NULL,
			order_date TEXT NOT NULL,
			total_amount REAL NOT NULL,
			FOREIGN KEY(customer_id) REFERENCES customers(id)
		)`

	createOrderItems = `
		CREATE TABLE IF NOT EXISTS order_items (
			id INTEGER PRIMARY KEY,
			order_id INTEGER NOT NULL,
			product_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			price REAL NOT NULL,
			FOREIGN KEY(order_id) REFERENCES orders(id),
			FOREIGN KEY(product_id) REFERENCES products(id)
		)`

	createPayments = `
		CREATE TABLE IF NOT EXISTS payments (
			id INTEGER PRIMARY KEY,
			order_id INTEGER NOT NULL,
			payment_method TEXT NOT NULL,
			status TEXT NOT NULL,
			payment_date TEXT NOT NULL,
			FOREIGN KEY(order_id) REFERENCES orders(id)
		)`
)

type tableSpec struct {
	name    string
	file    string
	ddl     string
	columns []string
	// parse converts CSV records into a typed slice ready for batch insert.
	parse func(records [][]string) (rows any, n int, err error)
}

var tableSpecs = []tableSpec{
	{
		name:    "customers",
		file:    "customers.csv",
		ddl:     createCustomers,
		columns: []string{"id", "name", "email", "phone", "city", "signup_date"},
		parse:   parseCustomers,
	},
	{
		name:    "products",
		file:    "products.csv",
		ddl:     createProducts,
		columns: []string{"id", "name", "category", "price"},
		parse:   parseProducts,
	},
	{
		name:    "orders",
		file:    "orders.csv",
		ddl:     createOrders,
		columns: []string{"id", "customer_id", "order_date", "total_amount"},
		parse:   parseOrders,
	},
	{
		name:    "order_items",
		file:    "order_items.csv",
		ddl:     createOrderItems,
		columns: []string{"id", "order_id", "product_id", "quantity", "price"},
		parse:   parseOrderItems,
	},
	{
		name:    "payments",
		file:    "payments.csv",
		ddl:     createPayments,
		columns: []string{"id", "order_id", "payment_method", "status", "payment_date"},
		parse:   parsePayments,
	},
}

func parseCustomers(records [][]string) (any, int, error) {
	rows := make([]data.Customer, 0, len(records))
	for i, rec := range records {
		id, err := parseUint(rec[0])
		if err != nil {
			return nil, 0, rowErr("customers", i, err)
		}
		rows = append(rows, data.Customer{
			ID:         id,
			Name:       rec[1],
			Email:      rec[2],
			Phone:      rec[3],
			City:       rec[4],
			SignupDate: rec[5],
		})
	}
	return rows, len(rows), nil
}

func parseProducts(records [][]string) (any, int, error) {
	rows := make([]data.Product, 0, len(records))
	for i, rec := range records {
		id, err := parseUint(rec[0])
		if err != nil {
			return nil, 0, rowErr("products", i, err)
		}
		price, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, 0, rowErr("products", i, err)
		}
		rows = append(rows, data.Product{ID: id, Name: rec[1], Category: rec[2], Price: price})
	}
	return rows, len(rows), nil
}

func parseOrders(records [][]string) (any, int, error) {
	rows := make([]data.Order, 0, len(records))
	for i, rec := range records {
		id, err := parseUint(rec[0])
		if err != nil {
			return nil, 0, rowErr("orders", i, err)
		}
		customerID, err := parseUint(rec[1])
		if err != nil {
			return nil, 0, rowErr("orders", i, err)
		}
		total, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, 0, rowErr("orders", i, err)
		}
		rows = append(rows, data.Order{ID: id, CustomerID: customerID, OrderDate: rec[2], TotalAmount: total})
	}
	return rows, len(rows), nil
}

func parseOrderItems(records [][]string) (any, int, error) {
	rows := make([]data.OrderItem, 0, len(records))
	for i, rec := range records {
		id, err := parseUint(rec[0])
		if err != nil {
			return nil, 0, rowErr("order_items", i, err)
		}
		orderID, err := parseUint(rec[1])
		if err != nil {
			return nil, 0, rowErr("order_items", i, err)
		}
		productID, err := parseUint(rec[2])
		if err != nil {
			return nil, 0, rowErr("order_items", i, err)
		}
		quantity, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, 0, rowErr("order_items", i, err)
		}
		price, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, 0, rowErr("order_items", i, err)
		}
		rows = append(rows, data.OrderItem{
			ID: id, OrderID: orderID, ProductID: productID, Quantity: quantity, Price: price,
		})
	}
	return rows, len(rows), nil
}

func parsePayments(records [][]string) (any, int, error) {
	rows := make([]data.Payment, 0, len(records))
	for i, rec := range records {
		id, err := parseUint(rec[0])
		if err != nil {
			return nil, 0, rowErr("payments", i, err)
		}
		orderID, err := parseUint(rec[1])
		if err != nil {
			return nil, 0, rowErr("payments", i, err)
		}
		rows = append(rows, data.Payment{
			ID: id, OrderID: orderID, PaymentMethod: rec[2], Status: rec[3], PaymentDate: rec[4],
		})
	}
	return rows, len(rows), nil
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return uint(v), err
}

func rowErr(table string, row int, err error) error {
	return fmt.Errorf("%s row %d: %w", table, row+1, err)
}
