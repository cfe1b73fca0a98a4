// Package report executes the fixed catalog of read-only aggregation queries
// and exports each result set as a CSV file.
package report

// Query describes one reproducible aggregation in the catalog.
type Query struct {
	Name        string
	Description string
	SQL         string
	OutFile     string
}

// Catalog returns the fixed, ordered query catalog. Each entry maps to one
// output file. Rankings with equal keys fall back to the store's natural row
// order; that tie-break is not part of the contract.
func Catalog() []Query {
	return []Query{
		{
			Name:        "top_customers",
			Description: "Top 10 customers by total spending",
			OutFile:     "top_customers.csv",
			SQL: `
				SELECT
					c.id AS customer_id,
					c.name,
					c.email,
					SUM(o.total_amount) AS total_spent,
					COUNT(o.id) AS orders_count
				FROM customers c
				JOIN orders o ON c.id = o.customer_id
				GROUP BY c.id, c.name, c.email
				ORDER BY total_spent DESC
				LIMIT 10`,
		},
		{
			Name:        "product_sales",
			Description: "Most sold products with quantities and revenue",
			OutFile:     "product_sales.csv",
			SQL: `
				SELECT
					p.id AS product_id,
					p.name AS product_name,
					p.category,
					SUM(oi.quantity) AS total_quantity,
					ROUND(SUM(oi.quantity * oi.price), 2) AS total_revenue
				FROM order_items oi
				JOIN products p ON p.id = oi.product_id
				GROUP BY p.id, p.name, p.category
				ORDER BY total_quantity DESC
				LIMIT 20`,
		},
		{
			Name:        "city_revenue",
			Description: "Revenue contribution per customer city",
			OutFile:     "city_revenue.csv",
			SQL: `
				SELECT
					c.city,
					COUNT(DISTINCT o.id) AS orders_count,
					ROUND(SUM(o.total_amount), 2) AS total_revenue
				FROM customers c
				JOIN orders o ON o.customer_id = c.id
				GROUP BY c.city
				ORDER BY total_revenue DESC`,
		},
		{
			Name:        "orders_payments",
			Description: "Most recent orders joined with their payment",
			OutFile:     "orders_payments.csv",
			SQL: `
				SELECT
					o.id AS order_id,
					o.order_date,
					o.total_amount,
					p.payment_method,
					p.status AS payment_status,
					p.payment_date
				FROM orders o
				LEFT JOIN payments p ON p.order_id = o.id
				ORDER BY o.order_date DESC
				LIMIT 200`,
		},
		{
			Name:        "monthly_sales",
			Description: "Month-wise sales summary",
			OutFile:     "monthly_sales.csv",
			SQL: `
				SELECT
					strftime('%Y-%m', o.order_date) AS order_month,
					COUNT(o.id) AS orders_count,
					ROUND(SUM(o.total_amount), 2) AS total_revenue,
					ROUND(AVG(o.total_amount), 2) AS avg_order_value
				FROM orders o
				GROUP BY strftime('%Y-%m', o.order_date)
				ORDER BY order_month`,
		},
	}
}
