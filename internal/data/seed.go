package data

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// DateLayout is the on-disk representation of every date column.
const DateLayout = "2006-01-02"

const (
	minItemsPerOrder = 1
	maxItemsPerOrder = 5
	minQuantity      = 1
	maxQuantity      = 4
	minPrice         = 5.0
	maxPrice         = 500.0
)

var (
	Categories = []string{
		"Electronics",
		"Home & Kitchen",
		"Books",
		"Fashion",
		"Sports",
		"Beauty",
		"Toys",
	}
	PaymentMethods  = []string{"credit_card", "debit_card", "paypal", "gift_card", "upi"}
	PaymentStatuses = []string{"completed", "pending", "failed", "refunded"}

	// Weighted likelihood per status, out of 100.
	statusWeights = map[string]int{
		"completed": 80,
		"pending":   10,
		"failed":    5,
		"refunded":  5,
	}
)

// GenConfig controls dataset sizing and determinism. Now anchors the trailing
// date windows; when zero it defaults to midnight UTC of the current day, so
// within one day two runs with the same seed are byte-identical.
type GenConfig struct {
	Seed      int64
	Customers int
	Products  int
	Orders    int
	Now       time.Time
}

type generator struct {
	rnd   *rand.Rand
	faker *gofakeit.Faker
	now   time.Time

	seenEmails   map[string]struct{}
	seenProducts map[string]struct{}
}

// Generate produces the five collections with sequential ids starting at 1 and
// every foreign key resolving to a generated primary key.
func Generate(cfg GenConfig) *Dataset {
	now := cfg.Now
	if now.IsZero() {
		now = time.Now().UTC().Truncate(24 * time.Hour)
	}

	g := &generator{
		rnd:          rand.New(rand.NewSource(cfg.Seed)),
		faker:        gofakeit.New(uint64(cfg.Seed)),
		now:          now,
		seenEmails:   make(map[string]struct{}),
		seenProducts: make(map[string]struct{}),
	}

	ds := &Dataset{}
	ds.Customers = g.customers(cfg.Customers)
	ds.Products = g.products(cfg.Products)
	ds.Orders = g.orders(cfg.Orders, ds.Customers)
	ds.OrderItems = g.orderItems(ds.Orders, ds.Products)
	ds.Payments = g.payments(ds.Orders)
	return ds
}

func (g *generator) customers(n int) []Customer {
	customers := make([]Customer, 0, n)
	for id := 1; id <= n; id++ {
		name := g.faker.Name()
		customers = append(customers, Customer{
			ID:         uint(id),
			Name:       name,
			Email:      g.uniqueEmail(name),
			Phone:      g.faker.PhoneFormatted(),
			City:       g.faker.City(),
			SignupDate: g.dateBetween(g.now.AddDate(-2, 0, 0), g.now),
		})
	}
	return customers
}

func (g *generator) products(n int) []Product {
	products := make([]Product, 0, n)
	for id := 1; id <= n; id++ {
		products = append(products, Product{
			ID:       uint(id),
			Name:     g.uniqueProductName(),
			Category: Categories[g.rnd.Intn(len(Categories))],
			Price:    round2(minPrice + g.rnd.Float64()*(maxPrice-minPrice)),
		})
	}
	return products
}

func (g *generator) orders(n int, customers []Customer) []Order {
	orders := make([]Order, 0, n)
	for id := 1; id <= n; id++ {
		customer := customers[g.rnd.Intn(len(customers))]
		orders = append(orders, Order{
			ID:          uint(id),
			CustomerID:  customer.ID,
			OrderDate:   g.dateBetween(g.now.AddDate(-1, 0, 0), g.now),
			TotalAmount: 0, // derived below from the order's items
		})
	}
	return orders
}

// orderItems samples 1-5 distinct products per order and accumulates each
// order's total. The running total is rounded once after all items are
// summed, not per item, so totals match a single end-of-order rounding.
func (g *generator) orderItems(orders []Order, products []Product) []OrderItem {
	items := make([]OrderItem, 0, len(orders)*maxItemsPerOrder)
	itemID := 1
	for i := range orders {
		count := minItemsPerOrder + g.rnd.Intn(maxItemsPerOrder-minItemsPerOrder+1)
		if count > len(products) {
			count = len(products)
		}
		total := 0.0
		for _, idx := range g.rnd.Perm(len(products))[:count] {
			product := products[idx]
			quantity := minQuantity + g.rnd.Intn(maxQuantity-minQuantity+1)
			total += product.Price * float64(quantity)
			items = append(items, OrderItem{
				ID:        uint(itemID),
				OrderID:   orders[i].ID,
				ProductID: product.ID,
				Quantity:  quantity,
				Price:     product.Price,
			})
			itemID++
		}
		orders[i].TotalAmount = round2(total)
	}
	return items
}

func (g *generator) payments(orders []Order) []Payment {
	payments := make([]Payment, 0, len(orders))
	for i, order := range orders {
		payments = append(payments, Payment{
			ID:            uint(i + 1),
			OrderID:       order.ID,
			PaymentMethod: PaymentMethods[g.rnd.Intn(len(PaymentMethods))],
			Status:        g.weightedStatus(),
			PaymentDate:   g.dateBetween(mustParseDate(order.OrderDate), g.now),
		})
	}
	return payments
}

func (g *generator) weightedStatus() string {
	total := 0
	for _, status := range PaymentStatuses {
		total += statusWeights[status]
	}
	n := g.rnd.Intn(total)
	for _, status := range PaymentStatuses {
		n -= statusWeights[status]
		if n < 0 {
			return status
		}
	}
	return PaymentStatuses[0]
}

// dateBetween picks a uniform calendar day in [start, end].
func (g *generator) dateBetween(start, end time.Time) string {
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return start.Format(DateLayout)
	}
	return start.AddDate(0, 0, g.rnd.Intn(days+1)).Format(DateLayout)
}

// uniqueEmail derives an address from the customer name and disambiguates
// collisions with a numeric suffix, so uniqueness holds by construction.
func (g *generator) uniqueEmail(name string) string {
	local := emailLocal(name)
	domain := g.faker.DomainName()
	email := local + "@" + domain
	for i := 2; ; i++ {
		if _, taken := g.seenEmails[email]; !taken {
			break
		}
		email = fmt.Sprintf("%s%d@%s", local, i, domain)
	}
	g.seenEmails[email] = struct{}{}
	return email
}

func (g *generator) uniqueProductName() string {
	name := g.faker.ProductName()
	for i := 2; ; i++ {
		if _, taken := g.seenProducts[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s %d", g.faker.ProductName(), i)
	}
	g.seenProducts[name] = struct{}{}
	return name
}

func emailLocal(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('.')
		}
	}
	if b.Len() == 0 {
		return "customer"
	}
	return b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mustParseDate(value string) time.Time {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}
