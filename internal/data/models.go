package data

// Customer is a registered buyer. Emails are unique across the dataset.
type Customer struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:64;not null"`
	Email      string `gorm:"size:128;uniqueIndex;not null"`
	Phone      string `gorm:"size:32"`
	City       string `gorm:"size:64"`
	SignupDate string `gorm:"size:10"`
}

// TableName keeps the table aligned with the customers.csv file.
func (Customer) TableName() string { return "customers" }

// Product is one catalog entry with a fixed category and a 2-decimal price.
type Product struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:128;not null"`
	Category string `gorm:"size:32"`
	Price    float64
}

func (Product) TableName() string { return "products" }

// Order is a purchase header. TotalAmount is derived from the order's line
// items after item generation and is never set independently.
type Order struct {
	ID          uint   `gorm:"primaryKey"`
	CustomerID  uint   `gorm:"not null"`
	OrderDate   string `gorm:"size:10;not null"`
	TotalAmount float64
}

func (Order) TableName() string { return "orders" }

// OrderItem is one line of an order. Price is the unit price copied from the
// product at generation time; later catalog changes never rewrite history.
type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"not null"`
	ProductID uint `gorm:"not null"`
	Quantity  int  `gorm:"not null"`
	Price     float64
}

func (OrderItem) TableName() string { return "order_items" }

// Payment settles exactly one order. PaymentDate never precedes the order date.
type Payment struct {
	ID            uint   `gorm:"primaryKey"`
	OrderID       uint   `gorm:"not null"`
	PaymentMethod string `gorm:"size:32;not null"`
	Status        string `gorm:"size:16;not null"`
	PaymentDate   string `gorm:"size:10;not null"`
}

func (Payment) TableName() string { return "payments" }

// Dataset holds the five collections produced by one generation run.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Payments   []Payment
}
