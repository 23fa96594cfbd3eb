package domain

import "time"

// OrderStatus represents the lifecycle state of a manufacturer order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Product is a catalogue entry offered by a manufacturer.
type Product struct {
	Name     string  `json:"name" bson:"name"`
	SKU      string  `json:"sku,omitempty" bson:"sku,omitempty"`
	Category string  `json:"category,omitempty" bson:"category,omitempty"`
	Price    float64 `json:"price" bson:"price"`
	Unit     string  `json:"unit,omitempty" bson:"unit,omitempty"`
	Active   bool    `json:"active" bson:"active"`
}

// InventoryItem tracks stock on hand for a SKU.
type InventoryItem struct {
	SKU          string `json:"sku" bson:"sku"`
	ProductName  string `json:"product_name,omitempty" bson:"product_name,omitempty"`
	Quantity     int    `json:"quantity" bson:"quantity"`
	Location     string `json:"location,omitempty" bson:"location,omitempty"`
	ReorderLevel int    `json:"reorder_level" bson:"reorder_level"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	SKU         string  `json:"sku,omitempty" bson:"sku,omitempty"`
	ProductName string  `json:"product_name,omitempty" bson:"product_name,omitempty"`
	Qty         int     `json:"qty" bson:"qty"`
	UnitPrice   float64 `json:"unit_price" bson:"unit_price"`
	LineTotal   float64 `json:"line_total" bson:"line_total"`
}

// Order is a customer order placed against a manufacturer.
type Order struct {
	OrderNo      string      `json:"order_no,omitempty" bson:"order_no,omitempty"`
	CustomerName string      `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	CustomerID   string      `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	Status       OrderStatus `json:"status" bson:"status"`
	Items        []OrderItem `json:"items" bson:"items"`
	TotalAmount  float64     `json:"total_amount" bson:"total_amount"`
	OrderedAt    time.Time   `json:"ordered_at" bson:"ordered_at"`
}

// Enquiry is a pending customer question awaiting a manufacturer response.
type Enquiry struct {
	CustomerName string    `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	CustomerID   string    `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	Subject      string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Message      string    `json:"message,omitempty" bson:"message,omitempty"`
	Status       string    `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// RevenueByMonth is a single point of the revenue trend chart.
type RevenueByMonth struct {
	Month  string  `json:"month" bson:"month"`
	Amount float64 `json:"amount" bson:"amount"`
}

// TopCustomer aggregates revenue and order volume per customer.
type TopCustomer struct {
	CustomerName string  `json:"customer_name" bson:"customer_name"`
	CustomerID   string  `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	TotalRevenue float64 `json:"total_revenue" bson:"total_revenue"`
	TotalOrders  int     `json:"total_orders" bson:"total_orders"`
}

// Manufacturer is the dashboard aggregate for a manufacturer account: its
// catalogue, inventory, order book and revenue figures. Maintained by
// out-of-band processes; this service only reads it.
type Manufacturer struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
	Website string `json:"website,omitempty" bson:"website,omitempty"`

	Products         []Product       `json:"products" bson:"products"`
	Orders           []Order         `json:"orders" bson:"orders"`
	PendingEnquiries []Enquiry       `json:"pending_enquiries" bson:"pending_enquiries"`
	Inventory        []InventoryItem `json:"inventory" bson:"inventory"`

	RevenueByMonth []RevenueByMonth `json:"revenue_by_month" bson:"revenue_by_month"`
	TotalClients   int              `json:"total_clients" bson:"total_clients"`
	TopCustomers   []TopCustomer    `json:"top_customers" bson:"top_customers"`
	Revenue        float64          `json:"revenue" bson:"revenue"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ManufacturerSummary is the directory projection shown on the reseller
// dashboard.
type ManufacturerSummary struct {
	ID           string  `json:"id" bson:"_id,omitempty"`
	Name         string  `json:"name" bson:"name"`
	Email        string  `json:"email,omitempty" bson:"email,omitempty"`
	TotalClients int     `json:"total_clients" bson:"total_clients"`
	Revenue      float64 `json:"revenue" bson:"revenue"`
}
