// Package store provides the entity store for customers and orders.
package store

import (
	"context"
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Customer is a customer record.
type Customer struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

// OrderProduct is a single line item of an order.
type OrderProduct struct {
	ID       int64
	Name     string
	Price    int64 // Price in cents
	Quantity int32
}

// Order is an order record. TotalAmount is supplied by the caller and is
// not recomputed from Products.
type Order struct {
	ID          int64
	Number      string
	CustomerID  int64
	Products    []OrderProduct
	OrderDate   time.Time
	Status      OrderStatus
	TotalAmount int64 // in cents
}

// CustomerParams are the fields of a customer to be created.
type CustomerParams struct {
	Name  string
	Email string
	Phone string
}

// OrderParams are the fields of an order to be created. The store assigns
// the ID and the order number.
type OrderParams struct {
	CustomerID  int64
	Products    []OrderProduct
	OrderDate   time.Time
	Status      OrderStatus
	TotalAmount int64
}

// Store is the entity store for customers and orders.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type Store interface {
	// CreateCustomer adds a new customer, assigning the next free ID.
	CreateCustomer(ctx context.Context, params CustomerParams) (Customer, error)

	// UpdateCustomer replaces the customer record matching its ID.
	// Returns ErrCustomerNotFound if no customer exists with the given ID.
	UpdateCustomer(ctx context.Context, customer Customer) error

	// DeleteCustomer removes a customer by ID.
	// Returns ErrCustomerHasOrders without mutating anything when any
	// order still references the customer.
	DeleteCustomer(ctx context.Context, id int64) error

	// FindCustomerByID retrieves a single customer by its identifier.
	// Returns ErrCustomerNotFound if no customer exists with the given ID.
	FindCustomerByID(ctx context.Context, id int64) (Customer, error)

	// FindAllCustomers returns all customers in insertion order.
	FindAllCustomers(ctx context.Context) ([]Customer, error)

	// CreateOrder adds a new order, assigning the next free ID and a
	// freshly generated order number. Returns ErrCustomerNotFound when
	// the referenced customer does not exist.
	CreateOrder(ctx context.Context, params OrderParams) (Order, error)

	// UpdateOrder replaces the order record matching its ID.
	// Returns ErrOrderNotFound if no order exists with the given ID.
	UpdateOrder(ctx context.Context, order Order) error

	// DeleteOrder removes an order by ID unconditionally.
	// Returns ErrOrderNotFound if no order exists with the given ID.
	DeleteOrder(ctx context.Context, id int64) error

	// FindOrderByID retrieves a single order by its identifier.
	// Returns ErrOrderNotFound if no order exists with the given ID.
	FindOrderByID(ctx context.Context, id int64) (Order, error)

	// FindAllOrders returns all orders in insertion order.
	FindAllOrders(ctx context.Context) ([]Order, error)

	// FindOrdersByCustomerID returns all orders of one customer in
	// insertion order. Returns an empty slice if none exist.
	FindOrdersByCustomerID(ctx context.Context, customerID int64) ([]Order, error)

	// Seed loads the static mock data set, replacing current contents.
	Seed(ctx context.Context) error

	// Reset discards both collections.
	Reset(ctx context.Context) error
}
