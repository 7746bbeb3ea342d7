package store

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	orderrors "github.com/odmng/orderdesk/internal/errors"
)

// inMemory implements Store using in-memory slices. Slices preserve
// insertion order, which the read operations guarantee.
type inMemory struct {
	mu             sync.RWMutex
	customers      []Customer
	orders         []Order
	nextCustomerID int64
	nextOrderID    int64
}

// NewInMemoryStore creates a new empty in-memory Store.
func NewInMemoryStore() Store {
	return &inMemory{
		nextCustomerID: 1,
		nextOrderID:    1,
	}
}

// CreateCustomer adds a new customer, assigning the next free ID.
func (s *inMemory) CreateCustomer(_ context.Context, params CustomerParams) (Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := Customer{
		ID:    s.takeCustomerID(),
		Name:  params.Name,
		Email: params.Email,
		Phone: params.Phone,
	}
	s.customers = append(s.customers, customer)
	return customer, nil
}

// UpdateCustomer replaces the customer record matching its ID.
func (s *inMemory) UpdateCustomer(_ context.Context, customer Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == customer.ID {
			s.customers[i] = customer
			return nil
		}
	}
	return orderrors.ErrCustomerNotFound
}

// DeleteCustomer removes a customer, refusing while orders reference it.
func (s *inMemory) DeleteCustomer(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].CustomerID == id {
			return orderrors.ErrCustomerHasOrders
		}
	}
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = slices.Delete(s.customers, i, i+1)
			return nil
		}
	}
	return orderrors.ErrCustomerNotFound
}

// FindCustomerByID retrieves a customer by its ID.
func (s *inMemory) FindCustomerByID(_ context.Context, id int64) (Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			return s.customers[i], nil
		}
	}
	return Customer{}, orderrors.ErrCustomerNotFound
}

// FindAllCustomers returns all customers in insertion order.
func (s *inMemory) FindAllCustomers(_ context.Context) ([]Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.customers), nil
}

// CreateOrder adds a new order, assigning the next free ID and number.
func (s *inMemory) CreateOrder(_ context.Context, params OrderParams) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.customerExists(params.CustomerID) {
		return Order{}, orderrors.ErrCustomerNotFound
	}

	order := Order{
		ID:          s.takeOrderID(),
		Number:      generateOrderNumber(),
		CustomerID:  params.CustomerID,
		Products:    slices.Clone(params.Products),
		OrderDate:   params.OrderDate,
		Status:      params.Status,
		TotalAmount: params.TotalAmount,
	}
	s.orders = append(s.orders, order)
	return cloneOrder(order), nil
}

// UpdateOrder replaces the order record matching its ID.
func (s *inMemory) UpdateOrder(_ context.Context, order Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			order.Products = slices.Clone(order.Products)
			s.orders[i] = order
			return nil
		}
	}
	return orderrors.ErrOrderNotFound
}

// DeleteOrder removes an order by ID unconditionally.
func (s *inMemory) DeleteOrder(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = slices.Delete(s.orders, i, i+1)
			return nil
		}
	}
	return orderrors.ErrOrderNotFound
}

// FindOrderByID retrieves an order by its ID.
func (s *inMemory) FindOrderByID(_ context.Context, id int64) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			return cloneOrder(s.orders[i]), nil
		}
	}
	return Order{}, orderrors.ErrOrderNotFound
}

// FindAllOrders returns all orders in insertion order.
func (s *inMemory) FindAllOrders(_ context.Context) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneOrders(s.orders), nil
}

// FindOrdersByCustomerID returns all orders of one customer in insertion order.
func (s *inMemory) FindOrdersByCustomerID(_ context.Context, customerID int64) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Order, 0)
	for i := range s.orders {
		if s.orders[i].CustomerID == customerID {
			list = append(list, cloneOrder(s.orders[i]))
		}
	}
	return list, nil
}

// Reset discards both collections. ID counters are kept so ids are never
// reused within the process lifetime.
func (s *inMemory) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = nil
	s.orders = nil
	return nil
}

// takeCustomerID returns the next customer ID: one past the highest ID in
// the collection, never below the monotonic counter (no reuse after delete).
func (s *inMemory) takeCustomerID() int64 {
	id := s.nextCustomerID
	for i := range s.customers {
		if s.customers[i].ID >= id {
			id = s.customers[i].ID + 1
		}
	}
	s.nextCustomerID = id + 1
	return id
}

// takeOrderID returns the next order ID, same rules as takeCustomerID.
func (s *inMemory) takeOrderID() int64 {
	id := s.nextOrderID
	for i := range s.orders {
		if s.orders[i].ID >= id {
			id = s.orders[i].ID + 1
		}
	}
	s.nextOrderID = id + 1
	return id
}

// customerExists must be called with the lock held.
func (s *inMemory) customerExists(id int64) bool {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return true
		}
	}
	return false
}

// generateOrderNumber produces a number in the form ORD-#####.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%d", 10000+rand.IntN(90000))
}

func cloneOrder(o Order) Order {
	o.Products = slices.Clone(o.Products)
	return o
}

func cloneOrders(orders []Order) []Order {
	list := make([]Order, len(orders))
	for i := range orders {
		list[i] = cloneOrder(orders[i])
	}
	return list
}
