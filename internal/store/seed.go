package store

import (
	"context"
	"math/rand/v2"
	"time"
)

// Mock data standing in for a real backend. Matches the fixture set the
// dashboard was designed around: four customers, a five-product catalog
// and ten orders spread over the last ten days.
var seedCustomers = []Customer{
	{ID: 1, Name: "John Doe", Email: "john@example.com", Phone: "555-1234"},
	{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Phone: "555-5678"},
	{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Phone: "555-9012"},
	{ID: 4, Name: "Alice Brown", Email: "alice@example.com", Phone: "555-3456"},
}

var seedCatalog = []OrderProduct{
	{ID: 1, Name: "Laptop", Price: 120000},
	{ID: 2, Name: "Smartphone", Price: 80000},
	{ID: 3, Name: "Headphones", Price: 15000},
	{ID: 4, Name: "Monitor", Price: 30000},
	{ID: 5, Name: "Keyboard", Price: 8000},
}

// seedOrderOwners maps each seeded order to its customer.
var seedOrderOwners = []int64{1, 1, 1, 2, 2, 3, 3, 3, 3, 4}

var seedStatuses = []OrderStatus{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}

// Seed replaces the store contents with the mock data set.
func (s *inMemory) Seed(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	customers := make([]Customer, len(seedCustomers))
	copy(customers, seedCustomers)

	orders := make([]Order, 0, len(seedOrderOwners))
	for i, customerID := range seedOrderOwners {
		orders = append(orders, randomSeedOrder(int64(i+1), customerID, now))
	}

	s.customers = customers
	s.orders = orders
	if next := int64(len(customers) + 1); s.nextCustomerID < next {
		s.nextCustomerID = next
	}
	if next := int64(len(orders) + 1); s.nextOrderID < next {
		s.nextOrderID = next
	}
	return nil
}

// randomSeedOrder builds an order with one to three random catalog line
// items, a random recent date and a random status. The total is derived
// from the line items, the only place totals are ever computed.
func randomSeedOrder(id, customerID int64, now time.Time) Order {
	numProducts := rand.IntN(3) + 1
	products := make([]OrderProduct, 0, numProducts)
	var total int64
	for i := 0; i < numProducts; i++ {
		p := seedCatalog[rand.IntN(len(seedCatalog))]
		p.Quantity = int32(rand.IntN(3) + 1)
		products = append(products, p)
		total += p.Price * int64(p.Quantity)
	}

	return Order{
		ID:          id,
		Number:      generateOrderNumber(),
		CustomerID:  customerID,
		Products:    products,
		OrderDate:   now.AddDate(0, 0, -rand.IntN(10)),
		Status:      seedStatuses[rand.IntN(len(seedStatuses))],
		TotalAmount: total,
	}
}
