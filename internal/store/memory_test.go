package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	orderrors "github.com/odmng/orderdesk/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberRe = regexp.MustCompile(`^ORD-\d{5}$`)

func newTestCustomer(t *testing.T, s Store, name string) Customer {
	t.Helper()
	customer, err := s.CreateCustomer(context.Background(), CustomerParams{
		Name:  name,
		Email: name + "@example.com",
		Phone: "555-0000",
	})
	require.NoError(t, err)
	return customer
}

func newTestOrder(t *testing.T, s Store, customerID int64, date time.Time) Order {
	t.Helper()
	order, err := s.CreateOrder(context.Background(), OrderParams{
		CustomerID: customerID,
		Products: []OrderProduct{
			{ID: 1, Name: "Laptop", Price: 120000, Quantity: 1},
		},
		OrderDate:   date,
		Status:      StatusPending,
		TotalAmount: 120000,
	})
	require.NoError(t, err)
	return order
}

func Test_CreateCustomer_AssignsSequentialIDs(t *testing.T) {
	s := NewInMemoryStore()

	first := newTestCustomer(t, s, "First")
	assert.Equal(t, int64(1), first.ID)

	second := newTestCustomer(t, s, "Second")
	assert.Equal(t, int64(2), second.ID)
}

func Test_CreateCustomer_UsesMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	a := newTestCustomer(t, s, "A")
	b := newTestCustomer(t, s, "B")
	c := newTestCustomer(t, s, "C")
	require.Equal(t, []int64{1, 2, 3}, []int64{a.ID, b.ID, c.ID})

	// Delete the middle record so existing IDs are {1, 3}.
	require.NoError(t, s.DeleteCustomer(ctx, b.ID))

	d := newTestCustomer(t, s, "D")
	assert.Equal(t, int64(4), d.ID, "gaps must not be reused")
}

func Test_CreateCustomer_NoIDReuseAfterDeletingNewest(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	a := newTestCustomer(t, s, "A")
	b := newTestCustomer(t, s, "B")
	require.Equal(t, int64(2), b.ID)

	// Deleting the record with the highest ID must not free its ID.
	require.NoError(t, s.DeleteCustomer(ctx, b.ID))
	c := newTestCustomer(t, s, "C")
	assert.Equal(t, int64(3), c.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func Test_UpdateCustomer(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	customer := newTestCustomer(t, s, "Before")

	customer.Name = "After"
	require.NoError(t, s.UpdateCustomer(ctx, customer))

	found, err := s.FindCustomerByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", found.Name)
}

func Test_UpdateCustomer_NotFound(t *testing.T) {
	s := NewInMemoryStore()
	err := s.UpdateCustomer(context.Background(), Customer{ID: 42, Name: "Ghost"})
	assert.ErrorIs(t, err, orderrors.ErrCustomerNotFound)
}

func Test_DeleteCustomer_BlockedWhileOrdersReferenceIt(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	customer := newTestCustomer(t, s, "Referenced")
	other := newTestCustomer(t, s, "Other")
	newTestOrder(t, s, customer.ID, time.Now())

	err := s.DeleteCustomer(ctx, customer.ID)
	assert.ErrorIs(t, err, orderrors.ErrCustomerHasOrders)

	// Both collections unchanged.
	customers, err := s.FindAllCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)
	orders, err := s.FindAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	// An unreferenced customer can still be deleted.
	require.NoError(t, s.DeleteCustomer(ctx, other.ID))
	customers, err = s.FindAllCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, customer.ID, customers[0].ID)
	orders, err = s.FindAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func Test_CreateOrder_RequiresExistingCustomer(t *testing.T) {
	s := NewInMemoryStore()
	_, err := s.CreateOrder(context.Background(), OrderParams{
		CustomerID:  99,
		Products:    []OrderProduct{{ID: 1, Name: "Laptop", Price: 120000, Quantity: 1}},
		OrderDate:   time.Now(),
		Status:      StatusPending,
		TotalAmount: 120000,
	})
	assert.ErrorIs(t, err, orderrors.ErrCustomerNotFound)
}

func Test_CreateOrder_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	customer := newTestCustomer(t, s, "Buyer")

	order := newTestOrder(t, s, customer.ID, time.Now())
	assert.Equal(t, int64(1), order.ID)
	assert.Regexp(t, orderNumberRe, order.Number)

	orders, err := s.FindOrdersByCustomerID(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Equal(t, order.Number, orders[0].Number)
}

func Test_CreateOrder_TrustsCallerTotal(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	customer := newTestCustomer(t, s, "Buyer")

	// Total deliberately disagrees with the line items.
	order, err := s.CreateOrder(ctx, OrderParams{
		CustomerID:  customer.ID,
		Products:    []OrderProduct{{ID: 1, Name: "Laptop", Price: 120000, Quantity: 2}},
		OrderDate:   time.Now(),
		Status:      StatusCompleted,
		TotalAmount: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.TotalAmount)

	found, err := s.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.TotalAmount)
}

func Test_UpdateOrder_NotFound(t *testing.T) {
	s := NewInMemoryStore()
	err := s.UpdateOrder(context.Background(), Order{ID: 7})
	assert.ErrorIs(t, err, orderrors.ErrOrderNotFound)
}

func Test_DeleteOrder_Unconditional(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	customer := newTestCustomer(t, s, "Buyer")
	order := newTestOrder(t, s, customer.ID, time.Now())

	require.NoError(t, s.DeleteOrder(ctx, order.ID))
	_, err := s.FindOrderByID(ctx, order.ID)
	assert.ErrorIs(t, err, orderrors.ErrOrderNotFound)

	assert.ErrorIs(t, s.DeleteOrder(ctx, order.ID), orderrors.ErrOrderNotFound)
}

func Test_FindOrdersByCustomerID_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	customer := newTestCustomer(t, s, "Buyer")
	other := newTestCustomer(t, s, "Other")

	first := newTestOrder(t, s, customer.ID, time.Now().AddDate(0, 0, -2))
	newTestOrder(t, s, other.ID, time.Now())
	second := newTestOrder(t, s, customer.ID, time.Now())

	orders, err := s.FindOrdersByCustomerID(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
}

func Test_Seed_LoadsMockData(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	require.NoError(t, s.Seed(ctx))

	customers, err := s.FindAllCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 4)

	orders, err := s.FindAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 10)
	for _, order := range orders {
		assert.Regexp(t, orderNumberRe, order.Number)
		assert.True(t, ValidStatus(order.Status))
		require.NotEmpty(t, order.Products)
		var total int64
		for _, p := range order.Products {
			total += p.Price * int64(p.Quantity)
		}
		assert.Equal(t, total, order.TotalAmount)
	}

	// IDs continue past the seeded records.
	created := newTestCustomer(t, s, "New")
	assert.Equal(t, int64(5), created.ID)
}

func Test_Reset_DiscardsCollectionsButKeepsCounters(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	require.NoError(t, s.Seed(ctx))
	require.NoError(t, s.Reset(ctx))

	customers, err := s.FindAllCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)
	orders, err := s.FindAllOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	// Counters survive the reset, so IDs stay monotonic for the session.
	created := newTestCustomer(t, s, "PostReset")
	assert.Equal(t, int64(5), created.ID)
}
