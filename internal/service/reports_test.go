package service

import (
	"context"
	"testing"
	"time"

	"github.com/odmng/orderdesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportFixture wires the report engine to a real in-memory store.
type reportFixture struct {
	svc   *Service
	store store.Store
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	s := store.NewInMemoryStore()
	return &reportFixture{svc: NewService(s), store: s}
}

func (f *reportFixture) addCustomer(t *testing.T, name string) store.Customer {
	t.Helper()
	customer, err := f.store.CreateCustomer(context.Background(), store.CustomerParams{
		Name:  name,
		Email: name + "@example.com",
		Phone: "555-0000",
	})
	require.NoError(t, err)
	return customer
}

func (f *reportFixture) addOrder(t *testing.T, customerID int64, date time.Time, status store.OrderStatus, total int64) store.Order {
	t.Helper()
	order, err := f.store.CreateOrder(context.Background(), store.OrderParams{
		CustomerID:  customerID,
		Products:    []store.OrderProduct{{ID: 1, Name: "Laptop", Price: total, Quantity: 1}},
		OrderDate:   date,
		Status:      status,
		TotalAmount: total,
	})
	require.NoError(t, err)
	return order
}

func Test_RecentOrders_Window(t *testing.T) {
	f := newReportFixture(t)
	customer := f.addCustomer(t, "Buyer")
	now := time.Now()

	today := f.addOrder(t, customer.ID, now, store.StatusPending, 100)
	threeDays := f.addOrder(t, customer.ID, now.AddDate(0, 0, -3), store.StatusPending, 100)
	f.addOrder(t, customer.ID, now.AddDate(0, 0, -8), store.StatusPending, 100)

	recent, err := f.svc.RecentOrders(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// Newest first.
	assert.Equal(t, today.ID, recent[0].ID)
	assert.Equal(t, threeDays.ID, recent[1].ID)
}

func Test_RecentOrders_BoundaryInclusive(t *testing.T) {
	f := newReportFixture(t)
	customer := f.addCustomer(t, "Buyer")

	// Just inside the boundary: seven calendar days back plus a minute.
	onCutoff := f.addOrder(t, customer.ID, time.Now().AddDate(0, 0, -7).Add(time.Minute), store.StatusPending, 100)

	recent, err := f.svc.RecentOrders(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, onCutoff.ID, recent[0].ID)
}

func Test_RecentOrders_ZeroDays(t *testing.T) {
	f := newReportFixture(t)
	customer := f.addCustomer(t, "Buyer")

	f.addOrder(t, customer.ID, time.Now().Add(-time.Hour), store.StatusPending, 100)
	future := f.addOrder(t, customer.ID, time.Now().Add(time.Hour), store.StatusPending, 100)

	recent, err := f.svc.RecentOrders(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, future.ID, recent[0].ID)
}

func Test_RecentOrders_EmptyStore(t *testing.T) {
	f := newReportFixture(t)

	recent, err := f.svc.RecentOrders(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func Test_OrdersPerCustomer_SortedByCountDescending(t *testing.T) {
	f := newReportFixture(t)
	a := f.addCustomer(t, "Alice Brown")
	b := f.addCustomer(t, "Bob Johnson")
	now := time.Now()

	// One order for B first so A must overtake it by count.
	f.addOrder(t, b.ID, now, store.StatusPending, 100)
	for i := 0; i < 3; i++ {
		f.addOrder(t, a.ID, now.AddDate(0, 0, -i), store.StatusPending, 100)
	}
	// Outside the window, must not count.
	f.addOrder(t, a.ID, now.AddDate(0, 0, -9), store.StatusPending, 100)

	counts, err := f.svc.OrdersPerCustomer(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, CustomerOrderCount{CustomerID: a.ID, CustomerName: "Alice Brown", OrderCount: 3}, counts[0])
	assert.Equal(t, CustomerOrderCount{CustomerID: b.ID, CustomerName: "Bob Johnson", OrderCount: 1}, counts[1])
}

func Test_OrdersPerCustomer_UnknownCustomerFallback(t *testing.T) {
	// A store whose orders reference a customer it cannot resolve.
	mock := &mockStore{
		orders: []store.Order{
			{ID: 1, CustomerID: 99, OrderDate: time.Now(), Status: store.StatusPending},
		},
	}
	svc := NewService(&customerlessStore{mockStore: mock})

	counts, err := svc.OrdersPerCustomer(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "Unknown Customer", counts[0].CustomerName)
}

// customerlessStore serves orders but fails every customer lookup.
type customerlessStore struct {
	*mockStore
}

func (s *customerlessStore) FindCustomerByID(_ context.Context, _ int64) (store.Customer, error) {
	return store.Customer{}, assert.AnError
}

func Test_StatusDistribution_ZeroFilled(t *testing.T) {
	f := newReportFixture(t)
	customer := f.addCustomer(t, "Buyer")
	now := time.Now()

	f.addOrder(t, customer.ID, now, store.StatusPending, 100)
	f.addOrder(t, customer.ID, now, store.StatusPending, 100)
	f.addOrder(t, customer.ID, now, store.StatusCompleted, 100)

	distribution, err := f.svc.StatusDistribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []StatusCount{
		{Status: "processing", Count: 0},
		{Status: "pending", Count: 2},
		{Status: "completed", Count: 1},
		{Status: "cancelled", Count: 0},
	}, distribution)
}

func Test_Stats(t *testing.T) {
	f := newReportFixture(t)
	a := f.addCustomer(t, "Alice Brown")
	f.addCustomer(t, "Bob Johnson")
	now := time.Now()

	f.addOrder(t, a.ID, now, store.StatusPending, 30000)
	f.addOrder(t, a.ID, now.AddDate(0, 0, -9), store.StatusCompleted, 10000)

	stats, err := f.svc.Stats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &StatsDto{
		TotalCustomers: 2,
		TotalOrders:    2,
		RecentOrders:   1,
		TotalRevenue:   40000,
		AvgOrderValue:  20000,
	}, stats)
}

func Test_Stats_EmptyStore(t *testing.T) {
	f := newReportFixture(t)

	stats, err := f.svc.Stats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &StatsDto{}, stats)
}
