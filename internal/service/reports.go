package service

import (
	"context"
	"sort"
	"time"

	"github.com/odmng/orderdesk/internal/store"
)

// unknownCustomerName is reported when an order references a customer the
// store no longer resolves.
const unknownCustomerName = "Unknown Customer"

// ReportService computes read-only projections over the entity store for
// the dashboard.
type ReportService interface {
	// RecentOrders returns orders dated within the last days calendar
	// days (inclusive boundary, time-of-day taken from now), newest first.
	RecentOrders(ctx context.Context, days int) ([]OrderDto, error)

	// OrdersPerCustomer groups RecentOrders by customer, descending by
	// order count. Ties keep first-encounter order.
	OrdersPerCustomer(ctx context.Context, days int) ([]CustomerOrderCount, error)

	// StatusDistribution counts all orders per status, zero-filled.
	StatusDistribution(ctx context.Context) ([]StatusCount, error)

	// Stats returns the dashboard headline numbers.
	Stats(ctx context.Context, days int) (*StatsDto, error)
}

// CustomerOrderCount is one bar of the orders-per-customer chart.
type CustomerOrderCount struct {
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	OrderCount   int    `json:"order_count"`
}

// StatusCount is one slice of the status distribution chart.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatsDto carries the dashboard stat cards. Amounts are in cents.
type StatsDto struct {
	TotalCustomers int   `json:"total_customers"`
	TotalOrders    int   `json:"total_orders"`
	RecentOrders   int   `json:"recent_orders"`
	TotalRevenue   int64 `json:"total_revenue"`
	AvgOrderValue  int64 `json:"avg_order_value"`
}

// statusChartOrder fixes the slice order of the distribution chart.
var statusChartOrder = []store.OrderStatus{
	store.StatusProcessing,
	store.StatusPending,
	store.StatusCompleted,
	store.StatusCancelled,
}

// RecentOrders filters orders to the last days calendar days, newest first.
func (s *Service) RecentOrders(ctx context.Context, days int) ([]OrderDto, error) {
	orders, err := s.recentOrders(ctx, days)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return toOrderDtos(orders), nil
}

// OrdersPerCustomer groups the recent-order window by customer.
func (s *Service) OrdersPerCustomer(ctx context.Context, days int) ([]CustomerOrderCount, error) {
	orders, err := s.recentOrders(ctx, days)
	if err != nil {
		return nil, err
	}

	counts := make([]CustomerOrderCount, 0)
	index := make(map[int64]int)
	for _, order := range orders {
		i, seen := index[order.CustomerID]
		if !seen {
			i = len(counts)
			index[order.CustomerID] = i
			counts = append(counts, CustomerOrderCount{
				CustomerID:   order.CustomerID,
				CustomerName: s.customerName(ctx, order.CustomerID),
			})
		}
		counts[i].OrderCount++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].OrderCount > counts[j].OrderCount
	})
	return counts, nil
}

// StatusDistribution counts all orders per status.
func (s *Service) StatusDistribution(ctx context.Context) ([]StatusCount, error) {
	orders, err := s.store.FindAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[store.OrderStatus]int, len(statusChartOrder))
	for _, order := range orders {
		byStatus[order.Status]++
	}

	distribution := make([]StatusCount, len(statusChartOrder))
	for i, status := range statusChartOrder {
		distribution[i] = StatusCount{Status: string(status), Count: byStatus[status]}
	}
	return distribution, nil
}

// Stats computes the dashboard stat cards over the whole store plus the
// recent-order window.
func (s *Service) Stats(ctx context.Context, days int) (*StatsDto, error) {
	customers, err := s.store.FindAllCustomers(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.store.FindAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.recentOrders(ctx, days)
	if err != nil {
		return nil, err
	}

	var revenue int64
	for _, order := range orders {
		revenue += order.TotalAmount
	}
	var avg int64
	if len(orders) > 0 {
		avg = revenue / int64(len(orders))
	}

	return &StatsDto{
		TotalCustomers: len(customers),
		TotalOrders:    len(orders),
		RecentOrders:   len(recent),
		TotalRevenue:   revenue,
		AvgOrderValue:  avg,
	}, nil
}

// recentOrders returns orders with orderDate >= now minus days calendar
// days. days = 0 admits only orders dated at or after the current instant.
func (s *Service) recentOrders(ctx context.Context, days int) ([]store.Order, error) {
	orders, err := s.store.FindAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	recent := make([]store.Order, 0, len(orders))
	for _, order := range orders {
		if !order.OrderDate.Before(cutoff) {
			recent = append(recent, order)
		}
	}
	return recent, nil
}

// customerName resolves a customer name, falling back when the record is
// gone. Deletion of referenced customers is blocked, so the fallback only
// covers data seeded or mutated outside the store's guard.
func (s *Service) customerName(ctx context.Context, id int64) string {
	customer, err := s.store.FindCustomerByID(ctx, id)
	if err != nil {
		return unknownCustomerName
	}
	return customer.Name
}
