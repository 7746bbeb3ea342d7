// Package service provides the implementation of order-desk business logic.
package service

import (
	"context"
	"fmt"
	"time"

	orderrors "github.com/odmng/orderdesk/internal/errors"
	"github.com/odmng/orderdesk/internal/store"
)

// DeskService defines the methods for managing customers and orders.
// It abstracts the underlying business logic and data access.
type DeskService interface {
	// FindAllCustomers returns all customers in insertion order.
	FindAllCustomers(ctx context.Context) ([]CustomerDto, error)

	// FindCustomerByID retrieves a single customer by its identifier.
	// Returns ErrCustomerNotFound if no customer exists with the given ID.
	FindCustomerByID(ctx context.Context, id int64) (*CustomerDto, error)

	// CreateCustomer adds a new customer to the system.
	CreateCustomer(ctx context.Context, customer CustomerCreateDto) (*CustomerDto, error)

	// UpdateCustomer replaces an existing customer record.
	// Returns ErrCustomerNotFound if no customer exists with the given ID.
	UpdateCustomer(ctx context.Context, customer CustomerUpdateDto) (*CustomerDto, error)

	// DeleteCustomer removes a customer.
	// Returns ErrCustomerHasOrders when orders still reference it.
	DeleteCustomer(ctx context.Context, id int64) error

	// FindAllOrders returns all orders in insertion order.
	FindAllOrders(ctx context.Context) ([]OrderDto, error)

	// FindOrderByID retrieves a single order by its identifier.
	// Returns ErrOrderNotFound if no order exists with the given ID.
	FindOrderByID(ctx context.Context, id int64) (*OrderDto, error)

	// FindOrdersByCustomerID returns all orders of one customer.
	FindOrdersByCustomerID(ctx context.Context, customerID int64) ([]OrderDto, error)

	// CreateOrder adds a new order to the system.
	// Returns ErrCustomerNotFound when the referenced customer is absent.
	CreateOrder(ctx context.Context, order OrderCreateDto) (*OrderDto, error)

	// UpdateOrder replaces an existing order record.
	// Returns ErrOrderNotFound if no order exists with the given ID.
	UpdateOrder(ctx context.Context, order OrderUpdateDto) (*OrderDto, error)

	// DeleteOrder removes an order unconditionally.
	DeleteOrder(ctx context.Context, id int64) error

	ReportService
}

// Service implements DeskService on top of the entity store.
type Service struct {
	store store.Store
}

// NewService creates a new Service with the provided store.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// CustomerDto represents the data transfer object for a customer.
type CustomerDto struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerCreateDto represents the data transfer object for creating a customer.
// Validation mirrors the customer form rules.
type CustomerCreateDto struct {
	Name  string `json:"name"  validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=5"`
}

// CustomerUpdateDto represents the data transfer object for updating a customer.
type CustomerUpdateDto struct {
	ID    int64  `json:"id"    validate:"required,min=1"`
	Name  string `json:"name"  validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=5"`
}

// OrderDto represents the data transfer object for an order.
type OrderDto struct {
	ID          int64             `json:"id"`
	Number      string            `json:"order_number"`
	CustomerID  int64             `json:"customer_id"`
	Products    []OrderProductDto `json:"products"`
	OrderDate   string            `json:"order_date"`
	Status      string            `json:"status"`
	TotalAmount int64             `json:"total_amount"`
}

// OrderProductDto represents one order line item. Price is in cents.
type OrderProductDto struct {
	ID       int64  `json:"id"       validate:"required,min=1"`
	Name     string `json:"name"     validate:"required"`
	Price    int64  `json:"price"    validate:"required,min=1"`
	Quantity int32  `json:"quantity" validate:"required,min=1"`
}

// OrderCreateDto represents the data transfer object for creating a new order.
// TotalAmount is trusted as supplied; the store never recomputes it from
// the line items.
type OrderCreateDto struct {
	CustomerID  int64             `json:"customer_id"  validate:"required,min=1"`
	Products    []OrderProductDto `json:"products"     validate:"required,gt=0,dive"`
	OrderDate   string            `json:"order_date"   validate:"required"`
	Status      string            `json:"status"       validate:"required,oneof=pending processing completed cancelled"`
	TotalAmount int64             `json:"total_amount" validate:"gte=0"`
}

// OrderUpdateDto represents the data transfer object for updating an existing order.
type OrderUpdateDto struct {
	ID          int64             `json:"id"           validate:"required,min=1"`
	CustomerID  int64             `json:"customer_id"  validate:"required,min=1"`
	Products    []OrderProductDto `json:"products"     validate:"required,gt=0,dive"`
	OrderDate   string            `json:"order_date"   validate:"required"`
	Status      string            `json:"status"       validate:"required,oneof=pending processing completed cancelled"`
	TotalAmount int64             `json:"total_amount" validate:"gte=0"`
}

// FindAllCustomers retrieves all customers and returns them as CustomerDtos.
func (s *Service) FindAllCustomers(ctx context.Context) ([]CustomerDto, error) {
	customers, err := s.store.FindAllCustomers(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]CustomerDto, len(customers))
	for i, c := range customers {
		dtos[i] = *toCustomerDto(c)
	}
	return dtos, nil
}

// FindCustomerByID retrieves a customer by its ID and returns it as a CustomerDto.
func (s *Service) FindCustomerByID(ctx context.Context, id int64) (*CustomerDto, error) {
	customer, err := s.store.FindCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerDto(customer), nil
}

// CreateCustomer creates a new customer and returns it as a CustomerDto.
func (s *Service) CreateCustomer(ctx context.Context, dto CustomerCreateDto) (*CustomerDto, error) {
	customer, err := s.store.CreateCustomer(ctx, store.CustomerParams{
		Name:  dto.Name,
		Email: dto.Email,
		Phone: dto.Phone,
	})
	if err != nil {
		return nil, err
	}
	return toCustomerDto(customer), nil
}

// UpdateCustomer replaces an existing customer record and returns the result.
func (s *Service) UpdateCustomer(ctx context.Context, dto CustomerUpdateDto) (*CustomerDto, error) {
	customer := store.Customer{
		ID:    dto.ID,
		Name:  dto.Name,
		Email: dto.Email,
		Phone: dto.Phone,
	}
	if err := s.store.UpdateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerDto(customer), nil
}

// DeleteCustomer removes a customer unless orders still reference it.
func (s *Service) DeleteCustomer(ctx context.Context, id int64) error {
	return s.store.DeleteCustomer(ctx, id)
}

// FindAllOrders retrieves all orders and returns them as OrderDtos.
func (s *Service) FindAllOrders(ctx context.Context) ([]OrderDto, error) {
	orders, err := s.store.FindAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderDtos(orders), nil
}

// FindOrderByID retrieves an order by its ID and returns it as an OrderDto.
func (s *Service) FindOrderByID(ctx context.Context, id int64) (*OrderDto, error) {
	order, err := s.store.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderDto(order), nil
}

// FindOrdersByCustomerID retrieves the orders of one customer.
func (s *Service) FindOrdersByCustomerID(ctx context.Context, customerID int64) ([]OrderDto, error) {
	orders, err := s.store.FindOrdersByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toOrderDtos(orders), nil
}

// CreateOrder creates a new order and returns it as an OrderDto.
func (s *Service) CreateOrder(ctx context.Context, dto OrderCreateDto) (*OrderDto, error) {
	orderDate, err := parseOrderDate(dto.OrderDate)
	if err != nil {
		return nil, err
	}
	order, err := s.store.CreateOrder(ctx, store.OrderParams{
		CustomerID:  dto.CustomerID,
		Products:    toProducts(dto.Products),
		OrderDate:   orderDate,
		Status:      store.OrderStatus(dto.Status),
		TotalAmount: dto.TotalAmount,
	})
	if err != nil {
		return nil, err
	}
	return toOrderDto(order), nil
}

// UpdateOrder replaces an existing order record and returns the result.
// The order number is kept from the stored record.
func (s *Service) UpdateOrder(ctx context.Context, dto OrderUpdateDto) (*OrderDto, error) {
	orderDate, err := parseOrderDate(dto.OrderDate)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.FindOrderByID(ctx, dto.ID)
	if err != nil {
		return nil, err
	}
	order := store.Order{
		ID:          dto.ID,
		Number:      existing.Number,
		CustomerID:  dto.CustomerID,
		Products:    toProducts(dto.Products),
		OrderDate:   orderDate,
		Status:      store.OrderStatus(dto.Status),
		TotalAmount: dto.TotalAmount,
	}
	if err := s.store.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	return toOrderDto(order), nil
}

// DeleteOrder removes an order unconditionally.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	return s.store.DeleteOrder(ctx, id)
}

// parseOrderDate parses the RFC 3339 order date from a DTO.
func parseOrderDate(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", orderrors.ErrInvalidOrderDate, value)
	}
	return t, nil
}

// toCustomerDto converts a store.Customer to a CustomerDto.
func toCustomerDto(c store.Customer) *CustomerDto {
	return &CustomerDto{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}

// toOrderDto converts a store.Order to an OrderDto.
func toOrderDto(o store.Order) *OrderDto {
	products := make([]OrderProductDto, len(o.Products))
	for i, p := range o.Products {
		products[i] = OrderProductDto{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		}
	}
	return &OrderDto{
		ID:          o.ID,
		Number:      o.Number,
		CustomerID:  o.CustomerID,
		Products:    products,
		OrderDate:   o.OrderDate.Format(time.RFC3339),
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
	}
}

func toOrderDtos(orders []store.Order) []OrderDto {
	dtos := make([]OrderDto, len(orders))
	for i, o := range orders {
		dtos[i] = *toOrderDto(o)
	}
	return dtos
}

// toProducts converts line item DTOs to store values.
func toProducts(dtos []OrderProductDto) []store.OrderProduct {
	products := make([]store.OrderProduct, len(dtos))
	for i, p := range dtos {
		products[i] = store.OrderProduct{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		}
	}
	return products
}
