// Package errors provides domain error values for OrderDesk.
package errors

import "errors"

var ErrCustomerNotFound = errors.New("customer not found")
var ErrCustomerHasOrders = errors.New("cannot delete customer with existing orders")

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidOrderDate = errors.New("invalid order date")

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrSessionNotFound = errors.New("session not found")
