package rest

import (
	"encoding/json"
	"net/http"

	"github.com/odmng/orderdesk/internal/service"
	"github.com/odmng/orderdesk/pkg/web"
)

// FindAllCustomers returns all customers.
func (h *Handler) FindAllCustomers(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	list, err := h.service.FindAllCustomers(r.Context())
	if mapDomainError(w, mLogger, err) {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindCustomerByID retrieves a customer by its ID.
func (h *Handler) FindCustomerByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.service.FindCustomerByID(r.Context(), id)
	if mapDomainError(w, mLogger, err) {
		mLogger.WarnContext(r.Context(), "Customer lookup failed", "ID", id, "error", err)
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// CreateCustomer handles the creation of a new customer.
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	var dto service.CustomerCreateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.checkStruct(w, r, mLogger, dto) {
		return
	}

	created, err := h.service.CreateCustomer(r.Context(), dto)
	if mapDomainError(w, mLogger, err) {
		mLogger.ErrorContext(r.Context(), "Error creating customer", "error", err)
		return
	}
	mLogger.InfoContext(r.Context(), "Customer created successfully", "ID", created.ID)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// UpdateCustomer replaces an existing customer record.
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	var dto service.CustomerUpdateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	dto.ID = id
	if !h.checkStruct(w, r, mLogger, dto) {
		return
	}

	updated, err := h.service.UpdateCustomer(r.Context(), dto)
	if mapDomainError(w, mLogger, err) {
		mLogger.WarnContext(r.Context(), "Customer update failed", "ID", id, "error", err)
		return
	}
	mLogger.InfoContext(r.Context(), "Customer updated successfully", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteCustomer removes a customer unless orders still reference it.
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	err := h.service.DeleteCustomer(r.Context(), id)
	if mapDomainError(w, mLogger, err) {
		mLogger.WarnContext(r.Context(), "Customer delete refused", "ID", id, "error", err)
		return
	}
	mLogger.InfoContext(r.Context(), "Customer deleted successfully", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusNoContent, nil)
}

// FindOrdersByCustomerID returns the orders of one customer.
func (h *Handler) FindOrdersByCustomerID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	list, err := h.service.FindOrdersByCustomerID(r.Context(), id)
	if mapDomainError(w, mLogger, err) {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}
