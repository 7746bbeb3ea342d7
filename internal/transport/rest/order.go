package rest

import (
	"encoding/json"
	"net/http"

	"github.com/odmng/orderdesk/internal/service"
	"github.com/odmng/orderdesk/pkg/web"
)

// FindAllOrders returns all orders.
func (h *Handler) FindAllOrders(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	list, err := h.service.FindAllOrders(r.Context())
	if mapDomainError(w, mLogger, err) {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindOrderByID retrieves an order by its ID.
func (h *Handler) FindOrderByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.service.FindOrderByID(r.Context(), id)
	if mapDomainError(w, mLogger, err) {
		mLogger.WarnContext(r.Context(), "Order lookup failed", "ID", id, "error", err)
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// CreateOrder handles the creation of a new order.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	var dto service.OrderCreateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.checkStruct(w, r, mLogger, dto) {
		return
	}

	created, err := h.service.CreateOrder(r.Context(), dto)
	if mapDomainError(w, mLogger, err) {
		mLogger.WarnContext(r.Context(), "Order creation failed", "error", err)
		return
	}
	mLogger.InfoContext(r.Context(), "Order created successfully", "ID", created.ID, "number", created.Number)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// UpdateOrder replaces an existing order record.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	var dto service.OrderUpdateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	dto.ID = id
	if !h.checkStruct(w, r, mLogger, dto) {
		return
	}

	updated, err := h.service.UpdateOrder(r.Context(), dto)
	if mapDomainError(w, mLogger, err) {
		mLogger.WarnContext(r.Context(), "Order update failed", "ID", id, "error", err)
		return
	}
	mLogger.InfoContext(r.Context(), "Order updated successfully", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteOrder removes an order unconditionally.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	err := h.service.DeleteOrder(r.Context(), id)
	if mapDomainError(w, mLogger, err) {
		mLogger.WarnContext(r.Context(), "Order delete failed", "ID", id, "error", err)
		return
	}
	mLogger.InfoContext(r.Context(), "Order deleted successfully", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusNoContent, nil)
}
