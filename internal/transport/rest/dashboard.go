package rest

import (
	"net/http"

	"github.com/odmng/orderdesk/pkg/web"
)

// defaultWindowDays is the dashboard window when no days parameter is given.
const defaultWindowDays = 7

// RecentOrders returns orders from the last N calendar days, newest first.
// An optional limit caps the result, e.g. the dashboard shows the top 5.
func (h *Handler) RecentOrders(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	days, ok := web.ParseValidateGte(r, w, mLogger, "days", 0, defaultWindowDays)
	if !ok {
		return
	}
	limit, ok := web.ParseValidateGt(r, w, mLogger, "limit", 0, 0)
	if !ok {
		return
	}

	list, err := h.service.RecentOrders(r.Context(), int(days))
	if mapDomainError(w, mLogger, err) {
		return
	}
	if limit > 0 && int(limit) < len(list) {
		list = list[:limit]
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// OrdersPerCustomer returns order counts per customer over the window.
func (h *Handler) OrdersPerCustomer(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	days, ok := web.ParseValidateGte(r, w, mLogger, "days", 0, defaultWindowDays)
	if !ok {
		return
	}

	counts, err := h.service.OrdersPerCustomer(r.Context(), int(days))
	if mapDomainError(w, mLogger, err) {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, counts)
}

// StatusDistribution returns the count of orders per status.
func (h *Handler) StatusDistribution(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	distribution, err := h.service.StatusDistribution(r.Context())
	if mapDomainError(w, mLogger, err) {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, distribution)
}

// Stats returns the dashboard stat cards.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	days, ok := web.ParseValidateGte(r, w, mLogger, "days", 0, defaultWindowDays)
	if !ok {
		return
	}

	stats, err := h.service.Stats(r.Context(), int(days))
	if mapDomainError(w, mLogger, err) {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, stats)
}
