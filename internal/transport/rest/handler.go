// Package rest provides the HTTP handlers for the order-desk API.
package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/odmng/orderdesk/internal/auth"
	orderrors "github.com/odmng/orderdesk/internal/errors"
	"github.com/odmng/orderdesk/internal/service"
	"github.com/odmng/orderdesk/pkg/web"
)

type sessionKey struct{}

type Handler struct {
	service  service.DeskService
	sessions auth.SessionService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new Handler with the provided services.
func NewHandler(svc service.DeskService, sessions auth.SessionService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  svc,
		sessions: sessions,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the order-desk API.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.SessionMiddleware)

			r.Post("/auth/logout", h.Logout)
			r.Get("/auth/me", h.Me)

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", h.FindAllCustomers)
				r.Post("/", h.CreateCustomer)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.FindCustomerByID)
					r.Put("/", h.UpdateCustomer)
					r.Delete("/", h.DeleteCustomer)
					r.Get("/orders", h.FindOrdersByCustomerID)
				})
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.FindAllOrders)
				r.Post("/", h.CreateOrder)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.FindOrderByID)
					r.Put("/", h.UpdateOrder)
					r.Delete("/", h.DeleteOrder)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/recent-orders", h.RecentOrders)
				r.Get("/orders-per-customer", h.OrdersPerCustomer)
				r.Get("/status-distribution", h.StatusDistribution)
				r.Get("/stats", h.Stats)
			})
		})
	})
	r.Get("/healthz", h.HealthCheck)
}

// SessionMiddleware verifies the bearer token and attaches the session to
// the request context. Requests without a live session get 401.
func (h *Handler) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mLogger := h.loggerWithReqID(r)
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			web.RespondError(w, mLogger, http.StatusUnauthorized, "Authorization header is required")
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			web.RespondError(w, mLogger, http.StatusUnauthorized, "Bearer token is required")
			return
		}

		session, err := h.sessions.SessionByToken(r.Context(), token)
		if err != nil {
			web.RespondError(w, mLogger, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom retrieves the authenticated session from the context.
func sessionFrom(ctx context.Context) (*auth.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*auth.Session)
	return session, ok
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// checkStruct validates a request DTO and writes the error response on
// failure. Returns true when the DTO is valid.
func (h *Handler) checkStruct(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, dto any) bool {
	err := h.validate.Struct(dto)
	if err == nil {
		return true
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errorResponse := make(map[string]string)
		for _, fieldErr := range validationErrors {
			errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
		}
		mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
		web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
		return false
	}
	mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
	web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
	return false
}

// mapDomainError translates domain sentinel errors to HTTP responses.
// Returns true when the error was handled.
func mapDomainError(w http.ResponseWriter, mLogger *slog.Logger, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, orderrors.ErrCustomerNotFound):
		web.RespondError(w, mLogger, http.StatusNotFound, err.Error())
	case errors.Is(err, orderrors.ErrOrderNotFound):
		web.RespondError(w, mLogger, http.StatusNotFound, err.Error())
	case errors.Is(err, orderrors.ErrCustomerHasOrders):
		web.RespondError(w, mLogger, http.StatusConflict, err.Error())
	case errors.Is(err, orderrors.ErrInvalidOrderDate):
		web.RespondError(w, mLogger, http.StatusBadRequest, err.Error())
	default:
		web.RespondError(w, mLogger, http.StatusInternalServerError, "An unexpected error occurred")
	}
	return true
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
