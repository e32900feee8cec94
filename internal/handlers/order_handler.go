package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"burger-api/internal/models"
	"burger-api/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if err := validateOrderShape(req); err != nil {
		h.log.Warn("malformed order request", "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	id, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]string{"id": id}, h.log)
}

// writeOrderError maps the business taxonomy onto status codes. Anything
// outside the taxonomy is an infrastructure fault and must surface as a 500,
// never as a client error.
func (h *OrderHandler) writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyOrder):
		WriteError(w, http.StatusBadRequest, "Order must contain at least one product or menu", h.log)
	case errors.Is(err, service.ErrInvalidReference):
		WriteError(w, http.StatusNotFound, "Invalid product or menu id", h.log)
	case errors.Is(err, service.ErrCategoryMismatch):
		WriteError(w, http.StatusNotFound, "Invalid or missing category for this menu", h.log)
	case errors.Is(err, service.ErrProductNotInCategory):
		WriteError(w, http.StatusNotFound, "Invalid product for this category", h.log)
	default:
		h.log.Error("failed to create order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}

// validateOrderShape checks the request's structural shape: every reference
// slot must carry an id. Reference validity is the pipeline's job, not ours.
func validateOrderShape(req models.OrderRequest) error {
	for _, id := range req.Products {
		if id == "" {
			return errors.New("product id must not be empty")
		}
	}
	for _, selection := range req.Menus {
		if selection.Menu == "" {
			return errors.New("menu id must not be empty")
		}
		for _, item := range selection.Products {
			if item.Category == "" || item.Product == "" {
				return errors.New("menu selection entries require category and product ids")
			}
		}
	}
	return nil
}

// GetOrder handles GET /api/orders/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderId")

	order, err := h.orderService.Order(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to get order", "order_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}

// ListPending handles GET /api/orders/pending
func (h *OrderHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListPending(r.Context())
	if err != nil {
		h.log.Error("failed to list pending orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, orders, h.log)
}

// ListCompleted handles GET /api/orders/completed
func (h *OrderHandler) ListCompleted(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListCompleted(r.Context())
	if err != nil {
		h.log.Error("failed to list completed orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, orders, h.log)
}

// CompleteOrder handles POST /api/orders/{orderId}/complete
func (h *OrderHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderId")

	if err := h.orderService.Complete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to complete order", "order_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/orders/{orderId}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderId")

	if err := h.orderService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to delete order", "order_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
