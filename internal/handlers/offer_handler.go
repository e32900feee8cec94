package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"burger-api/internal/models"
	"burger-api/internal/repository"
	"burger-api/internal/service"
)

// OfferHandler applies promotional multipliers to products and menus.
type OfferHandler struct {
	catalogService *service.CatalogService
	log            *slog.Logger
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(catalogService *service.CatalogService, log *slog.Logger) *OfferHandler {
	return &OfferHandler{
		catalogService: catalogService,
		log:            log,
	}
}

// SetProductOffer handles PUT /api/products/{productId}/offer
func (h *OfferHandler) SetProductOffer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")

	multiplier, ok := h.decodeMultiplier(w, r)
	if !ok {
		return
	}
	h.writeOfferResult(w, h.catalogService.SetProductOffer(r.Context(), id, multiplier), "Product not found")
}

// SetMenuOffer handles PUT /api/menus/{menuId}/offer
func (h *OfferHandler) SetMenuOffer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "menuId")

	multiplier, ok := h.decodeMultiplier(w, r)
	if !ok {
		return
	}
	h.writeOfferResult(w, h.catalogService.SetMenuOffer(r.Context(), id, multiplier), "Menu not found")
}

func (h *OfferHandler) decodeMultiplier(w http.ResponseWriter, r *http.Request) (float64, bool) {
	var req models.OfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return 0, false
	}
	return req.Multiplier, true
}

func (h *OfferHandler) writeOfferResult(w http.ResponseWriter, err error, notFound string) {
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, service.ErrMultiplierRange):
		WriteError(w, http.StatusBadRequest, "Multiplier must be between 0 and 1", h.log)
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, http.StatusNotFound, notFound, h.log)
	default:
		h.log.Error("failed to set offer", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
