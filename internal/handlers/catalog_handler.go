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

// CatalogHandler handles catalog reads and the membership mutations.
type CatalogHandler struct {
	catalogService *service.CatalogService
	log            *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		log:            log,
	}
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		h.log.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, products, h.log)
}

// GetProduct handles GET /api/products/{productId}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, err, "Product not found", "product_id", id)
		return
	}
	WriteJSON(w, http.StatusOK, product, h.log)
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		h.log.Error("failed to list categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, categories, h.log)
}

// GetCategory handles GET /api/categories/{categoryId}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "categoryId")

	category, err := h.catalogService.GetCategory(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, err, "Category not found", "category_id", id)
		return
	}
	WriteJSON(w, http.StatusOK, category, h.log)
}

// ListMenus handles GET /api/menus
func (h *CatalogHandler) ListMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.catalogService.ListMenus(r.Context())
	if err != nil {
		h.log.Error("failed to list menus", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, menus, h.log)
}

// GetMenu handles GET /api/menus/{menuId}
func (h *CatalogHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "menuId")

	menu, err := h.catalogService.GetMenu(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, err, "Menu not found", "menu_id", id)
		return
	}
	WriteJSON(w, http.StatusOK, menu, h.log)
}

// AddProductsToCategory handles POST /api/categories/{categoryId}/products
func (h *CatalogHandler) AddProductsToCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "categoryId")

	var req models.AddProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Products) == 0 {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := h.catalogService.AddProductsToCategory(r.Context(), id, req.Products); err != nil {
		h.writeMembershipError(w, err, "Category not found", "Invalid product id")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveProductFromCategory handles DELETE /api/categories/{categoryId}/products/{productId}
func (h *CatalogHandler) RemoveProductFromCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	productID := chi.URLParam(r, "productId")

	if err := h.catalogService.RemoveProductFromCategory(r.Context(), categoryID, productID); err != nil {
		h.writeMembershipError(w, err, "Category not found", "Invalid product id")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddCategoriesToMenu handles POST /api/menus/{menuId}/categories
func (h *CatalogHandler) AddCategoriesToMenu(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "menuId")

	var req models.AddCategoriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Categories) == 0 {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := h.catalogService.AddCategoriesToMenu(r.Context(), id, req.Categories); err != nil {
		h.writeMembershipError(w, err, "Menu not found", "Invalid category id")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveCategoryFromMenu handles DELETE /api/menus/{menuId}/categories/{categoryId}
func (h *CatalogHandler) RemoveCategoryFromMenu(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menuId")
	categoryID := chi.URLParam(r, "categoryId")

	if err := h.catalogService.RemoveCategoryFromMenu(r.Context(), menuID, categoryID); err != nil {
		h.writeMembershipError(w, err, "Menu not found", "Invalid category id")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) writeLookupError(w http.ResponseWriter, err error, notFound, idKey, id string) {
	if errors.Is(err, repository.ErrNotFound) {
		WriteError(w, http.StatusNotFound, notFound, h.log)
		return
	}
	h.log.Error("catalog lookup failed", idKey, id, "error", err)
	WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
}

func (h *CatalogHandler) writeMembershipError(w http.ResponseWriter, err error, parentNotFound, badChild string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, http.StatusNotFound, parentNotFound, h.log)
	case errors.Is(err, service.ErrInvalidReference):
		WriteError(w, http.StatusNotFound, badChild, h.log)
	default:
		h.log.Error("membership update failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
