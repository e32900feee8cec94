package service

import (
	"context"
	"errors"
	"log/slog"

	"burger-api/internal/models"
	"burger-api/internal/repository"
)

var (
	ErrMultiplierRange = errors.New("offer multiplier must be between 0 and 1")
)

// CatalogService serves catalog reads with resolved children and the
// dedicated membership and promotion mutations. Adding a member requires
// the referenced children to exist; removal is unconditional.
type CatalogService struct {
	catalog repository.Catalog
	log     *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog repository.Catalog, log *slog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, log: log}
}

// ListProducts returns all products.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.catalog.Products(ctx)
}

// GetProduct returns one product.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.catalog.Product(ctx, id)
}

// ListCategories returns all categories with their products resolved.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.CategoryWithProducts, error) {
	return s.catalog.CategoriesWithProducts(ctx)
}

// GetCategory returns one category with its products resolved.
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*models.CategoryWithProducts, error) {
	return s.catalog.CategoryWithProducts(ctx, id)
}

// ListMenus returns all menus with categories and their products resolved.
func (s *CatalogService) ListMenus(ctx context.Context) ([]models.MenuWithCategories, error) {
	return s.catalog.MenusWithCategories(ctx)
}

// GetMenu returns one menu with categories and their products resolved.
func (s *CatalogService) GetMenu(ctx context.Context, id string) (*models.MenuWithCategories, error) {
	return s.catalog.MenuWithCategories(ctx, id)
}

// AddProductsToCategory adds products to a category's member set after
// verifying every referenced product exists.
func (s *CatalogService) AddProductsToCategory(ctx context.Context, categoryID string, productIDs []string) error {
	ok, err := s.catalog.ProductsExist(ctx, productIDs)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidReference
	}

	matched, err := s.catalog.AddProductsToCategory(ctx, categoryID, productIDs)
	if err != nil {
		return err
	}
	if matched == 0 {
		return repository.ErrNotFound
	}
	s.log.Info("products added to category", "category_id", categoryID, "count", len(productIDs))
	return nil
}

// RemoveProductFromCategory removes a product from a category's member set.
// The product itself is not required to exist.
func (s *CatalogService) RemoveProductFromCategory(ctx context.Context, categoryID, productID string) error {
	matched, err := s.catalog.RemoveProductFromCategory(ctx, categoryID, productID)
	if err != nil {
		return err
	}
	if matched == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddCategoriesToMenu adds categories to a menu's declared set after
// verifying every referenced category exists.
func (s *CatalogService) AddCategoriesToMenu(ctx context.Context, menuID string, categoryIDs []string) error {
	ok, err := s.catalog.CategoriesExist(ctx, categoryIDs)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidReference
	}

	matched, err := s.catalog.AddCategoriesToMenu(ctx, menuID, categoryIDs)
	if err != nil {
		return err
	}
	if matched == 0 {
		return repository.ErrNotFound
	}
	s.log.Info("categories added to menu", "menu_id", menuID, "count", len(categoryIDs))
	return nil
}

// RemoveCategoryFromMenu removes a category from a menu's declared set.
func (s *CatalogService) RemoveCategoryFromMenu(ctx context.Context, menuID, categoryID string) error {
	matched, err := s.catalog.RemoveCategoryFromMenu(ctx, menuID, categoryID)
	if err != nil {
		return err
	}
	if matched == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetProductOffer applies a promotional multiplier to a product.
func (s *CatalogService) SetProductOffer(ctx context.Context, id string, multiplier float64) error {
	if multiplier < 0 || multiplier > 1 {
		return ErrMultiplierRange
	}
	matched, err := s.catalog.SetProductOffer(ctx, id, multiplier)
	if err != nil {
		return err
	}
	if matched == 0 {
		return repository.ErrNotFound
	}
	s.log.Info("product offer set", "product_id", id, "multiplier", multiplier)
	return nil
}

// SetMenuOffer applies a promotional multiplier to a menu.
func (s *CatalogService) SetMenuOffer(ctx context.Context, id string, multiplier float64) error {
	if multiplier < 0 || multiplier > 1 {
		return ErrMultiplierRange
	}
	matched, err := s.catalog.SetMenuOffer(ctx, id, multiplier)
	if err != nil {
		return err
	}
	if matched == 0 {
		return repository.ErrNotFound
	}
	s.log.Info("menu offer set", "menu_id", id, "multiplier", multiplier)
	return nil
}
