package repository

import (
	"context"
	"errors"

	"burger-api/internal/models"
)

var (
	// ErrNotFound is returned by point lookups when no document matches the id.
	ErrNotFound = errors.New("document not found")
)

// Catalog defines the interface to the document store holding products,
// categories, menus and orders.
//
// Existence checks are all-or-nothing: they report whether every id in the
// input resolves to a live document, with an empty input vacuously true.
// Any error other than ErrNotFound is an infrastructure fault and must not
// be interpreted as a business "invalid" result.
type Catalog interface {
	ProductsExist(ctx context.Context, ids []string) (bool, error)
	CategoriesExist(ctx context.Context, ids []string) (bool, error)
	MenusExist(ctx context.Context, ids []string) (bool, error)

	Product(ctx context.Context, id string) (*models.Product, error)
	Category(ctx context.Context, id string) (*models.Category, error)
	Menu(ctx context.Context, id string) (*models.Menu, error)

	Products(ctx context.Context) ([]models.Product, error)
	CategoryWithProducts(ctx context.Context, id string) (*models.CategoryWithProducts, error)
	CategoriesWithProducts(ctx context.Context) ([]models.CategoryWithProducts, error)
	MenuWithCategories(ctx context.Context, id string) (*models.MenuWithCategories, error)
	MenusWithCategories(ctx context.Context) ([]models.MenuWithCategories, error)

	InsertProduct(ctx context.Context, product models.Product) (string, error)
	InsertCategory(ctx context.Context, category models.Category) (string, error)
	InsertMenu(ctx context.Context, menu models.Menu) (string, error)

	AddProductsToCategory(ctx context.Context, categoryID string, productIDs []string) (int64, error)
	RemoveProductFromCategory(ctx context.Context, categoryID, productID string) (int64, error)
	AddCategoriesToMenu(ctx context.Context, menuID string, categoryIDs []string) (int64, error)
	RemoveCategoryFromMenu(ctx context.Context, menuID, categoryID string) (int64, error)

	SetProductOffer(ctx context.Context, id string, multiplier float64) (int64, error)
	SetMenuOffer(ctx context.Context, id string, multiplier float64) (int64, error)

	InsertOrder(ctx context.Context, order models.Order) (string, error)
	Order(ctx context.Context, id string) (*models.Order, error)
	OrdersByFulfilled(ctx context.Context, fulfilled bool) ([]models.OrderSummary, error)
	MarkOrderFulfilled(ctx context.Context, id string) (int64, error)
	DeleteOrder(ctx context.Context, id string) (int64, error)
}
