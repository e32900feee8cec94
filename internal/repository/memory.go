package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"burger-api/internal/models"
)

// MemoryCatalog implements Catalog with in-memory storage.
// It backs the test suite and the development mode of the server.
type MemoryCatalog struct {
	mu         sync.RWMutex
	products   map[string]models.Product
	categories map[string]models.Category
	menus      map[string]models.Menu
	orders     map[string]models.Order
}

// NewMemoryCatalog creates an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		products:   make(map[string]models.Product),
		categories: make(map[string]models.Category),
		menus:      make(map[string]models.Menu),
		orders:     make(map[string]models.Order),
	}
}

func (c *MemoryCatalog) ProductsExist(ctx context.Context, ids []string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range ids {
		if _, ok := c.products[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func (c *MemoryCatalog) CategoriesExist(ctx context.Context, ids []string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range ids {
		if _, ok := c.categories[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func (c *MemoryCatalog) MenusExist(ctx context.Context, ids []string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range ids {
		if _, ok := c.menus[id]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func (c *MemoryCatalog) Product(ctx context.Context, id string) (*models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	product, ok := c.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (c *MemoryCatalog) Category(ctx context.Context, id string) (*models.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	category, ok := c.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

func (c *MemoryCatalog) Menu(ctx context.Context, id string) (*models.Menu, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	menu, ok := c.menus[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &menu, nil
}

func (c *MemoryCatalog) Products(ctx context.Context) ([]models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	products := make([]models.Product, 0, len(c.products))
	for _, product := range c.products {
		products = append(products, product)
	}
	return products, nil
}

// resolveCategory resolves one category's member products.
// Dangling product references are skipped, matching the store's lookup
// semantics: no foreign keys are enforced at this level.
func (c *MemoryCatalog) resolveCategory(category models.Category) models.CategoryWithProducts {
	resolved := models.CategoryWithProducts{
		ID:          category.ID,
		Name:        category.Name,
		Image:       category.Image,
		Description: category.Description,
		Products:    make([]models.Product, 0, len(category.Products)),
	}
	for _, id := range category.Products {
		if product, ok := c.products[id]; ok {
			resolved.Products = append(resolved.Products, product)
		}
	}
	return resolved
}

func (c *MemoryCatalog) CategoryWithProducts(ctx context.Context, id string) (*models.CategoryWithProducts, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	category, ok := c.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	resolved := c.resolveCategory(category)
	return &resolved, nil
}

func (c *MemoryCatalog) CategoriesWithProducts(ctx context.Context) ([]models.CategoryWithProducts, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	categories := make([]models.CategoryWithProducts, 0, len(c.categories))
	for _, category := range c.categories {
		categories = append(categories, c.resolveCategory(category))
	}
	return categories, nil
}

func (c *MemoryCatalog) MenuWithCategories(ctx context.Context, id string) (*models.MenuWithCategories, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	menu, ok := c.menus[id]
	if !ok {
		return nil, ErrNotFound
	}
	resolved := c.resolveMenu(menu)
	return &resolved, nil
}

func (c *MemoryCatalog) MenusWithCategories(ctx context.Context) ([]models.MenuWithCategories, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	menus := make([]models.MenuWithCategories, 0, len(c.menus))
	for _, menu := range c.menus {
		menus = append(menus, c.resolveMenu(menu))
	}
	return menus, nil
}

func (c *MemoryCatalog) resolveMenu(menu models.Menu) models.MenuWithCategories {
	resolved := models.MenuWithCategories{
		ID:          menu.ID,
		Name:        menu.Name,
		Price:       menu.Price,
		Image:       menu.Image,
		Description: menu.Description,
		Categories:  make([]models.CategoryWithProducts, 0, len(menu.Categories)),
		Offer:       menu.Offer,
	}
	for _, id := range menu.Categories {
		if category, ok := c.categories[id]; ok {
			resolved.Categories = append(resolved.Categories, c.resolveCategory(category))
		}
	}
	return resolved
}

func (c *MemoryCatalog) InsertProduct(ctx context.Context, product models.Product) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	c.products[product.ID] = product
	return product.ID, nil
}

func (c *MemoryCatalog) InsertCategory(ctx context.Context, category models.Category) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	if category.Products == nil {
		category.Products = []string{}
	}
	c.categories[category.ID] = category
	return category.ID, nil
}

func (c *MemoryCatalog) InsertMenu(ctx context.Context, menu models.Menu) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if menu.ID == "" {
		menu.ID = uuid.NewString()
	}
	if menu.Categories == nil {
		menu.Categories = []string{}
	}
	c.menus[menu.ID] = menu
	return menu.ID, nil
}

func (c *MemoryCatalog) AddProductsToCategory(ctx context.Context, categoryID string, productIDs []string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	category, ok := c.categories[categoryID]
	if !ok {
		return 0, nil
	}
	category.Products = addToSet(category.Products, productIDs)
	c.categories[categoryID] = category
	return 1, nil
}

func (c *MemoryCatalog) RemoveProductFromCategory(ctx context.Context, categoryID, productID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	category, ok := c.categories[categoryID]
	if !ok {
		return 0, nil
	}
	category.Products = removeFromSet(category.Products, productID)
	c.categories[categoryID] = category
	return 1, nil
}

func (c *MemoryCatalog) AddCategoriesToMenu(ctx context.Context, menuID string, categoryIDs []string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	menu, ok := c.menus[menuID]
	if !ok {
		return 0, nil
	}
	menu.Categories = addToSet(menu.Categories, categoryIDs)
	c.menus[menuID] = menu
	return 1, nil
}

func (c *MemoryCatalog) RemoveCategoryFromMenu(ctx context.Context, menuID, categoryID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	menu, ok := c.menus[menuID]
	if !ok {
		return 0, nil
	}
	menu.Categories = removeFromSet(menu.Categories, categoryID)
	c.menus[menuID] = menu
	return 1, nil
}

func (c *MemoryCatalog) SetProductOffer(ctx context.Context, id string, multiplier float64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	product, ok := c.products[id]
	if !ok {
		return 0, nil
	}
	product.Offer = &multiplier
	c.products[id] = product
	return 1, nil
}

func (c *MemoryCatalog) SetMenuOffer(ctx context.Context, id string, multiplier float64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	menu, ok := c.menus[id]
	if !ok {
		return 0, nil
	}
	menu.Offer = &multiplier
	c.menus[id] = menu
	return 1, nil
}

func (c *MemoryCatalog) InsertOrder(ctx context.Context, order models.Order) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	c.orders[order.ID] = order
	return order.ID, nil
}

func (c *MemoryCatalog) Order(ctx context.Context, id string) (*models.Order, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	order, ok := c.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (c *MemoryCatalog) OrdersByFulfilled(ctx context.Context, fulfilled bool) ([]models.OrderSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	summaries := make([]models.OrderSummary, 0)
	for _, order := range c.orders {
		if order.Fulfilled != fulfilled {
			continue
		}
		summaries = append(summaries, models.OrderSummary{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			Price:       order.Price,
		})
	}
	return summaries, nil
}

func (c *MemoryCatalog) MarkOrderFulfilled(ctx context.Context, id string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	order, ok := c.orders[id]
	if !ok {
		return 0, nil
	}
	order.Fulfilled = true
	c.orders[id] = order
	return 1, nil
}

func (c *MemoryCatalog) DeleteOrder(ctx context.Context, id string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.orders[id]; !ok {
		return 0, nil
	}
	delete(c.orders, id)
	return 1, nil
}

// OrderCount reports the number of persisted orders. Test helper.
func (c *MemoryCatalog) OrderCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.orders)
}

func addToSet(set []string, ids []string) []string {
	for _, id := range ids {
		found := false
		for _, existing := range set {
			if existing == id {
				found = true
				break
			}
		}
		if !found {
			set = append(set, id)
		}
	}
	return set
}

func removeFromSet(set []string, id string) []string {
	kept := make([]string, 0, len(set))
	for _, existing := range set {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return kept
}
