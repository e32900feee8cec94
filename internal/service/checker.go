package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"burger-api/internal/models"
	"burger-api/internal/repository"
)

// Checker verifies id existence and parent/child containment against the
// catalog. All methods are read-only. A false result always means the
// business rule failed; infrastructure faults come back as errors and are
// never folded into false.
type Checker struct {
	catalog repository.Catalog
}

// NewChecker creates a checker over the given catalog store.
func NewChecker(catalog repository.Catalog) *Checker {
	return &Checker{catalog: catalog}
}

// IDsExist reports whether every id resolves to a live document of the given
// kind. An empty id set is vacuously true. All-or-nothing: callers cannot
// learn which id was missing.
func (c *Checker) IDsExist(ctx context.Context, kind models.EntityKind, ids []string) (bool, error) {
	switch kind {
	case models.KindProduct:
		return c.catalog.ProductsExist(ctx, ids)
	case models.KindCategory:
		return c.catalog.CategoriesExist(ctx, ids)
	case models.KindMenu:
		return c.catalog.MenusExist(ctx, ids)
	default:
		return false, fmt.Errorf("unsupported entity kind %q", kind)
	}
}

// CategorySetMatches reports whether categoryIDs is exactly the menu's
// declared category set: same elements, same count. A missing menu is false.
func (c *Checker) CategorySetMatches(ctx context.Context, menuID string, categoryIDs []string) (bool, error) {
	menu, err := c.catalog.Menu(ctx, menuID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	// Cardinality first; cheaper than the set comparison.
	if len(categoryIDs) != len(menu.Categories) {
		return false, nil
	}

	declared := make(map[string]struct{}, len(menu.Categories))
	for _, id := range menu.Categories {
		declared[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		if _, ok := declared[id]; !ok {
			return false, nil
		}
		if _, dup := seen[id]; dup {
			// A repeated category can never cover the full declared set.
			return false, nil
		}
		seen[id] = struct{}{}
	}
	return true, nil
}

// ProductInCategory reports whether the product is a member of the category.
// A missing category is false.
func (c *Checker) ProductInCategory(ctx context.Context, categoryID, productID string) (bool, error) {
	category, err := c.catalog.Category(ctx, categoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return slices.Contains(category.Products, productID), nil
}
