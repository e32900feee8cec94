package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"burger-api/internal/repository"
)

// PriceResolver computes effective prices in minor units, applying the
// document's promotional multiplier when present.
//
// Multiplier arithmetic goes through decimal so totals are exact and
// reproducible; float products like 1000 × 0.9 never drift off a whole
// minor unit.
type PriceResolver struct {
	catalog repository.Catalog
}

// NewPriceResolver creates a price resolver over the given catalog store.
func NewPriceResolver(catalog repository.Catalog) *PriceResolver {
	return &PriceResolver{catalog: catalog}
}

// ProductPrice returns the product's effective price, or 0 if the product
// does not exist. Callers are expected to have confirmed existence already;
// the zero is a defensive default, not a validation path.
func (p *PriceResolver) ProductPrice(ctx context.Context, id string) (int64, error) {
	product, err := p.catalog.Product(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return effectivePrice(product.Price, product.Offer), nil
}

// MenuPrice returns the menu's effective fixed price, or 0 if the menu does
// not exist. Per-slot product prices never contribute; the menu price holds
// regardless of which qualifying products were chosen.
func (p *PriceResolver) MenuPrice(ctx context.Context, id string) (int64, error) {
	menu, err := p.catalog.Menu(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return effectivePrice(menu.Price, menu.Offer), nil
}

func effectivePrice(price int64, offer *float64) int64 {
	if offer == nil {
		return price
	}
	return decimal.NewFromInt(price).
		Mul(decimal.NewFromFloat(*offer)).
		Round(0).
		IntPart()
}
