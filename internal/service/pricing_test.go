package service

import (
	"context"
	"testing"

	"burger-api/internal/models"
	"burger-api/internal/repository"
)

func TestPriceResolver_ProductPrice(t *testing.T) {
	catalog := repository.NewMemoryCatalog()
	ctx := context.Background()

	half := 0.5
	ninety := 0.9
	zero := 0.0
	seed := []models.Product{
		{ID: "plain", Price: 500},
		{ID: "discounted", Price: 1000, Offer: &ninety},
		{ID: "half", Price: 999, Offer: &half},
		{ID: "free", Price: 700, Offer: &zero},
	}
	for _, product := range seed {
		if _, err := catalog.InsertProduct(ctx, product); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	resolver := NewPriceResolver(catalog)

	tests := []struct {
		name string
		id   string
		want int64
	}{
		{name: "no offer means factor one", id: "plain", want: 500},
		{name: "multiplier applied exactly", id: "discounted", want: 900},
		{name: "half minor unit rounds away from zero", id: "half", want: 500},
		{name: "zero multiplier", id: "free", want: 0},
		{name: "missing product defaults to zero", id: "ghost", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.ProductPrice(ctx, tt.id)
			if err != nil {
				t.Fatalf("ProductPrice() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ProductPrice(%q) = %d, want %d", tt.id, got, tt.want)
			}
		})
	}
}

func TestPriceResolver_MenuPrice(t *testing.T) {
	catalog := repository.NewMemoryCatalog()
	ctx := context.Background()

	ninety := 0.9
	if _, err := catalog.InsertMenu(ctx, models.Menu{ID: "m1", Price: 1000, Offer: &ninety}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := catalog.InsertMenu(ctx, models.Menu{ID: "m2", Price: 800}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	resolver := NewPriceResolver(catalog)

	tests := []struct {
		name string
		id   string
		want int64
	}{
		{name: "fixed price with multiplier", id: "m1", want: 900},
		{name: "fixed price without multiplier", id: "m2", want: 800},
		{name: "missing menu defaults to zero", id: "ghost", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.MenuPrice(ctx, tt.id)
			if err != nil {
				t.Fatalf("MenuPrice() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MenuPrice(%q) = %d, want %d", tt.id, got, tt.want)
			}
		})
	}
}

func TestPriceResolver_Deterministic(t *testing.T) {
	catalog := repository.NewMemoryCatalog()
	ctx := context.Background()

	offer := 0.9
	if _, err := catalog.InsertProduct(ctx, models.Product{ID: "p", Price: 12345, Offer: &offer}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	resolver := NewPriceResolver(catalog)

	first, err := resolver.ProductPrice(ctx, "p")
	if err != nil {
		t.Fatalf("ProductPrice() error: %v", err)
	}
	for i := 0; i < 100; i++ {
		got, err := resolver.ProductPrice(ctx, "p")
		if err != nil {
			t.Fatalf("ProductPrice() error: %v", err)
		}
		if got != first {
			t.Fatalf("run %d: price %d differs from first run %d", i, got, first)
		}
	}
}
