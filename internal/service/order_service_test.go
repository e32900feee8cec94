package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"burger-api/internal/models"
	"burger-api/internal/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seedCatalog builds the reference catalog used across the service tests:
//
//	P1 price 500, no offer
//	P2 price 300, no offer
//	C1 = {P1}
//	C2 = {P2}
//	M1 price 1000, categories {C1}, offer 0.9
//	M2 price 800, categories {C1, C2}, no offer
func seedCatalog(t *testing.T) *repository.MemoryCatalog {
	t.Helper()
	catalog := repository.NewMemoryCatalog()
	ctx := context.Background()

	offer := 0.9
	seed := []func() error{
		func() error {
			_, err := catalog.InsertProduct(ctx, models.Product{ID: "p1", Name: "Classic Burger", Price: 500})
			return err
		},
		func() error {
			_, err := catalog.InsertProduct(ctx, models.Product{ID: "p2", Name: "Fries", Price: 300})
			return err
		},
		func() error {
			_, err := catalog.InsertCategory(ctx, models.Category{ID: "c1", Name: "Burgers", Products: []string{"p1"}})
			return err
		},
		func() error {
			_, err := catalog.InsertCategory(ctx, models.Category{ID: "c2", Name: "Sides", Products: []string{"p2"}})
			return err
		},
		func() error {
			_, err := catalog.InsertMenu(ctx, models.Menu{ID: "m1", Name: "Solo Menu", Price: 1000, Categories: []string{"c1"}, Offer: &offer})
			return err
		},
		func() error {
			_, err := catalog.InsertMenu(ctx, models.Menu{ID: "m2", Name: "Duo Menu", Price: 800, Categories: []string{"c1", "c2"}})
			return err
		},
	}
	for _, insert := range seed {
		if err := insert(); err != nil {
			t.Fatalf("seed catalog: %v", err)
		}
	}
	return catalog
}

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name      string
		req       models.OrderRequest
		wantErr   error
		wantPrice int64
	}{
		{
			name: "menu selection with discounted menu",
			req: models.OrderRequest{
				Menus: []models.MenuSelection{
					{Menu: "m1", Products: []models.MenuSelectionItem{{Category: "c1", Product: "p1"}}},
				},
			},
			wantPrice: 900,
		},
		{
			name: "standalone product without offer",
			req: models.OrderRequest{
				Products: []string{"p1"},
			},
			wantPrice: 500,
		},
		{
			name: "products and menus combined",
			req: models.OrderRequest{
				Products: []string{"p1", "p2"},
				Menus: []models.MenuSelection{
					{Menu: "m1", Products: []models.MenuSelectionItem{{Category: "c1", Product: "p1"}}},
					{Menu: "m2", Products: []models.MenuSelectionItem{
						{Category: "c1", Product: "p1"},
						{Category: "c2", Product: "p2"},
					}},
				},
			},
			// 500 + 300 + 900 + 800; slot products never add to the total
			wantPrice: 2500,
		},
		{
			name:    "empty order",
			req:     models.OrderRequest{},
			wantErr: ErrEmptyOrder,
		},
		{
			name: "unknown standalone product",
			req: models.OrderRequest{
				Products: []string{"p1", "ghost"},
			},
			wantErr: ErrInvalidReference,
		},
		{
			name: "unknown menu",
			req: models.OrderRequest{
				Menus: []models.MenuSelection{
					{Menu: "ghost", Products: []models.MenuSelectionItem{{Category: "c1", Product: "p1"}}},
				},
			},
			wantErr: ErrInvalidReference,
		},
		{
			name: "category superset of menu declaration",
			req: models.OrderRequest{
				Menus: []models.MenuSelection{
					{Menu: "m1", Products: []models.MenuSelectionItem{
						{Category: "c1", Product: "p1"},
						{Category: "c2", Product: "p2"},
					}},
				},
			},
			wantErr: ErrCategoryMismatch,
		},
		{
			name: "category strict subset of menu declaration",
			req: models.OrderRequest{
				Menus: []models.MenuSelection{
					{Menu: "m2", Products: []models.MenuSelectionItem{{Category: "c1", Product: "p1"}}},
				},
			},
			wantErr: ErrCategoryMismatch,
		},
		{
			name: "same cardinality but wrong category",
			req: models.OrderRequest{
				Menus: []models.MenuSelection{
					{Menu: "m1", Products: []models.MenuSelectionItem{{Category: "c2", Product: "p2"}}},
				},
			},
			wantErr: ErrCategoryMismatch,
		},
		{
			name: "duplicate category cannot cover the declared set",
			req: models.OrderRequest{
				Menus: []models.MenuSelection{
					{Menu: "m2", Products: []models.MenuSelectionItem{
						{Category: "c1", Product: "p1"},
						{Category: "c1", Product: "p1"},
					}},
				},
			},
			wantErr: ErrCategoryMismatch,
		},
		{
			name: "product outside its declared category",
			req: models.OrderRequest{
				Menus: []models.MenuSelection{
					{Menu: "m1", Products: []models.MenuSelectionItem{{Category: "c1", Product: "p2"}}},
				},
			},
			wantErr: ErrProductNotInCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := seedCatalog(t)
			svc := NewOrderService(catalog, discardLogger())

			id, err := svc.CreateOrder(context.Background(), tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateOrder() error = %v, want %v", err, tt.wantErr)
				}
				if catalog.OrderCount() != 0 {
					t.Errorf("rejected order left %d documents in the store", catalog.OrderCount())
				}
				return
			}

			if err != nil {
				t.Fatalf("CreateOrder() unexpected error: %v", err)
			}
			if id == "" {
				t.Fatal("CreateOrder() returned empty order id")
			}

			order, err := catalog.Order(context.Background(), id)
			if err != nil {
				t.Fatalf("persisted order not found: %v", err)
			}
			if order.Price != tt.wantPrice {
				t.Errorf("order price = %d, want %d", order.Price, tt.wantPrice)
			}
			if order.Fulfilled {
				t.Error("new order must not be fulfilled")
			}
			if order.OrderNumber == "" {
				t.Error("order number is empty")
			}
			if len(order.Products) != len(tt.req.Products) {
				t.Errorf("persisted %d products, want %d", len(order.Products), len(tt.req.Products))
			}
			if len(order.Menus) != len(tt.req.Menus) {
				t.Errorf("persisted %d menu selections, want %d", len(order.Menus), len(tt.req.Menus))
			}
		})
	}
}

func TestOrderService_CreateOrder_TotalIsOrderIndependent(t *testing.T) {
	catalog := seedCatalog(t)
	svc := NewOrderService(catalog, discardLogger())
	ctx := context.Background()

	forward := models.OrderRequest{
		Products: []string{"p1", "p2"},
		Menus: []models.MenuSelection{
			{Menu: "m1", Products: []models.MenuSelectionItem{{Category: "c1", Product: "p1"}}},
		},
	}
	reversed := models.OrderRequest{
		Products: []string{"p2", "p1"},
		Menus:    forward.Menus,
	}

	firstID, err := svc.CreateOrder(ctx, forward)
	if err != nil {
		t.Fatalf("CreateOrder(forward): %v", err)
	}
	secondID, err := svc.CreateOrder(ctx, reversed)
	if err != nil {
		t.Fatalf("CreateOrder(reversed): %v", err)
	}

	first, _ := catalog.Order(ctx, firstID)
	second, _ := catalog.Order(ctx, secondID)
	if first.Price != second.Price {
		t.Errorf("reordering lines changed the total: %d vs %d", first.Price, second.Price)
	}
}

// faultyCatalog simulates an unavailable store for selected operations so
// infrastructure failures can be told apart from business rejections.
type faultyCatalog struct {
	*repository.MemoryCatalog
	failProductsExist bool
	failMenuLookup    bool
}

var errStoreDown = errors.New("catalog store unavailable")

func (c *faultyCatalog) ProductsExist(ctx context.Context, ids []string) (bool, error) {
	if c.failProductsExist {
		return false, errStoreDown
	}
	return c.MemoryCatalog.ProductsExist(ctx, ids)
}

func (c *faultyCatalog) Menu(ctx context.Context, id string) (*models.Menu, error) {
	if c.failMenuLookup {
		return nil, errStoreDown
	}
	return c.MemoryCatalog.Menu(ctx, id)
}

func TestOrderService_CreateOrder_InfrastructureFailure(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*faultyCatalog)
	}{
		{
			name:  "existence stage store fault",
			setup: func(c *faultyCatalog) { c.failProductsExist = true },
		},
		{
			name:  "category stage store fault",
			setup: func(c *faultyCatalog) { c.failMenuLookup = true },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &faultyCatalog{MemoryCatalog: seedCatalog(t)}
			tt.setup(catalog)
			svc := NewOrderService(catalog, discardLogger())

			req := models.OrderRequest{
				Products: []string{"p1"},
				Menus: []models.MenuSelection{
					{Menu: "m1", Products: []models.MenuSelectionItem{{Category: "c1", Product: "p1"}}},
				},
			}
			_, err := svc.CreateOrder(context.Background(), req)

			if err == nil {
				t.Fatal("expected an error from the unavailable store")
			}
			if !errors.Is(err, errStoreDown) {
				t.Fatalf("store fault was not propagated, got: %v", err)
			}
			for _, business := range []error{ErrEmptyOrder, ErrInvalidReference, ErrCategoryMismatch, ErrProductNotInCategory} {
				if errors.Is(err, business) {
					t.Errorf("store fault was conflated with business error %v", business)
				}
			}
		})
	}
}

func TestOrderService_Lifecycle(t *testing.T) {
	catalog := seedCatalog(t)
	svc := NewOrderService(catalog, discardLogger())
	ctx := context.Background()

	id, err := svc.CreateOrder(ctx, models.OrderRequest{Products: []string{"p1"}})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	pending, err := svc.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending orders = %d, want 1", len(pending))
	}

	if err := svc.Complete(ctx, id); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	completed, err := svc.ListCompleted(ctx)
	if err != nil {
		t.Fatalf("ListCompleted: %v", err)
	}
	if len(completed) != 1 {
		t.Fatalf("completed orders = %d, want 1", len(completed))
	}

	order, err := svc.Order(ctx, id)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	if !order.Fulfilled {
		t.Error("completed order is not flagged fulfilled")
	}

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Order(ctx, id); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("deleted order lookup error = %v, want ErrOrderNotFound", err)
	}

	if err := svc.Complete(ctx, "missing"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("Complete(missing) error = %v, want ErrOrderNotFound", err)
	}
	if err := svc.Delete(ctx, "missing"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrOrderNotFound", err)
	}
}
