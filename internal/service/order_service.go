package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"burger-api/internal/models"
	"burger-api/internal/repository"
)

var (
	ErrEmptyOrder           = errors.New("order must contain at least one product or menu selection")
	ErrInvalidReference     = errors.New("unknown product or menu id")
	ErrCategoryMismatch     = errors.New("invalid or missing category for this menu")
	ErrProductNotInCategory = errors.New("invalid product for this category")
	ErrOrderNotFound        = errors.New("order not found")
)

// OrderService validates, prices and persists order submissions, and drives
// the order lifecycle afterwards.
type OrderService struct {
	catalog repository.Catalog
	checker *Checker
	pricing *PriceResolver
	log     *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(catalog repository.Catalog, log *slog.Logger) *OrderService {
	return &OrderService{
		catalog: catalog,
		checker: NewChecker(catalog),
		pricing: NewPriceResolver(catalog),
		log:     log,
	}
}

// CreateOrder runs the staged validation pipeline over one submission:
//
//  1. reject structurally empty orders
//  2. existence of all standalone product ids and menu ids
//  3. each menu selection's categories exactly match the menu's declared set
//  4. each (category, product) pair is a real membership
//  5. resolve effective prices and sum
//  6. compose the order document and write it once
//
// Each stage fans out its reads concurrently and fully resolves before the
// next stage starts; a rejected order produces no writes. Validation and
// the final insert are not atomic against concurrent catalog edits — each
// read is individually consistent, but a category edited between stages is
// an accepted race.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (string, error) {
	if len(req.Products) == 0 && len(req.Menus) == 0 {
		return "", ErrEmptyOrder
	}

	if err := s.checkReferences(ctx, req); err != nil {
		return "", err
	}
	if err := s.checkMenuCategories(ctx, req.Menus); err != nil {
		return "", err
	}
	if err := s.checkCategoryProducts(ctx, req.Menus); err != nil {
		return "", err
	}

	total, err := s.totalPrice(ctx, req)
	if err != nil {
		return "", err
	}

	order := Compose(req, total, NextOrderNumber())
	id, err := s.catalog.InsertOrder(ctx, order)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	s.log.Info("order created",
		"order_id", id,
		"order_number", order.OrderNumber,
		"price", total,
		"products", len(order.Products),
		"menus", len(order.Menus),
	)
	return id, nil
}

// checkReferences verifies that all standalone product ids and all menu ids
// exist. Both batch checks run concurrently.
func (s *OrderService) checkReferences(ctx context.Context, req models.OrderRequest) error {
	menuIDs := make([]string, 0, len(req.Menus))
	for _, selection := range req.Menus {
		menuIDs = append(menuIDs, selection.Menu)
	}

	var productsOK, menusOK bool
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ok, err := s.checker.IDsExist(ctx, models.KindProduct, req.Products)
		productsOK = ok
		return err
	})
	g.Go(func() error {
		ok, err := s.checker.IDsExist(ctx, models.KindMenu, menuIDs)
		menusOK = ok
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("existence checks: %w", err)
	}

	if !productsOK || !menusOK {
		return ErrInvalidReference
	}
	return nil
}

// checkMenuCategories verifies every menu selection against its menu's
// declared category set. All selections are checked concurrently; results
// are collected per selection so a richer per-line report stays possible,
// but the verdict is all-or-nothing.
func (s *OrderService) checkMenuCategories(ctx context.Context, selections []models.MenuSelection) error {
	results := make([]bool, len(selections))
	g, ctx := errgroup.WithContext(ctx)
	for i, selection := range selections {
		g.Go(func() error {
			categoryIDs := make([]string, 0, len(selection.Products))
			for _, item := range selection.Products {
				categoryIDs = append(categoryIDs, item.Category)
			}
			ok, err := s.checker.CategorySetMatches(ctx, selection.Menu, categoryIDs)
			results[i] = ok
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("menu category checks: %w", err)
	}

	for _, ok := range results {
		if !ok {
			return ErrCategoryMismatch
		}
	}
	return nil
}

// checkCategoryProducts verifies every (category, product) pair across all
// menu selections concurrently.
func (s *OrderService) checkCategoryProducts(ctx context.Context, selections []models.MenuSelection) error {
	pairs := make([]models.MenuSelectionItem, 0)
	for _, selection := range selections {
		pairs = append(pairs, selection.Products...)
	}

	results := make([]bool, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	for i, pair := range pairs {
		g.Go(func() error {
			ok, err := s.checker.ProductInCategory(ctx, pair.Category, pair.Product)
			results[i] = ok
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("category membership checks: %w", err)
	}

	for _, ok := range results {
		if !ok {
			return ErrProductNotInCategory
		}
	}
	return nil
}

// totalPrice resolves all effective prices concurrently and sums them:
// every standalone product plus every menu's fixed price. Products chosen
// inside a menu selection do not add to the total.
func (s *OrderService) totalPrice(ctx context.Context, req models.OrderRequest) (int64, error) {
	productPrices := make([]int64, len(req.Products))
	menuPrices := make([]int64, len(req.Menus))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range req.Products {
		g.Go(func() error {
			price, err := s.pricing.ProductPrice(ctx, id)
			productPrices[i] = price
			return err
		})
	}
	for i, selection := range req.Menus {
		g.Go(func() error {
			price, err := s.pricing.MenuPrice(ctx, selection.Menu)
			menuPrices[i] = price
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("price resolution: %w", err)
	}

	var total int64
	for _, price := range productPrices {
		total += price
	}
	for _, price := range menuPrices {
		total += price
	}
	return total, nil
}

// Order retrieves one persisted order.
func (s *OrderService) Order(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.catalog.Order(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListPending lists orders that have not been fulfilled yet.
func (s *OrderService) ListPending(ctx context.Context) ([]models.OrderSummary, error) {
	return s.catalog.OrdersByFulfilled(ctx, false)
}

// ListCompleted lists fulfilled orders.
func (s *OrderService) ListCompleted(ctx context.Context) ([]models.OrderSummary, error) {
	return s.catalog.OrdersByFulfilled(ctx, true)
}

// Complete flags an order as fulfilled. The transition is one-way; there is
// no path back to pending.
func (s *OrderService) Complete(ctx context.Context, id string) error {
	matched, err := s.catalog.MarkOrderFulfilled(ctx, id)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrOrderNotFound
	}
	s.log.Info("order completed", "order_id", id)
	return nil
}

// Delete removes an order.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	deleted, err := s.catalog.DeleteOrder(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrOrderNotFound
	}
	s.log.Info("order deleted", "order_id", id)
	return nil
}
