package service

import (
	"math/rand/v2"
	"strconv"

	"burger-api/internal/models"
)

const orderNumberLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NextOrderNumber produces a short human-facing code: two random letters
// followed by a number below 999. It is a display code for the counter
// screen, not a uniqueness key; collisions are possible and accepted.
func NextOrderNumber() string {
	return string(orderNumberLetters[rand.IntN(len(orderNumberLetters))]) +
		string(orderNumberLetters[rand.IntN(len(orderNumberLetters))]) +
		strconv.Itoa(rand.IntN(999))
}

// Compose builds the canonical order document from validated input,
// field by field. Pure function: no I/O, no mutation of the request.
func Compose(req models.OrderRequest, total int64, orderNumber string) models.Order {
	products := make([]string, len(req.Products))
	copy(products, req.Products)

	menus := make([]models.MenuSelection, 0, len(req.Menus))
	for _, selection := range req.Menus {
		items := make([]models.MenuSelectionItem, 0, len(selection.Products))
		for _, item := range selection.Products {
			items = append(items, models.MenuSelectionItem{
				Product:  item.Product,
				Category: item.Category,
			})
		}
		menus = append(menus, models.MenuSelection{
			Menu:     selection.Menu,
			Products: items,
		})
	}

	return models.Order{
		OrderNumber: orderNumber,
		Price:       total,
		Products:    products,
		Menus:       menus,
		Fulfilled:   false,
	}
}
