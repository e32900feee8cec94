package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"burger-api/internal/models"
)

// Collection names of the catalog store.
const (
	colProducts   = "product"
	colCategories = "category"
	colMenus      = "menu"
	colOrders     = "order"
)

// MongoCatalog implements Catalog on top of a MongoDB database.
// Documents use plain string ids (ObjectID hex), so an unknown or malformed
// id simply matches nothing rather than erroring.
type MongoCatalog struct {
	db *mongo.Database
}

// NewMongoCatalog creates a Mongo-backed catalog store.
func NewMongoCatalog(db *mongo.Database) *MongoCatalog {
	return &MongoCatalog{db: db}
}

// exists reports whether every id resolves to a document in the collection.
// All-or-nothing: the caller cannot learn which id was missing.
func (c *MongoCatalog) exists(ctx context.Context, collection string, ids []string) (bool, error) {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return true, nil
	}

	count, err := c.db.Collection(collection).CountDocuments(ctx, bson.M{"_id": bson.M{"$in": unique}})
	if err != nil {
		return false, fmt.Errorf("count %s documents: %w", collection, err)
	}
	return count == int64(len(unique)), nil
}

func (c *MongoCatalog) ProductsExist(ctx context.Context, ids []string) (bool, error) {
	return c.exists(ctx, colProducts, ids)
}

func (c *MongoCatalog) CategoriesExist(ctx context.Context, ids []string) (bool, error) {
	return c.exists(ctx, colCategories, ids)
}

func (c *MongoCatalog) MenusExist(ctx context.Context, ids []string) (bool, error) {
	return c.exists(ctx, colMenus, ids)
}

func findByID[T any](ctx context.Context, col *mongo.Collection, id string) (*T, error) {
	var doc T
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s document: %w", col.Name(), err)
	}
	return &doc, nil
}

func (c *MongoCatalog) Product(ctx context.Context, id string) (*models.Product, error) {
	return findByID[models.Product](ctx, c.db.Collection(colProducts), id)
}

func (c *MongoCatalog) Category(ctx context.Context, id string) (*models.Category, error) {
	return findByID[models.Category](ctx, c.db.Collection(colCategories), id)
}

func (c *MongoCatalog) Menu(ctx context.Context, id string) (*models.Menu, error) {
	return findByID[models.Menu](ctx, c.db.Collection(colMenus), id)
}

func (c *MongoCatalog) Products(ctx context.Context) ([]models.Product, error) {
	cursor, err := c.db.Collection(colProducts).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// categoryLookup resolves a category's member products in one aggregation hop.
var categoryLookup = bson.M{"$lookup": bson.M{
	"from":         colProducts,
	"localField":   "products",
	"foreignField": "_id",
	"as":           "products",
}}

// menuLookup resolves a menu's categories, and each category's products,
// in a single aggregation.
var menuLookup = bson.M{"$lookup": bson.M{
	"from": colCategories,
	"let":  bson.M{"categories": "$categories"},
	"pipeline": bson.A{
		bson.M{"$match": bson.M{"$expr": bson.M{"$in": bson.A{"$_id", "$$categories"}}}},
		categoryLookup,
	},
	"as": "categories",
}}

func aggregateAll[T any](ctx context.Context, col *mongo.Collection, pipeline bson.A) ([]T, error) {
	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s documents: %w", col.Name(), err)
	}
	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s documents: %w", col.Name(), err)
	}
	return docs, nil
}

func aggregateOne[T any](ctx context.Context, col *mongo.Collection, id string, lookup bson.M) (*T, error) {
	docs, err := aggregateAll[T](ctx, col, bson.A{bson.M{"$match": bson.M{"_id": id}}, lookup})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return &docs[0], nil
}

func (c *MongoCatalog) CategoryWithProducts(ctx context.Context, id string) (*models.CategoryWithProducts, error) {
	return aggregateOne[models.CategoryWithProducts](ctx, c.db.Collection(colCategories), id, categoryLookup)
}

func (c *MongoCatalog) CategoriesWithProducts(ctx context.Context) ([]models.CategoryWithProducts, error) {
	return aggregateAll[models.CategoryWithProducts](ctx, c.db.Collection(colCategories), bson.A{categoryLookup})
}

func (c *MongoCatalog) MenuWithCategories(ctx context.Context, id string) (*models.MenuWithCategories, error) {
	return aggregateOne[models.MenuWithCategories](ctx, c.db.Collection(colMenus), id, menuLookup)
}

func (c *MongoCatalog) MenusWithCategories(ctx context.Context) ([]models.MenuWithCategories, error) {
	return aggregateAll[models.MenuWithCategories](ctx, c.db.Collection(colMenus), bson.A{menuLookup})
}

func (c *MongoCatalog) InsertProduct(ctx context.Context, product models.Product) (string, error) {
	if product.ID == "" {
		product.ID = primitive.NewObjectID().Hex()
	}
	if _, err := c.db.Collection(colProducts).InsertOne(ctx, product); err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}
	return product.ID, nil
}

func (c *MongoCatalog) InsertCategory(ctx context.Context, category models.Category) (string, error) {
	if category.ID == "" {
		category.ID = primitive.NewObjectID().Hex()
	}
	if category.Products == nil {
		category.Products = []string{}
	}
	if _, err := c.db.Collection(colCategories).InsertOne(ctx, category); err != nil {
		return "", fmt.Errorf("insert category: %w", err)
	}
	return category.ID, nil
}

func (c *MongoCatalog) InsertMenu(ctx context.Context, menu models.Menu) (string, error) {
	if menu.ID == "" {
		menu.ID = primitive.NewObjectID().Hex()
	}
	if menu.Categories == nil {
		menu.Categories = []string{}
	}
	if _, err := c.db.Collection(colMenus).InsertOne(ctx, menu); err != nil {
		return "", fmt.Errorf("insert menu: %w", err)
	}
	return menu.ID, nil
}

func (c *MongoCatalog) updateByID(ctx context.Context, collection, id string, update bson.M) (int64, error) {
	result, err := c.db.Collection(collection).UpdateByID(ctx, id, update)
	if err != nil {
		return 0, fmt.Errorf("update %s document: %w", collection, err)
	}
	return result.MatchedCount, nil
}

func (c *MongoCatalog) AddProductsToCategory(ctx context.Context, categoryID string, productIDs []string) (int64, error) {
	return c.updateByID(ctx, colCategories, categoryID,
		bson.M{"$addToSet": bson.M{"products": bson.M{"$each": productIDs}}})
}

func (c *MongoCatalog) RemoveProductFromCategory(ctx context.Context, categoryID, productID string) (int64, error) {
	return c.updateByID(ctx, colCategories, categoryID,
		bson.M{"$pull": bson.M{"products": productID}})
}

func (c *MongoCatalog) AddCategoriesToMenu(ctx context.Context, menuID string, categoryIDs []string) (int64, error) {
	return c.updateByID(ctx, colMenus, menuID,
		bson.M{"$addToSet": bson.M{"categories": bson.M{"$each": categoryIDs}}})
}

func (c *MongoCatalog) RemoveCategoryFromMenu(ctx context.Context, menuID, categoryID string) (int64, error) {
	return c.updateByID(ctx, colMenus, menuID,
		bson.M{"$pull": bson.M{"categories": categoryID}})
}

func (c *MongoCatalog) SetProductOffer(ctx context.Context, id string, multiplier float64) (int64, error) {
	return c.updateByID(ctx, colProducts, id, bson.M{"$set": bson.M{"offer": multiplier}})
}

func (c *MongoCatalog) SetMenuOffer(ctx context.Context, id string, multiplier float64) (int64, error) {
	return c.updateByID(ctx, colMenus, id, bson.M{"$set": bson.M{"offer": multiplier}})
}

func (c *MongoCatalog) InsertOrder(ctx context.Context, order models.Order) (string, error) {
	if order.ID == "" {
		order.ID = primitive.NewObjectID().Hex()
	}
	if _, err := c.db.Collection(colOrders).InsertOne(ctx, order); err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	return order.ID, nil
}

func (c *MongoCatalog) Order(ctx context.Context, id string) (*models.Order, error) {
	return findByID[models.Order](ctx, c.db.Collection(colOrders), id)
}

func (c *MongoCatalog) OrdersByFulfilled(ctx context.Context, fulfilled bool) ([]models.OrderSummary, error) {
	// Orders written before the fulfilled flag existed count as pending.
	filter := bson.M{"fulfilled": bson.M{"$ne": true}}
	if fulfilled {
		filter = bson.M{"fulfilled": true}
	}

	opts := options.Find().SetProjection(bson.M{"orderNumber": 1, "price": 1})
	cursor, err := c.db.Collection(colOrders).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	summaries := make([]models.OrderSummary, 0)
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return summaries, nil
}

func (c *MongoCatalog) MarkOrderFulfilled(ctx context.Context, id string) (int64, error) {
	return c.updateByID(ctx, colOrders, id, bson.M{"$set": bson.M{"fulfilled": true}})
}

func (c *MongoCatalog) DeleteOrder(ctx context.Context, id string) (int64, error) {
	result, err := c.db.Collection(colOrders).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete order: %w", err)
	}
	return result.DeletedCount, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
