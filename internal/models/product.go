package models

// Product represents a standalone food product.
// Prices are stored in minor units (cents). Offer is an optional
// promotional multiplier in [0,1]; absence means no discount.
type Product struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Price       int64    `bson:"price" json:"price"`
	Image       string   `bson:"image" json:"image"`
	Description string   `bson:"description" json:"description"`
	Calories    *int     `bson:"calories,omitempty" json:"calories,omitempty"`
	Offer       *float64 `bson:"offer,omitempty" json:"offer,omitempty"`
}
