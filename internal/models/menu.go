package models

// Menu offers one product pick per category for a fixed price.
// The fixed price is in minor units; Offer is an optional promotional
// multiplier in [0,1].
type Menu struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Price       int64    `bson:"price" json:"price"`
	Image       string   `bson:"image" json:"image"`
	Description string   `bson:"description" json:"description"`
	Categories  []string `bson:"categories" json:"categories"`
	Offer       *float64 `bson:"offer,omitempty" json:"offer,omitempty"`
}

// MenuWithCategories is a menu with its categories and their products resolved.
type MenuWithCategories struct {
	ID          string                 `bson:"_id" json:"id"`
	Name        string                 `bson:"name" json:"name"`
	Price       int64                  `bson:"price" json:"price"`
	Image       string                 `bson:"image" json:"image"`
	Description string                 `bson:"description" json:"description"`
	Categories  []CategoryWithProducts `bson:"categories" json:"categories"`
	Offer       *float64               `bson:"offer,omitempty" json:"offer,omitempty"`
}

// AddCategoriesRequest is the body of the add-categories-to-menu endpoint.
type AddCategoriesRequest struct {
	Categories []string `json:"categories"`
}

// OfferRequest is the body of the special-offer endpoints.
type OfferRequest struct {
	Multiplier float64 `json:"multiplier"`
}
