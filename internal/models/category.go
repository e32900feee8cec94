package models

// Category is a simple selection of products.
type Category struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Image       string   `bson:"image" json:"image"`
	Description string   `bson:"description" json:"description"`
	Products    []string `bson:"products" json:"products"`
}

// CategoryWithProducts is a category with its member products resolved.
type CategoryWithProducts struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Image       string    `bson:"image" json:"image"`
	Description string    `bson:"description" json:"description"`
	Products    []Product `bson:"products" json:"products"`
}

// AddProductsRequest is the body of the add-products-to-category endpoint.
type AddProductsRequest struct {
	Products []string `json:"products"`
}
