package models

// OrderRequest represents an incoming order submission: any combination of
// standalone product ids and menu selections.
type OrderRequest struct {
	Products []string        `json:"products"`
	Menus    []MenuSelection `json:"menus"`
}

// MenuSelection references one menu and the product picked for each of the
// menu's category slots.
type MenuSelection struct {
	Menu     string              `bson:"menu" json:"menu"`
	Products []MenuSelectionItem `bson:"products" json:"products"`
}

// MenuSelectionItem is one filled category slot of a menu selection.
type MenuSelectionItem struct {
	Product  string `bson:"product" json:"product"`
	Category string `bson:"category" json:"category"`
}

// Order is the persisted order document. It is immutable once created
// except for the one-way fulfilled transition.
//
// OrderNumber is a short display code for the counter screen; it is not
// unique and nothing may key on it.
type Order struct {
	ID          string          `bson:"_id,omitempty" json:"id"`
	OrderNumber string          `bson:"orderNumber" json:"orderNumber"`
	Price       int64           `bson:"price" json:"price"`
	Products    []string        `bson:"products" json:"products"`
	Menus       []MenuSelection `bson:"menus" json:"menus"`
	Fulfilled   bool            `bson:"fulfilled" json:"fulfilled"`
}

// OrderSummary is the projection used by the pending/completed listings.
type OrderSummary struct {
	ID          string `bson:"_id" json:"id"`
	OrderNumber string `bson:"orderNumber" json:"orderNumber"`
	Price       int64  `bson:"price" json:"price"`
}
