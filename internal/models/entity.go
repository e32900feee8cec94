package models

// EntityKind names one of the catalog document collections.
type EntityKind string

const (
	KindProduct  EntityKind = "product"
	KindCategory EntityKind = "category"
	KindMenu     EntityKind = "menu"
	KindOrder    EntityKind = "order"
)
