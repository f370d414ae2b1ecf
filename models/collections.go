package models

// Collection names are pinned here instead of being derived from type names at
// runtime, so renaming a type cannot silently move its documents.
const (
	UserCollection           = "user"
	ProductCollection        = "product"
	MenuItemCollection       = "menuitem"
	ReservationCollection    = "reservation"
	ContactMessageCollection = "contactmessage"
)
