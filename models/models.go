package models

import "time"

// Product is a catalog entry. The catalog is seeded at startup and never
// mutated, so products are safe to copy around by value.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// User is a registered account. The password is stored and compared as
// plain text; hardening it would change the login contract.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView is what login returns to callers: a User minus the password.
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CartItem is one line of a cart. At most one line exists per product id.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart holds a user's pending selection. An emptied cart sticks around
// with zero items rather than being deleted.
type Cart struct {
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

// CartEntry is a cart line with the live catalog product resolved in,
// the shape the view-cart endpoint returns.
type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// OrderItem is a deep copy of the product at order time. Later catalog
// changes must never retroactively alter a placed order.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Order is an immutable snapshot of a placed cart. Total is a fixed
// two-decimal string so the display value never depends on float
// formatting.
type Order struct {
	ID     string      `json:"id"`
	UserID string      `json:"userId"`
	Items  []OrderItem `json:"items"`
	Total  string      `json:"total"`
	Date   time.Time   `json:"date"`
}
