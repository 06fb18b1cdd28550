package cart

import (
	"sync"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/catalog"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/models"
)

// Store keeps one cart per user in memory. The mutex is shared with the
// order ledger so that placing an order (snapshot cart, append order,
// clear cart) is one atomic step to every other caller.
type Store struct {
	mu      *sync.RWMutex
	catalog *catalog.Catalog
	carts   []*models.Cart
}

func NewStore(cat *catalog.Catalog, mu *sync.RWMutex) *Store {
	return &Store{mu: mu, catalog: cat}
}

// findCart must be called with the lock held.
func (s *Store) findCart(userID string) *models.Cart {
	for _, c := range s.carts {
		if c.UserID == userID {
			return c
		}
	}
	return nil
}

// AddItem puts one unit of the product into the user's cart, creating
// the cart on first use. An existing line for the product gains a unit
// instead of a second line. Unknown products are rejected and leave the
// cart untouched.
func (s *Store) AddItem(userID, productID string) error {
	if _, err := s.catalog.Get(productID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userCart := s.findCart(userID)
	if userCart == nil {
		userCart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
		s.carts = append(s.carts, userCart)
	}

	for i := range userCart.Items {
		if userCart.Items[i].ProductID == productID {
			userCart.Items[i].Quantity++
			return nil
		}
	}
	userCart.Items = append(userCart.Items, models.CartItem{ProductID: productID, Quantity: 1})
	return nil
}

// View resolves the user's cart lines against the catalog. A user
// without a cart gets an empty slice; viewing never creates a cart.
func (s *Store) View(userID string) []models.CartEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := []models.CartEntry{}
	userCart := s.findCart(userID)
	if userCart == nil {
		return entries
	}
	for _, item := range userCart.Items {
		product, err := s.catalog.Get(item.ProductID)
		if err != nil {
			// AddItem validated the id and the catalog is immutable
			continue
		}
		entries = append(entries, models.CartEntry{Product: product, Quantity: item.Quantity})
	}
	return entries
}

// UpdateQuantity sets the stored quantity for a cart line. Missing cart,
// missing line or a non-positive quantity are silently ignored.
func (s *Store) UpdateQuantity(userID, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userCart := s.findCart(userID)
	if userCart == nil {
		return
	}
	for i := range userCart.Items {
		if userCart.Items[i].ProductID == productID && quantity > 0 {
			userCart.Items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops any line matching the product from the user's cart.
// No cart or no matching line is a no-op, not an error.
func (s *Store) RemoveItem(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userCart := s.findCart(userID)
	if userCart == nil {
		return
	}
	kept := userCart.Items[:0]
	for _, item := range userCart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	userCart.Items = kept
}

// ItemsLocked returns a copy of the user's cart lines. The caller must
// hold the shared lock; the order ledger uses this mid-checkout.
func (s *Store) ItemsLocked(userID string) []models.CartItem {
	userCart := s.findCart(userID)
	if userCart == nil {
		return nil
	}
	items := make([]models.CartItem, len(userCart.Items))
	copy(items, userCart.Items)
	return items
}

// ClearLocked empties the user's cart but keeps the cart record for
// future use. The caller must hold the shared lock for writing.
func (s *Store) ClearLocked(userID string) {
	if userCart := s.findCart(userID); userCart != nil {
		userCart.Items = []models.CartItem{}
	}
}
