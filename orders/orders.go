package orders

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/cart"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/catalog"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/models"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNotFound  = errors.New("order not found")
)

// Ledger is the append-only collection of placed orders. It shares its
// mutex with the cart store: Place holds the write lock across reading
// the cart, appending the order and clearing the cart, so no caller can
// observe one effect without the other.
type Ledger struct {
	mu      *sync.RWMutex
	carts   *cart.Store
	catalog *catalog.Catalog
	orders  []models.Order
}

func NewLedger(carts *cart.Store, cat *catalog.Catalog, mu *sync.RWMutex) *Ledger {
	return &Ledger{mu: mu, carts: carts, catalog: cat}
}

// Place turns the user's cart into an order and clears the cart. Line
// totals are summed as exact decimals and rendered to a fixed two-decimal
// string, so 999.99 x 2 is "1999.98" and never a float artifact.
func (l *Ledger) Place(userID string) (models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := l.carts.ItemsLocked(userID)
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := l.catalog.Get(item.ProductID)
		if err != nil {
			// cart lines were validated against the immutable catalog
			continue
		}
		line := decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
		orderItems = append(orderItems, models.OrderItem{Product: product, Quantity: item.Quantity})
	}

	order := models.Order{
		ID:     uuid.NewString(),
		UserID: userID,
		Items:  orderItems,
		Total:  total.StringFixed(2),
		Date:   time.Now(),
	}

	l.orders = append(l.orders, order)
	l.carts.ClearLocked(userID)

	return order, nil
}

// List returns the user's orders in placement order.
func (l *Ledger) List(userID string) []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []models.Order{}
	for _, o := range l.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// Get looks up one of the user's orders by id.
func (l *Ledger) Get(userID, orderID string) (models.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, o := range l.orders {
		if o.ID == orderID && o.UserID == userID {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}
