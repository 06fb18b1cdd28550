package cart

import (
	"sync"
	"testing"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/catalog"
)

func newTestStore() *Store {
	var mu sync.RWMutex
	return NewStore(catalog.New(), &mu)
}

func TestAddItemAccumulatesOneLine(t *testing.T) {
	s := newTestStore()

	for i := 0; i < 3; i++ {
		if err := s.AddItem("u1", "1"); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
	}

	entries := s.View("u1")
	if len(entries) != 1 {
		t.Fatalf("expected a single cart line, got %d", len(entries))
	}
	if entries[0].Product.ID != "1" || entries[0].Quantity != 3 {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestAddItemUnknownProductLeavesCartUntouched(t *testing.T) {
	s := newTestStore()

	if err := s.AddItem("u1", "missing"); err != catalog.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if entries := s.View("u1"); len(entries) != 0 {
		t.Fatalf("cart should still be absent, got %+v", entries)
	}

	// and an existing cart stays unchanged
	if err := s.AddItem("u1", "2"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := s.AddItem("u1", "missing"); err != catalog.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	entries := s.View("u1")
	if len(entries) != 1 || entries[0].Quantity != 1 {
		t.Fatalf("cart changed on failed add: %+v", entries)
	}
}

func TestViewNeverCreatesCart(t *testing.T) {
	s := newTestStore()

	if entries := s.View("ghost"); len(entries) != 0 {
		t.Fatalf("expected empty view, got %+v", entries)
	}
	if s.findCart("ghost") != nil {
		t.Fatal("View created a cart as a side effect")
	}
}

func TestUpdateQuantity(t *testing.T) {
	s := newTestStore()
	if err := s.AddItem("u1", "1"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	s.UpdateQuantity("u1", "1", 5)
	if q := s.View("u1")[0].Quantity; q != 5 {
		t.Fatalf("expected quantity 5, got %d", q)
	}

	// non-positive quantities never change the stored value
	s.UpdateQuantity("u1", "1", 0)
	s.UpdateQuantity("u1", "1", -2)
	if q := s.View("u1")[0].Quantity; q != 5 {
		t.Fatalf("non-positive update changed quantity to %d", q)
	}

	// missing cart and missing line are silent no-ops
	s.UpdateQuantity("ghost", "1", 2)
	s.UpdateQuantity("u1", "3", 2)
	if q := s.View("u1")[0].Quantity; q != 5 {
		t.Fatalf("no-op update changed quantity to %d", q)
	}
}

func TestRemoveItem(t *testing.T) {
	s := newTestStore()
	if err := s.AddItem("u1", "1"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := s.AddItem("u1", "2"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	s.RemoveItem("u1", "1")
	entries := s.View("u1")
	if len(entries) != 1 {
		t.Fatalf("expected one line after removal, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Product.ID == "1" {
			t.Fatal("removed product still present in view")
		}
	}

	// removing again, or from a missing cart, is a no-op
	s.RemoveItem("u1", "1")
	s.RemoveItem("ghost", "1")
	if len(s.View("u1")) != 1 {
		t.Fatal("no-op removal changed the cart")
	}
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	s := newTestStore()
	if err := s.AddItem("u1", "1"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := s.AddItem("u2", "2"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if e := s.View("u1"); len(e) != 1 || e[0].Product.ID != "1" {
		t.Fatalf("u1 cart wrong: %+v", e)
	}
	if e := s.View("u2"); len(e) != 1 || e[0].Product.ID != "2" {
		t.Fatalf("u2 cart wrong: %+v", e)
	}
}
