package orders

import (
	"bytes"
	"sync"
	"testing"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/cart"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/catalog"
)

func newTestLedger() (*Ledger, *cart.Store) {
	var mu sync.RWMutex
	cat := catalog.New()
	carts := cart.NewStore(cat, &mu)
	return NewLedger(carts, cat, &mu), carts
}

func TestPlaceEmptyCart(t *testing.T) {
	ledger, carts := newTestLedger()

	// absent cart
	if _, err := ledger.Place("u1"); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart for absent cart, got %v", err)
	}

	// present but emptied cart
	if err := carts.AddItem("u1", "1"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	carts.RemoveItem("u1", "1")
	if _, err := ledger.Place("u1"); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart for emptied cart, got %v", err)
	}

	if got := ledger.List("u1"); len(got) != 0 {
		t.Fatalf("failed placements appended to the ledger: %+v", got)
	}
}

func TestPlaceSnapshotsCartAndClearsIt(t *testing.T) {
	ledger, carts := newTestLedger()

	// 2x Laptop at 999.99 — the classic float trap, exact with decimals
	if err := carts.AddItem("u1", "1"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := carts.AddItem("u1", "1"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	order, err := ledger.Place("u1")
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	if order.Total != "1999.98" {
		t.Fatalf("expected total 1999.98, got %s", order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].Product.ID != "1" || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected order items: %+v", order.Items)
	}
	if order.ID == "" || order.UserID != "u1" || order.Date.IsZero() {
		t.Fatalf("order metadata incomplete: %+v", order)
	}

	if entries := carts.View("u1"); len(entries) != 0 {
		t.Fatalf("cart not cleared after placement: %+v", entries)
	}

	listed := ledger.List("u1")
	if len(listed) != 1 || listed[0].ID != order.ID {
		t.Fatalf("ledger does not contain the placed order: %+v", listed)
	}
}

func TestPlaceMultiLineTotal(t *testing.T) {
	ledger, carts := newTestLedger()

	if err := carts.AddItem("u1", "2"); err != nil { // 499.99
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := carts.AddItem("u1", "3"); err != nil { // 79.99
		t.Fatalf("AddItem failed: %v", err)
	}
	carts.UpdateQuantity("u1", "3", 3)

	order, err := ledger.Place("u1")
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	// 499.99 + 3*79.99 = 739.96
	if order.Total != "739.96" {
		t.Fatalf("expected total 739.96, got %s", order.Total)
	}
}

func TestPriorOrdersUnaltered(t *testing.T) {
	ledger, carts := newTestLedger()

	if err := carts.AddItem("u1", "1"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	first, err := ledger.Place("u1")
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	if err := carts.AddItem("u1", "2"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := ledger.Place("u1"); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	listed := ledger.List("u1")
	if len(listed) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(listed))
	}
	if listed[0].ID != first.ID || listed[0].Total != first.Total {
		t.Fatalf("first order altered by second placement: %+v", listed[0])
	}
}

func TestListFiltersByUser(t *testing.T) {
	ledger, carts := newTestLedger()

	if err := carts.AddItem("u1", "1"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := carts.AddItem("u2", "2"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := ledger.Place("u1"); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if _, err := ledger.Place("u2"); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	for _, userID := range []string{"u1", "u2"} {
		listed := ledger.List(userID)
		if len(listed) != 1 || listed[0].UserID != userID {
			t.Fatalf("bad listing for %s: %+v", userID, listed)
		}
	}
	if listed := ledger.List("ghost"); len(listed) != 0 {
		t.Fatalf("expected no orders for unknown user, got %+v", listed)
	}
}

func TestGet(t *testing.T) {
	ledger, carts := newTestLedger()

	if err := carts.AddItem("u1", "1"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	order, err := ledger.Place("u1")
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	if _, err := ledger.Get("u1", order.ID); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if _, err := ledger.Get("u2", order.ID); err != ErrNotFound {
		t.Fatalf("another user's lookup should miss, got %v", err)
	}
	if _, err := ledger.Get("u1", "nope"); err != ErrNotFound {
		t.Fatalf("unknown id should miss, got %v", err)
	}
}

func TestBuildReceiptPDF(t *testing.T) {
	ledger, carts := newTestLedger()

	if err := carts.AddItem("u1", "1"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	order, err := ledger.Place("u1")
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	pdfBytes, err := BuildReceiptPDF(order)
	if err != nil {
		t.Fatalf("BuildReceiptPDF failed: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdfBytes[:8])
	}
}
