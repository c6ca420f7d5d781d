package services

import (
	"context"
	"testing"

	"jalwa-telegram/db"
)

func TestCartAddItem(t *testing.T) {
	cart := &Cart{}

	cart.AddItem(CartItem{ID: "13", Name: "Mango Lassi", Price: 6.5, Qty: 1, Category: "drink"})
	if len(cart.Items) != 1 || cart.ItemsTotal != 6.5 {
		t.Fatalf("after first add: items=%d total=%v", len(cart.Items), cart.ItemsTotal)
	}

	// Same item merges into one line with a bumped quantity.
	cart.AddItem(CartItem{ID: "13", Name: "Mango Lassi", Price: 6.5, Qty: 1, Category: "drink"})
	if len(cart.Items) != 1 {
		t.Errorf("duplicate add should merge, got %d lines", len(cart.Items))
	}
	if cart.Items[0].Qty != 2 {
		t.Errorf("qty = %d, want 2", cart.Items[0].Qty)
	}
	if cart.ItemsTotal != 13 {
		t.Errorf("total = %v, want 13", cart.ItemsTotal)
	}

	cart.AddItem(CartItem{ID: "11", Name: "Garlic Naan", Price: 5, Qty: 1, Category: "bread"})
	if len(cart.Items) != 2 || cart.ItemsTotal != 18 {
		t.Errorf("after second item: items=%d total=%v", len(cart.Items), cart.ItemsTotal)
	}
}

func TestCartRecalculate(t *testing.T) {
	cart := &Cart{Items: []CartItem{
		{ID: "4", Price: 18.5, Qty: 2},
		{ID: "11", Price: 5, Qty: 1},
	}}
	cart.Recalculate()
	if cart.ItemsTotal != 42 {
		t.Errorf("ItemsTotal = %v, want 42", cart.ItemsTotal)
	}
}

// Integration tests for cart persistence (require DB). Skip if db.Pool is nil or -short.
func TestCart_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping cart integration test in short mode")
	}
	if db.Pool == nil {
		t.Skip("skipping cart integration test: no DB pool")
	}
	ctx := context.Background()
	const testUserID int64 = 999999998

	defer func() {
		_ = DeleteCart(ctx, testUserID)
	}()

	cart := &Cart{}
	cart.AddItem(CartItem{ID: "13", Name: "Mango Lassi", Price: 6.5, Qty: 1, Category: "drink"})
	if err := SaveCart(ctx, testUserID, cart); err != nil {
		t.Fatalf("SaveCart: %v", err)
	}

	loaded, err := GetCart(ctx, testUserID)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if len(loaded.Items) != 1 || loaded.ItemsTotal != 6.5 {
		t.Errorf("loaded cart: items=%d total=%v, want 1 item total 6.5", len(loaded.Items), loaded.ItemsTotal)
	}

	if err := DeleteCart(ctx, testUserID); err != nil {
		t.Fatalf("DeleteCart: %v", err)
	}
	loaded, err = GetCart(ctx, testUserID)
	if err != nil {
		t.Fatalf("GetCart after delete: %v", err)
	}
	if len(loaded.Items) != 0 {
		t.Errorf("cart should be empty after delete, got %d items", len(loaded.Items))
	}
}
