package services

import (
	"context"
	"strconv"
	"testing"

	"jalwa-telegram/db"
	"jalwa-telegram/models"
)

// Validation failures return before touching the pool, so these run without a DB.
func TestAddMenuItemValidation(t *testing.T) {
	ctx := context.Background()
	if _, err := AddMenuItem(ctx, models.MenuItem{Category: "sushi", Name: "X", Price: 1}); err == nil {
		t.Error("expected error for unknown category")
	}
	if _, err := AddMenuItem(ctx, models.MenuItem{Category: models.CategoryMain, Price: 1}); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := AddMenuItem(ctx, models.MenuItem{Category: models.CategoryMain, Name: "X", Price: -1}); err == nil {
		t.Error("expected error for negative price")
	}
}

// Integration tests for the catalog (require DB). Skip if db.Pool is nil or -short.
func TestMenu_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping menu integration test in short mode")
	}
	if db.Pool == nil {
		t.Skip("skipping menu integration test: no DB pool")
	}
	ctx := context.Background()

	id, err := AddMenuItem(ctx, models.MenuItem{
		Category:     models.CategoryDrink,
		Name:         "Test Lassi",
		Description:  "test row",
		Price:        3.5,
		IsVegetarian: true,
		IsGlutenFree: true,
	})
	if err != nil {
		t.Fatalf("AddMenuItem: %v", err)
	}
	defer func() {
		_ = DeleteMenuItem(ctx, id)
	}()

	item, err := GetMenuItem(ctx, strconv.FormatInt(id, 10))
	if err != nil {
		t.Fatalf("GetMenuItem: %v", err)
	}
	if item.Name != "Test Lassi" || item.Price != 3.5 || !item.IsVegetarian || !item.IsGlutenFree {
		t.Errorf("round-trip mismatch: %+v", item)
	}

	items, err := ListMenuByCategory(ctx, models.CategoryDrink)
	if err != nil {
		t.Fatalf("ListMenuByCategory: %v", err)
	}
	found := false
	for _, it := range items {
		if it.ID == item.ID {
			found = true
		}
	}
	if !found {
		t.Error("added item missing from category listing")
	}

	if err := DeleteMenuItem(ctx, id); err != nil {
		t.Fatalf("DeleteMenuItem: %v", err)
	}
}
