package services

import (
	"context"
	"encoding/json"
	"fmt"

	"jalwa-telegram/db"
)

type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Qty      int     `json:"qty"`
	Category string  `json:"category"`
}

type Cart struct {
	Items      []CartItem `json:"items"`
	ItemsTotal float64    `json:"items_total"`
}

func (c *Cart) Recalculate() {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Qty)
	}
	c.ItemsTotal = total
}

// AddItem merges by menu item id, bumping quantity for repeats.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Qty += item.Qty
			c.Recalculate()
			return
		}
	}
	c.Items = append(c.Items, item)
	c.Recalculate()
}

func GetCart(ctx context.Context, userID int64) (*Cart, error) {
	var itemsJSON []byte
	var itemsTotal float64
	err := db.Pool.QueryRow(ctx, `
		SELECT items, items_total FROM carts WHERE user_id = $1`,
		userID,
	).Scan(&itemsJSON, &itemsTotal)
	if err != nil {
		// Cart doesn't exist, return empty cart
		return &Cart{Items: []CartItem{}, ItemsTotal: 0}, nil
	}

	var items []CartItem
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cart items: %w", err)
		}
	}
	return &Cart{Items: items, ItemsTotal: itemsTotal}, nil
}

func SaveCart(ctx context.Context, userID int64, cart *Cart) error {
	itemsJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart items: %w", err)
	}

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO carts (user_id, items, items_total, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE SET
			items = $2,
			items_total = $3,
			updated_at = now()`,
		userID, itemsJSON, cart.ItemsTotal,
	)
	return err
}

func DeleteCart(ctx context.Context, userID int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	return err
}
