package services

import (
	"context"
	"fmt"
	"strconv"

	"jalwa-telegram/db"
	"jalwa-telegram/models"

	"github.com/jackc/pgx/v5"
)

func scanMenuRows(rows pgx.Rows) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for rows.Next() {
		var id int64
		var item models.MenuItem
		if err := rows.Scan(&id, &item.Category, &item.Name, &item.Description, &item.Price,
			&item.IsVegan, &item.IsVegetarian, &item.IsGlutenFree); err != nil {
			return nil, err
		}
		item.ID = strconv.FormatInt(id, 10)
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListAllMenu returns the full catalog in catalog order. The assistant takes
// this as its read-only snapshot: dietary shortlists and fuzzy tie-breaks
// both depend on the id ordering.
func ListAllMenu(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, category, name, description, price,
		       is_vegan, is_vegetarian, is_gluten_free
		FROM menu_items
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuRows(rows)
}

func ListMenuByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, category, name, description, price,
		       is_vegan, is_vegetarian, is_gluten_free
		FROM menu_items
		WHERE category = $1
		ORDER BY id`,
		category,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuRows(rows)
}

func AddMenuItem(ctx context.Context, item models.MenuItem) (int64, error) {
	if !models.ValidCategory(item.Category) {
		return 0, fmt.Errorf("invalid category: %s", item.Category)
	}
	if item.Name == "" {
		return 0, fmt.Errorf("name is required")
	}
	if item.Price < 0 {
		return 0, fmt.Errorf("price must be >= 0")
	}

	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO menu_items (category, name, description, price, is_vegan, is_vegetarian, is_gluten_free)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		item.Category, item.Name, item.Description, item.Price,
		item.IsVegan, item.IsVegetarian, item.IsGlutenFree,
	).Scan(&id)
	return id, err
}

func GetMenuItem(ctx context.Context, idStr string) (*models.MenuItem, error) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, err
	}
	item := models.MenuItem{ID: idStr}
	err = db.Pool.QueryRow(ctx, `
		SELECT category, name, description, price,
		       is_vegan, is_vegetarian, is_gluten_free
		FROM menu_items WHERE id = $1`, id,
	).Scan(&item.Category, &item.Name, &item.Description, &item.Price,
		&item.IsVegan, &item.IsVegetarian, &item.IsGlutenFree)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func DeleteMenuItem(ctx context.Context, id int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	return err
}
