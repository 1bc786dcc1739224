package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rrogerthat/shoppinglist/internal/models"
	"github.com/rrogerthat/shoppinglist/internal/storage"
)

// ListShoppingItems returns every item ordered by insertion.
func (s *SQLiteStore) ListShoppingItems(ctx context.Context) ([]models.ShoppingItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, due_date, checked FROM shopping_items ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping items: %w", err)
	}
	defer rows.Close()

	items := []models.ShoppingItem{}
	for rows.Next() {
		var item models.ShoppingItem
		if err := rows.Scan(&item.ID, &item.Name, &item.DueDate, &item.Checked); err != nil {
			return nil, fmt.Errorf("failed to scan shopping item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shopping items: %w", err)
	}

	return items, nil
}

// GetShoppingItem retrieves an item by ID.
func (s *SQLiteStore) GetShoppingItem(ctx context.Context, id string) (*models.ShoppingItem, error) {
	return getShoppingItem(ctx, s.db, id)
}

// CreateShoppingItem inserts a new item with a generated ID.
func (s *SQLiteStore) CreateShoppingItem(ctx context.Context, item *models.ShoppingItem) error {
	item.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO shopping_items (id, name, due_date, checked) VALUES (?, ?, ?, ?)",
		item.ID, item.Name, item.DueDate, item.Checked,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shopping item: %w", err)
	}

	return nil
}

// UpdateShoppingItem applies the supplied fields inside a transaction.
func (s *SQLiteStore) UpdateShoppingItem(ctx context.Context, id string, in models.ShoppingItemInput) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	item, err := getShoppingItem(ctx, tx, id)
	if err != nil {
		return err
	}
	in.Apply(item)

	_, err = tx.ExecContext(ctx,
		"UPDATE shopping_items SET name = ?, due_date = ?, checked = ? WHERE id = ?",
		item.Name, item.DueDate, item.Checked, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update shopping item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteShoppingItem removes an item by ID.
func (s *SQLiteStore) DeleteShoppingItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM shopping_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete shopping item: %w", err)
	}

	return checkAffected(result, "shopping item", id)
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getShoppingItem(ctx context.Context, q querier, id string) (*models.ShoppingItem, error) {
	item := &models.ShoppingItem{}
	err := q.QueryRowContext(ctx,
		"SELECT id, name, due_date, checked FROM shopping_items WHERE id = ?",
		id,
	).Scan(&item.ID, &item.Name, &item.DueDate, &item.Checked)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("shopping item %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping item: %w", err)
	}

	return item, nil
}

func checkAffected(result sql.Result, kind, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}
