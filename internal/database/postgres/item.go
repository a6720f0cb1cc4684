package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

// ItemRepository implements the item catalog for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = "item_id, item_name, item_description, category, image, price, rarity"

// GetItemByID returns a catalog entry by integer ID
func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE item_id = $1`, id)
	return scanItem(row, fmt.Sprintf("id %d", id))
}

// GetItemByName returns a catalog entry by its unique name
func (r *ItemRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE item_name = $1`, name)
	return scanItem(row, name)
}

// ListItems returns the full catalog ordered by ID
func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("%w: list items: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Category, &it.Image, &it.Price, &it.Rarity); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list items: %v", domain.ErrStoreUnavailable, err)
	}
	return items, nil
}

// UpsertItems syncs catalog definitions into the items table
func (r *ItemRepository) UpsertItems(ctx context.Context, items []domain.Item) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: begin catalog sync: %v", domain.ErrStoreUnavailable, err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO items (item_id, item_name, item_description, category, image, price, rarity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (item_id) DO UPDATE
		SET item_name = EXCLUDED.item_name,
		    item_description = EXCLUDED.item_description,
		    category = EXCLUDED.category,
		    image = EXCLUDED.image,
		    price = EXCLUDED.price,
		    rarity = EXCLUDED.rarity
	`
	written := 0
	for _, it := range items {
		if _, err := tx.Exec(ctx, query, it.ID, it.Name, it.Description, it.Category, it.Image, it.Price, it.Rarity); err != nil {
			return 0, fmt.Errorf("failed to upsert item %q: %w", it.Name, err)
		}
		written++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%w: commit catalog sync: %v", domain.ErrStoreUnavailable, err)
	}
	return written, nil
}

func scanItem(row pgx.Row, ref string) (*domain.Item, error) {
	var it domain.Item
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Category, &it.Image, &it.Price, &it.Rarity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, ref)
		}
		return nil, fmt.Errorf("%w: get item %s: %v", domain.ErrStoreUnavailable, ref, err)
	}
	return &it, nil
}
