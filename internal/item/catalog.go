package item

import (
	"context"
	"fmt"
	"sort"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
	"github.com/tesmond/QuarterBot_Go/internal/repository"
)

// Catalog is the read-only in-memory view of the item catalog, built once
// at boot after the definitions are synced to storage. Item values are
// copied out, never aliased.
type Catalog struct {
	byID   map[int]domain.Item
	byName map[string]domain.Item
}

// LoadCatalog builds the in-memory catalog from storage.
func LoadCatalog(ctx context.Context, repo repository.Item) (*Catalog, error) {
	items, err := repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	c := &Catalog{
		byID:   make(map[int]domain.Item, len(items)),
		byName: make(map[string]domain.Item, len(items)),
	}
	for _, it := range items {
		c.byID[it.ID] = it
		c.byName[it.Name] = it
	}
	return c, nil
}

// NewCatalog builds a catalog directly from item values (used in tests).
func NewCatalog(items []domain.Item) *Catalog {
	c := &Catalog{
		byID:   make(map[int]domain.Item, len(items)),
		byName: make(map[string]domain.Item, len(items)),
	}
	for _, it := range items {
		c.byID[it.ID] = it
		c.byName[it.Name] = it
	}
	return c
}

// ByID returns the catalog entry with the given ID.
func (c *Catalog) ByID(id int) (domain.Item, error) {
	it, ok := c.byID[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
	}
	return it, nil
}

// ByName returns the catalog entry with the given name.
func (c *Catalog) ByName(name string) (domain.Item, error) {
	it, ok := c.byName[name]
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	return it, nil
}

// All returns every catalog entry ordered by ID.
func (c *Catalog) All() []domain.Item {
	items := make([]domain.Item, 0, len(c.byID))
	for _, it := range c.byID {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Size returns the number of catalog entries.
func (c *Catalog) Size() int {
	return len(c.byID)
}
