package repository

import (
	"context"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

// Item defines the interface for the read-mostly item catalog.
type Item interface {
	GetItemByID(ctx context.Context, id int) (*domain.Item, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)

	// UpsertItems syncs catalog definitions into storage at boot. Returns
	// the number of rows written.
	UpsertItems(ctx context.Context, items []domain.Item) (int, error)
}
