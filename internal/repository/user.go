package repository

import (
	"context"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

// User defines the interface for user record persistence.
type User interface {
	// GetOrCreate returns the record for the account, creating a zero-valued
	// one if none exists. Creation is atomic at the storage layer: under
	// concurrent first-time invocations for the same ID exactly one record
	// is ever created. The created flag reports whether this call inserted it.
	GetOrCreate(ctx context.Context, id uint64) (*domain.User, bool, error)

	// Get is the non-creating lookup. Returns domain.ErrUserNotFound when
	// the account has never been seen.
	Get(ctx context.Context, id uint64) (*domain.User, error)

	// Save persists the full record. Concurrent saves for different IDs are
	// safe; callers serialize saves for the same ID.
	Save(ctx context.Context, user *domain.User) error
}
