package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

// UserRepository implements the user record store for PostgreSQL. Each
// record is one JSONB document keyed by account ID.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreate returns the record for the account, inserting a zero-valued
// one first if absent. The insert-if-absent is a single ON CONFLICT DO
// NOTHING statement, so concurrent first-time invocations for the same ID
// race at the database and exactly one wins.
func (r *UserRepository) GetOrCreate(ctx context.Context, id uint64) (*domain.User, bool, error) {
	fresh := domain.NewUser(id)
	payload, err := json.Marshal(fresh)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode user record: %w", err)
	}

	query := `
		INSERT INTO users (user_id, record)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, int64(id), payload)
	if err != nil {
		return nil, false, fmt.Errorf("%w: insert user %d: %v", domain.ErrStoreUnavailable, id, err)
	}

	if tag.RowsAffected() == 1 {
		return fresh, true, nil
	}

	// Lost the race or the record already existed: read whichever record won.
	user, err := r.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return user, false, nil
}

// Get is the non-creating lookup.
func (r *UserRepository) Get(ctx context.Context, id uint64) (*domain.User, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT record FROM users WHERE user_id = $1`, int64(id)).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("%w: get user %d: %v", domain.ErrStoreUnavailable, id, err)
	}

	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("%w: user %d: %v", domain.ErrStoreCorrupt, id, err)
	}
	if err := validateRecord(id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Save persists the full record, creating the row if it went missing.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}

	query := `
		INSERT INTO users (user_id, record)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET record = EXCLUDED.record, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, int64(user.ID), payload); err != nil {
		return fmt.Errorf("%w: save user %d: %v", domain.ErrStoreUnavailable, user.ID, err)
	}
	return nil
}

// validateRecord rejects loaded records that violate the data model. Such
// records are never auto-repaired; the error is surfaced to the operator.
func validateRecord(id uint64, user *domain.User) error {
	switch {
	case user.ID != id:
		return fmt.Errorf("%w: user %d: record carries id %d", domain.ErrStoreCorrupt, id, user.ID)
	case user.XP < 0:
		return fmt.Errorf("%w: user %d: negative xp", domain.ErrStoreCorrupt, id)
	case user.Balance < 0 || user.Cash < 0:
		return fmt.Errorf("%w: user %d: negative funds", domain.ErrStoreCorrupt, id)
	}

	owned := make(map[int]int, len(user.Inventory))
	for _, it := range user.Inventory {
		owned[it.ID]++
	}
	categories := make(map[string]bool, len(user.Equipped))
	for _, it := range user.Equipped {
		if owned[it.ID] == 0 {
			return fmt.Errorf("%w: user %d: equipped item %d not owned", domain.ErrStoreCorrupt, id, it.ID)
		}
		if categories[it.Category] {
			return fmt.Errorf("%w: user %d: duplicate equipped category %q", domain.ErrStoreCorrupt, id, it.Category)
		}
		categories[it.Category] = true
	}
	return nil
}
