package user

import (
	"context"
	"fmt"
	"sync"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.User
// for integration-style unit tests. Its insert-if-absent is atomic under the
// internal mutex, mirroring the guarantee the real store provides.
type FakeRepository struct {
	mu    sync.Mutex
	users map[uint64]*domain.User

	// FailNextSaves makes the next N Save calls fail with ErrStoreUnavailable
	FailNextSaves int
	// FailNextGets makes the next N GetOrCreate/Get calls fail with ErrStoreUnavailable
	FailNextGets int

	// Creations counts how many records GetOrCreate actually inserted
	Creations int
	// Saves counts successful Save calls
	Saves int
}

// NewFakeRepository creates an empty fake store.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{users: make(map[uint64]*domain.User)}
}

func (f *FakeRepository) GetOrCreate(ctx context.Context, id uint64) (*domain.User, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailNextGets > 0 {
		f.FailNextGets--
		return nil, false, fmt.Errorf("%w: fake outage", domain.ErrStoreUnavailable)
	}

	if existing, ok := f.users[id]; ok {
		return existing.Clone(), false, nil
	}
	fresh := domain.NewUser(id)
	f.users[id] = fresh.Clone()
	f.Creations++
	return fresh, true, nil
}

func (f *FakeRepository) Get(ctx context.Context, id uint64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailNextGets > 0 {
		f.FailNextGets--
		return nil, fmt.Errorf("%w: fake outage", domain.ErrStoreUnavailable)
	}

	existing, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, id)
	}
	return existing.Clone(), nil
}

func (f *FakeRepository) Save(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailNextSaves > 0 {
		f.FailNextSaves--
		return fmt.Errorf("%w: fake outage", domain.ErrStoreUnavailable)
	}

	f.users[user.ID] = user.Clone()
	f.Saves++
	return nil
}

// Stored returns a copy of the persisted record, for assertions.
func (f *FakeRepository) Stored(id uint64) (*domain.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, false
	}
	return u.Clone(), true
}
