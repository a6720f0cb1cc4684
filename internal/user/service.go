// Package user implements the user record store service: resolve-or-create
// semantics over the persistence layer with a read cache in front.
package user

import (
	"context"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
	"github.com/tesmond/QuarterBot_Go/internal/logger"
	"github.com/tesmond/QuarterBot_Go/internal/metrics"
	"github.com/tesmond/QuarterBot_Go/internal/repository"
)

// Service defines the interface for user record operations
type Service interface {
	// GetOrCreate resolves the record for an account, creating it on first
	// contact. At most one record is ever created per ID, even under
	// concurrent first-time invocations.
	GetOrCreate(ctx context.Context, id uint64) (*domain.User, bool, error)

	// Get is the non-creating lookup; returns domain.ErrUserNotFound for
	// accounts never seen.
	Get(ctx context.Context, id uint64) (*domain.User, error)

	// Save persists the full record. Callers serialize saves per ID (the
	// dispatch layer holds a per-account lock around get→mutate→save).
	Save(ctx context.Context, user *domain.User) error
}

// service implements the Service interface
type service struct {
	repo  repository.User
	cache *userCache
}

// NewService creates a new user record service
func NewService(repo repository.User) Service {
	return &service{
		repo:  repo,
		cache: newUserCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) GetOrCreate(ctx context.Context, id uint64) (*domain.User, bool, error) {
	log := logger.FromContext(ctx)

	if cached, ok := s.cache.Get(id); ok {
		return cached, false, nil
	}

	user, created, err := s.repo.GetOrCreate(ctx, id)
	if err != nil {
		log.Error(LogErrFailedToResolveUser, "error", err, "user_id", id)
		return nil, false, err
	}
	if created {
		metrics.UsersCreated.Inc()
		log.Info(LogMsgUserCreated, "user_id", id)
	}

	s.cache.Set(id, user)
	return user, created, nil
}

func (s *service) Get(ctx context.Context, id uint64) (*domain.User, error) {
	if cached, ok := s.cache.Get(id); ok {
		return cached, nil
	}

	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(id, user)
	return user, nil
}

func (s *service) Save(ctx context.Context, user *domain.User) error {
	log := logger.FromContext(ctx)

	if err := s.repo.Save(ctx, user); err != nil {
		// The cached copy may now be ahead of storage; drop it
		s.cache.Invalidate(user.ID)
		log.Error(LogErrFailedToSaveUser, "error", err, "user_id", user.ID)
		return err
	}

	s.cache.Set(user.ID, user)
	return nil
}
