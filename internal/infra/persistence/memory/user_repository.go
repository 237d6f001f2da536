// Package memory contains thread-safe, map-backed implementations of the
// persistence contracts. It is the default store for development and tests;
// the postgres package provides the durable production implementation.
package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository in memory. An
// insertion-order index keeps FindAll deterministic.
type userRepository struct {
	mu    sync.RWMutex
	users map[string]entity.User
	order []string
}

// NewUserRepository is the constructor for the in-memory user repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{users: make(map[string]entity.User)}
}

// Create stores the user under a freshly generated ID.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	repo.users[user.ID] = *user
	repo.order = append(repo.order, user.ID)

	return nil
}

// FindByID retrieves a user by ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

// FindAll returns every stored user in creation order.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.User, 0, len(repo.users))
	for _, id := range repo.order {
		user := repo.users[id]
		out = append(out, &user)
	}

	return out, nil
}
