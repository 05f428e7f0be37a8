package memory

import (
	"context"
	"time"

	"rolodex/internal/domain/entity"
	"rolodex/internal/domain/repository"
)

// userRepository implements repository.UserRepository over the shared Store.
type userRepository struct {
	store *Store
}

// NewUserRepository is the constructor for the in-memory user repository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	user, ok := repo.store.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (repo *userRepository) FindByToken(_ context.Context, token string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, user := range repo.store.users {
		if user.Token != nil && *user.Token == token {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	repo.store.users[user.Username] = cloneUser(user)

	return nil
}

func (repo *userRepository) Update(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.users[user.Username]; !ok {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = time.Now()
	repo.store.users[user.Username] = cloneUser(user)

	return nil
}
