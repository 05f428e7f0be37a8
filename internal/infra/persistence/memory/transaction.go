package memory

import (
	"context"

	"rolodex/internal/domain/repository"
)

// memoryTransactionManager serializes Execute blocks against the shared
// store. There is no rollback: like the SQL implementation it only has to
// guarantee that two read-check-then-write sequences never interleave.
type memoryTransactionManager struct {
	store *Store
}

// memoryRepositoryFactory hands out repositories bound to the shared store.
type memoryRepositoryFactory struct {
	store *Store
}

// UserRepo returns a user repository bound to the store.
func (f *memoryRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.store)
}

// ContactRepo returns a contact repository bound to the store.
func (f *memoryRepositoryFactory) ContactRepo() repository.ContactRepository {
	return NewContactRepository(f.store)
}

// NewTransactionManager is the constructor for memoryTransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &memoryTransactionManager{store: store}
}

// Execute runs fn while holding the store's transaction mutex.
func (tm *memoryTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	return fn(&memoryRepositoryFactory{store: tm.store})
}
