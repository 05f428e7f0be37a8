// Package memory provides an in-memory implementation of the persistence
// contracts. It backs local development without PostgreSQL and doubles as
// the store for usecase and handler tests.
package memory

import (
	"sync"

	"rolodex/internal/domain/entity"
)

// Store holds all in-memory records. Repositories created from the same
// Store share state, mirroring repositories that share one database.
type Store struct {
	mu sync.RWMutex
	// txMu serializes Execute blocks so a read-check-then-write on a user
	// row is never interleaved with another transaction.
	txMu     sync.Mutex
	users    map[string]*entity.User
	contacts map[string]*entity.Contact
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:    make(map[string]*entity.User),
		contacts: make(map[string]*entity.Contact),
	}
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}

	clone := *u
	if u.Token != nil {
		token := *u.Token
		clone.Token = &token
	}
	if u.TokenExpiredAt != nil {
		expiredAt := *u.TokenExpiredAt
		clone.TokenExpiredAt = &expiredAt
	}

	return &clone
}

func cloneContact(c *entity.Contact) *entity.Contact {
	if c == nil {
		return nil
	}

	clone := *c

	return &clone
}
