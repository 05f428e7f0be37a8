package repository

import (
	"context"
	"errors"

	"rolodex/internal/domain/entity"
)

// ErrContactNotFound is returned when a contact does not exist for the given
// owner. A contact owned by another user yields the same error.
var ErrContactNotFound = errors.New("contact not found")

// ContactFilter holds the optional search criteria. Each non-empty field is a
// case-insensitive substring match; Name matches first OR last name. Filters
// are AND-ed together and always combined with the owner.
type ContactFilter struct {
	Name  string
	Email string
	Phone string
}

// ContactRepository defines owner-scoped operations for contact persistence.
// Every lookup takes the owning username as part of the key, so impersonating
// another owner's contact is structurally impossible.
type ContactRepository interface {
	// FindByOwnerAndID retrieves a contact by (owner, id).
	FindByOwnerAndID(ctx context.Context, username, id string) (*entity.Contact, error)

	// Create persists a new contact.
	Create(ctx context.Context, contact *entity.Contact) error

	// Update replaces the mutable fields of an existing contact.
	Update(ctx context.Context, contact *entity.Contact) error

	// Delete removes a contact by (owner, id). Returns ErrContactNotFound
	// when no row matched.
	Delete(ctx context.Context, username, id string) error

	// Search returns one page of the owner's contacts matching the filter,
	// together with the total number of matching rows. Page is zero-based.
	// Results are ordered by first name, then id, for stable paging.
	Search(ctx context.Context, username string, filter ContactFilter, page, size int) ([]*entity.Contact, int64, error)
}
