package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"rolodex/internal/domain/entity"
	"rolodex/internal/domain/repository"
)

// contactRepository implements repository.ContactRepository over the shared Store.
type contactRepository struct {
	store *Store
}

// NewContactRepository is the constructor for the in-memory contact repository.
func NewContactRepository(store *Store) repository.ContactRepository {
	return &contactRepository{store: store}
}

func (repo *contactRepository) FindByOwnerAndID(_ context.Context, username, id string) (*entity.Contact, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	contact, ok := repo.store.contacts[id]
	if !ok || contact.Username != username {
		return nil, repository.ErrContactNotFound
	}

	return cloneContact(contact), nil
}

func (repo *contactRepository) Create(_ context.Context, contact *entity.Contact) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	repo.store.contacts[contact.ID] = cloneContact(contact)

	return nil
}

func (repo *contactRepository) Update(_ context.Context, contact *entity.Contact) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	existing, ok := repo.store.contacts[contact.ID]
	if !ok || existing.Username != contact.Username {
		return repository.ErrContactNotFound
	}

	contact.UpdatedAt = time.Now()
	repo.store.contacts[contact.ID] = cloneContact(contact)

	return nil
}

func (repo *contactRepository) Delete(_ context.Context, username, id string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	contact, ok := repo.store.contacts[id]
	if !ok || contact.Username != username {
		return repository.ErrContactNotFound
	}

	delete(repo.store.contacts, id)

	return nil
}

// Search applies the same semantics as the SQL implementation: each supplied
// filter is a case-insensitive substring match, the name filter matches
// first OR last name, results are ordered by (first name, id) and paged.
func (repo *contactRepository) Search(_ context.Context, username string, filter repository.ContactFilter, page, size int) ([]*entity.Contact, int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var matching []*entity.Contact
	for _, contact := range repo.store.contacts {
		if contact.Username != username {
			continue
		}
		if !matchesFilter(contact, filter) {
			continue
		}
		matching = append(matching, cloneContact(contact))
	}

	sort.Slice(matching, func(i, j int) bool {
		if matching[i].FirstName != matching[j].FirstName {
			return matching[i].FirstName < matching[j].FirstName
		}

		return matching[i].ID < matching[j].ID
	})

	total := int64(len(matching))

	start := page * size
	if start >= len(matching) {
		return []*entity.Contact{}, total, nil
	}
	end := start + size
	if end > len(matching) {
		end = len(matching)
	}

	return matching[start:end], total, nil
}

func matchesFilter(contact *entity.Contact, filter repository.ContactFilter) bool {
	if filter.Name != "" &&
		!containsFold(contact.FirstName, filter.Name) &&
		!containsFold(contact.LastName, filter.Name) {
		return false
	}
	if filter.Email != "" && !containsFold(contact.Email, filter.Email) {
		return false
	}
	if filter.Phone != "" && !containsFold(contact.Phone, filter.Phone) {
		return false
	}

	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
