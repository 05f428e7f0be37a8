package memory

import (
	"context"
	"fmt"
	"testing"

	"rolodex/internal/domain/entity"
	"rolodex/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedContact(t *testing.T, repo repository.ContactRepository, username, id, first, last, email, phone string) {
	t.Helper()

	err := repo.Create(context.Background(), &entity.Contact{
		ID:        id,
		Username:  username,
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     phone,
	})
	require.NoError(t, err)
}

func TestContactRepository_SearchOrderIsDeterministic(t *testing.T) {
	repo := NewContactRepository(New())

	seedContact(t, repo, "john", "c3", "Budi", "", "", "")
	seedContact(t, repo, "john", "c1", "Budi", "", "", "")
	seedContact(t, repo, "john", "c2", "Agus", "", "", "")

	contacts, total, err := repo.Search(context.Background(), "john", repository.ContactFilter{}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	// Ordered by first name, then id, so repeated queries page identically.
	require.Len(t, contacts, 3)
	assert.Equal(t, "c2", contacts[0].ID)
	assert.Equal(t, "c1", contacts[1].ID)
	assert.Equal(t, "c3", contacts[2].ID)
}

func TestContactRepository_SearchScopesByOwner(t *testing.T) {
	repo := NewContactRepository(New())

	seedContact(t, repo, "john", "c1", "Eko", "", "", "")
	seedContact(t, repo, "jane", "c2", "Eko", "", "", "")

	contacts, total, err := repo.Search(context.Background(), "john", repository.ContactFilter{Name: "eko"}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, contacts, 1)
	assert.Equal(t, "c1", contacts[0].ID)
}

func TestContactRepository_SearchPageBeyondEnd(t *testing.T) {
	repo := NewContactRepository(New())

	for i := 0; i < 5; i++ {
		seedContact(t, repo, "john", fmt.Sprintf("c%d", i), "Eko", "", "", "")
	}

	contacts, total, err := repo.Search(context.Background(), "john", repository.ContactFilter{}, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total, "total counts all matches, not just the page")
	assert.Empty(t, contacts)
}

func TestContactRepository_ReturnsClones(t *testing.T) {
	repo := NewContactRepository(New())

	seedContact(t, repo, "john", "c1", "Eko", "", "", "")

	found, err := repo.FindByOwnerAndID(context.Background(), "john", "c1")
	require.NoError(t, err)

	// Mutating the returned entity must not leak into the store.
	found.FirstName = "Changed"

	again, err := repo.FindByOwnerAndID(context.Background(), "john", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Eko", again.FirstName)
}

func TestContactRepository_DeleteIsOwnerScoped(t *testing.T) {
	repo := NewContactRepository(New())

	seedContact(t, repo, "john", "c1", "Eko", "", "", "")

	err := repo.Delete(context.Background(), "jane", "c1")
	assert.ErrorIs(t, err, repository.ErrContactNotFound)

	_, err = repo.FindByOwnerAndID(context.Background(), "john", "c1")
	assert.NoError(t, err)
}
