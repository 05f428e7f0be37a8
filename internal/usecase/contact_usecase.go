package usecase

import (
	"context"

	"rolodex/internal/domain/entity"
)

// CreateContactInput defines the data required to create a contact.
type CreateContactInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=100"`
}

// UpdateContactInput replaces all mutable fields of an existing contact.
type UpdateContactInput struct {
	ID        string `json:"-" validate:"required"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=100"`
}

// SearchContactsInput carries the optional filters and paging window for a
// contact search. Page is zero-based.
type SearchContactsInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Page  int    `json:"page" validate:"min=0"`
	Size  int    `json:"size" validate:"min=1,max=100"`
}

// ContactOutput is the outward representation of a contact.
type ContactOutput struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Paging describes the page of a search result. TotalPages is
// ceil(total_matching / size); an empty result set has zero pages.
type Paging struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	Size        int `json:"size"`
}

// SearchContactsOutput is one page of matching contacts plus page metadata.
type SearchContactsOutput struct {
	Contacts []*ContactOutput
	Paging   *Paging
}

// ContactUsecase defines owner-scoped contact operations. The authenticated
// user is always passed explicitly; every lookup is keyed by (owner, id).
type ContactUsecase interface {
	Create(ctx context.Context, user *entity.User, input *CreateContactInput) (*ContactOutput, error)
	Get(ctx context.Context, user *entity.User, id string) (*ContactOutput, error)
	Update(ctx context.Context, user *entity.User, input *UpdateContactInput) (*ContactOutput, error)
	Delete(ctx context.Context, user *entity.User, id string) error
	Search(ctx context.Context, user *entity.User, input *SearchContactsInput) (*SearchContactsOutput, error)
}
