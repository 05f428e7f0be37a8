package impl

import (
	"context"
	"log/slog"

	deliverycontext "rolodex/internal/delivery/context"
	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	"rolodex/internal/domain/service"
	"rolodex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	validator   service.RequestValidator
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Validator   service.RequestValidator
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		validator:   params.Validator,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new contact owned by the caller.
func (srv *contactService) Create(ctx context.Context, user *entity.User, input *usecase.CreateContactInput) (*usecase.ContactOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.Wrap(err, "invalid contact request")
	}

	contact := &entity.Contact{
		ID:        uuid.NewString(),
		Username:  user.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		srv.log(ctx).Error("Failed to create contact", slog.String("username", user.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create contact")
	}
	srv.log(ctx).Debug("Contact created", slog.String("username", user.Username), slog.String("contactID", contact.ID))

	return toContactOutput(contact), nil
}

// Get retrieves one of the caller's contacts. A contact owned by another
// user yields the same not-found error as a nonexistent id.
func (srv *contactService) Get(ctx context.Context, user *entity.User, id string) (*usecase.ContactOutput, error) {
	contact, err := srv.findOwned(ctx, user, id)
	if err != nil {
		return nil, err
	}

	return toContactOutput(contact), nil
}

// Update replaces all mutable fields of one of the caller's contacts.
func (srv *contactService) Update(ctx context.Context, user *entity.User, input *usecase.UpdateContactInput) (*usecase.ContactOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.Wrap(err, "invalid contact request")
	}

	contact, err := srv.findOwned(ctx, user, input.ID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = input.FirstName
	contact.LastName = input.LastName
	contact.Email = input.Email
	contact.Phone = input.Phone

	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		srv.log(ctx).Error("Failed to update contact", slog.String("username", user.Username), slog.String("contactID", contact.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update contact")
	}

	return toContactOutput(contact), nil
}

// Delete permanently removes one of the caller's contacts.
func (srv *contactService) Delete(ctx context.Context, user *entity.User, id string) error {
	if err := srv.contactRepo.Delete(ctx, user.Username, id); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return errors.Wrap(domainerrors.ErrContactNotFound, "contact not found")
		}
		srv.log(ctx).Error("Failed to delete contact", slog.String("username", user.Username), slog.String("contactID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete contact")
	}
	srv.log(ctx).Debug("Contact deleted", slog.String("username", user.Username), slog.String("contactID", id))

	return nil
}

// Search returns one page of the caller's contacts matching the filters.
// Every supplied filter is a case-insensitive substring match; the name
// filter matches either the first or the last name.
func (srv *contactService) Search(ctx context.Context, user *entity.User, input *usecase.SearchContactsInput) (*usecase.SearchContactsOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.Wrap(err, "invalid search request")
	}

	filter := repository.ContactFilter{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}

	contacts, total, err := srv.contactRepo.Search(ctx, user.Username, filter, input.Page, input.Size)
	if err != nil {
		srv.log(ctx).Error("Contact search failed", slog.String("username", user.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search contacts")
	}

	outputs := make([]*usecase.ContactOutput, 0, len(contacts))
	for _, contact := range contacts {
		outputs = append(outputs, toContactOutput(contact))
	}

	return &usecase.SearchContactsOutput{
		Contacts: outputs,
		Paging: &usecase.Paging{
			CurrentPage: input.Page,
			TotalPages:  totalPages(total, input.Size),
			Size:        input.Size,
		},
	}, nil
}

func (srv *contactService) findOwned(ctx context.Context, user *entity.User, id string) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByOwnerAndID(ctx, user.Username, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, errors.Wrap(domainerrors.ErrContactNotFound, "contact not found")
		}

		return nil, errors.Wrap(err, "failed to find contact")
	}

	return contact, nil
}

// totalPages is ceil(total/size); an empty result set has zero pages.
func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}

	return int((total + int64(size) - 1) / int64(size))
}

func toContactOutput(contact *entity.Contact) *usecase.ContactOutput {
	return &usecase.ContactOutput{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
