package postgres

import (
	"context"

	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	"rolodex/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the domain.ContactRepository interface using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// FindByOwnerAndID retrieves a contact by its composite (owner, id) key.
// A contact owned by another user is indistinguishable from a missing one.
func (repo *contactRepository) FindByOwnerAndID(ctx context.Context, username, id string) (*entity.Contact, error) {
	var contactM model.ContactModel

	err := repo.db.WithContext(ctx).
		Where("username = ? AND id = ?", username, id).
		First(&contactM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact")
	}

	return toContactDomain(&contactM), nil
}

// Create persists a new contact.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required contact information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// Update replaces the mutable fields of an existing contact.
func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)
	contactM.CreatedAt = contact.CreatedAt

	if err := repo.db.WithContext(ctx).Save(contactM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update contact")
	}

	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// Delete removes a contact by (owner, id). Zero affected rows means the
// contact did not exist for this owner.
func (repo *contactRepository) Delete(ctx context.Context, username, id string) error {
	result := repo.db.WithContext(ctx).
		Where("username = ? AND id = ?", username, id).
		Delete(&model.ContactModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete contact")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// Search returns one page of the owner's contacts matching the filter plus
// the total number of matching rows. Every supplied filter becomes a
// case-insensitive substring condition; the name filter matches first OR
// last name. Ordering by (first_name, id) keeps paging stable.
func (repo *contactRepository) Search(ctx context.Context, username string, filter repository.ContactFilter, page, size int) ([]*entity.Contact, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("username = ?", username)

	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern)
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", "%"+filter.Email+"%")
	}
	if filter.Phone != "" {
		query = query.Where("phone ILIKE ?", "%"+filter.Phone+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count contacts")
	}

	var contactModels []*model.ContactModel
	err := query.
		Order("first_name, id").
		Offset(page * size).
		Limit(size).
		Find(&contactModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search contacts")
	}

	contacts := make([]*entity.Contact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, total, nil
}

// --- Mapper Functions ---

// toContactDomain converts a GORM ContactModel to a domain Contact entity.
func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromContactDomain converts a domain Contact entity to a GORM ContactModel.
func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:        data.ID,
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
	}
}
