// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the domain.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindByID retrieves a single customer by their unique ID.
func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return customerM.ToEntity(), nil
}

// FindByEmail retrieves a single customer by email, matched case-insensitively.
func (repo *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Where("email ILIKE ?", email).
		First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return customerM.ToEntity(), nil
}

// Create persists a new customer entity and backfills the generated ID.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := model.CustomerModelFromEntity(customer)
	customerM.ID = 0

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered
		}

		return errors.Wrap(err, "failed to create customer")
	}

	customer.ID = customerM.ID

	return nil
}

// Update modifies an existing customer record.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerM := model.CustomerModelFromEntity(customer)

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customerM.ID).
		Updates(map[string]any{
			"name":            customerM.Name,
			"email":           customerM.Email,
			"phone":           customerM.Phone,
			"address":         customerM.Address,
			"hashed_password": customerM.HashedPassword,
			"is_admin":        customerM.IsAdmin,
			"is_active":       customerM.IsActive,
			"is_superuser":    customerM.IsSuperuser,
			"is_verified":     customerM.IsVerified,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyRegistered
		}

		return errors.Wrap(result.Error, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}
