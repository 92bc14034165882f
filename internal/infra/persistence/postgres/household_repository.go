// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// householdRepository implements the domain.HouseholdRepository interface.
type householdRepository struct {
	db *gorm.DB
}

// NewHouseholdRepository is the constructor for householdRepository.
func NewHouseholdRepository(db *gorm.DB) repository.HouseholdRepository {
	return &householdRepository{db: db}
}

// Create persists a new household record.
func (repo *householdRepository) Create(ctx context.Context, household *entity.Household) error {
	householdM := fromHouseholdDomain(household)

	if err := repo.db.WithContext(ctx).Create(householdM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("registry number is already in use")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required household information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create household")
	}

	// Update the entity with generated values
	household.ID = householdM.ID
	household.CreatedAt = householdM.CreatedAt
	household.UpdatedAt = householdM.UpdatedAt

	return nil
}

// FindByID retrieves a household by its unique ID.
func (repo *householdRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Household, error) {
	var householdM model.HouseholdModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&householdM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHouseholdNotFound
		}

		return nil, errors.Wrap(err, "failed to find household by ID")
	}

	household := toHouseholdDomain(&householdM)
	memberCount, err := repo.countMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	household.MemberCount = memberCount

	return household, nil
}

// List retrieves all registered households.
func (repo *householdRepository) List(ctx context.Context) ([]*entity.Household, error) {
	var householdModels []*model.HouseholdModel
	err := repo.db.WithContext(ctx).
		Order("registry_number ASC").
		Find(&householdModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list households")
	}

	counts, err := repo.memberCounts(ctx)
	if err != nil {
		return nil, err
	}

	households := make([]*entity.Household, 0, len(householdModels))
	for _, householdM := range householdModels {
		household := toHouseholdDomain(householdM)
		household.MemberCount = counts[household.ID]
		households = append(households, household)
	}

	return households, nil
}

// Update saves the full household record.
func (repo *householdRepository) Update(ctx context.Context, household *entity.Household) error {
	householdM := fromHouseholdDomain(household)

	if err := repo.db.WithContext(ctx).Save(householdM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("registry number is already in use")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update household")
	}

	household.UpdatedAt = householdM.UpdatedAt

	return nil
}

// Delete removes a household by its ID. Deleting an already-deleted
// household succeeds, so compensating deletes and cleanup retries stay
// idempotent.
func (repo *householdRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.HouseholdModel{}).Error

	if err != nil {
		return errors.Wrap(err, "failed to delete household")
	}

	return nil
}

func (repo *householdRepository) countMembers(ctx context.Context, householdID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CitizenModel{}).
		Where("household_id = ?", householdID).
		Count(&count).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count household members")
	}

	return int(count), nil
}

func (repo *householdRepository) memberCounts(ctx context.Context) (map[uuid.UUID]int, error) {
	var rows []struct {
		HouseholdID uuid.UUID
		Total       int
	}
	err := repo.db.WithContext(ctx).
		Model(&model.CitizenModel{}).
		Select("household_id, count(*) as total").
		Group("household_id").
		Find(&rows).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to count household members")
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.HouseholdID] = row.Total
	}

	return counts, nil
}

// --- Mapper Functions ---

// toHouseholdDomain converts a GORM HouseholdModel to a domain Household entity.
func toHouseholdDomain(data *model.HouseholdModel) *entity.Household {
	if data == nil {
		return nil
	}

	return &entity.Household{
		ID:             data.ID,
		RegistryNumber: data.RegistryNumber,
		HeadName:       data.HeadName,
		Address:        data.Address,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromHouseholdDomain converts a domain Household entity to a GORM HouseholdModel.
func fromHouseholdDomain(data *entity.Household) *model.HouseholdModel {
	if data == nil {
		return nil
	}

	return &model.HouseholdModel{
		ID:             data.ID,
		RegistryNumber: data.RegistryNumber,
		HeadName:       data.HeadName,
		Address:        data.Address,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
